// Package entity contains the core business objects of the project.
package entity

import (
	"sort"
	"time"
)

// Species represents the kind of animal a pet profile describes.
type Species string

const (
	// SpeciesDog indicates a dog ("Perro" in the stored documents).
	SpeciesDog Species = "Perro"
	// SpeciesCat indicates a cat ("Gato" in the stored documents).
	SpeciesCat Species = "Gato"
)

// String returns the string representation of the Species.
func (s Species) String() string {
	return string(s)
}

// IsValid checks if the Species is a valid value.
func (s Species) IsValid() bool {
	switch s {
	case SpeciesDog, SpeciesCat:
		return true
	default:
		return false
	}
}

// Sex represents the sex of a pet.
type Sex string

const (
	// SexMale is stored as "Macho".
	SexMale Sex = "Macho"
	// SexFemale is stored as "Hembra".
	SexFemale Sex = "Hembra"
)

// IsValid checks if the Sex is a valid value.
func (s Sex) IsValid() bool {
	switch s {
	case SexMale, SexFemale:
		return true
	default:
		return false
	}
}

// ScanLocation is one geolocated entry in a pet's scan history. Entries are
// immutable once created and only removed together with the whole pet.
type ScanLocation struct {
	ID        string    `json:"id" firestore:"id"`
	Latitude  float64   `json:"latitude" firestore:"latitude"`
	Longitude float64   `json:"longitude" firestore:"longitude"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}

// PetProfile is the identity record for an animal, stored in the "mascotas"
// collection. Owner contact fields are denormalized copies of the owning
// user's data so the public profile renders without a join; user edits
// cascade into them.
type PetProfile struct {
	ID           string  `json:"id" firestore:"-"`
	Name         string  `json:"name" firestore:"name"`
	Species      Species `json:"tipoAnimal" firestore:"tipoAnimal"`
	Breed        *string `json:"breed" firestore:"breed"`
	Sex          *string `json:"sexo" firestore:"sexo"`
	SpecialTrait *string `json:"caracteristicaEspecial" firestore:"caracteristicaEspecial"`

	// BirthDate is stored as a timestamp anchored at local midnight in the
	// reference timezone and surfaced as an ISO string.
	BirthDate time.Time `json:"fechaNacimiento" firestore:"fechaNacimiento"`

	PhotoURL     string  `json:"photoUrl" firestore:"photoUrl"`
	PhotoPath    *string `json:"photoPath" firestore:"photoPath"`
	PhotoFileID  *string `json:"photoFileId" firestore:"photoFileId"`
	PhotoURL2    *string `json:"photoUrl2" firestore:"photoUrl2"`
	PhotoPath2   *string `json:"photoPath2" firestore:"photoPath2"`
	PhotoFileID2 *string `json:"photoFileId2" firestore:"photoFileId2"`

	OwnerName   *string `json:"ownerName" firestore:"ownerName"`
	OwnerEmail  *string `json:"ownerEmail" firestore:"ownerEmail"`
	OwnerPhone1 *string `json:"ownerPhone1" firestore:"ownerPhone1"`
	OwnerPhone2 *string `json:"ownerPhone2" firestore:"ownerPhone2"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`

	// UserID is a non-enforced reference to the owning AppUser. Nil means an
	// unclaimed shell record, which is a valid state.
	UserID *string `json:"userId" firestore:"userId"`

	// ScanHistory is kept sorted descending by timestamp after any mutation.
	ScanHistory []ScanLocation `json:"scanHistory" firestore:"scanHistory"`
}

// SortScanHistory re-sorts the embedded history most recent first. Prepending
// to an already-sorted list would be enough, but the defensive re-sort
// tolerates out-of-order concurrent appends.
func (p *PetProfile) SortScanHistory() {
	sort.SliceStable(p.ScanHistory, func(i, j int) bool {
		return p.ScanHistory[i].Timestamp.After(p.ScanHistory[j].Timestamp)
	})
}

// IsClaimed reports whether an owner has bound this record.
func (p *PetProfile) IsClaimed() bool {
	return p.UserID != nil && *p.UserID != ""
}
