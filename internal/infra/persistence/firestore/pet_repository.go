package firestore

import (
	"context"
	"strings"

	"petlink/internal/domain/constants"
	"petlink/internal/domain/entity"
	"petlink/internal/domain/repository"
	"petlink/internal/errors"

	fs "cloud.google.com/go/firestore"
)

// petRepository implements the repository.PetRepository interface.
type petRepository struct {
	client *fs.Client
}

// NewPetRepository is the constructor for petRepository.
func NewPetRepository(client *fs.Client) repository.PetRepository {
	return &petRepository{
		client: client,
	}
}

func (repo *petRepository) col() *fs.CollectionRef {
	return repo.client.Collection(constants.CollectionPets)
}

// toPetDomain deserializes one pet document, normalizing store-native
// timestamps and keeping the scan history sorted descending.
func toPetDomain(snap *fs.DocumentSnapshot) (*entity.PetProfile, error) {
	var pet entity.PetProfile
	if err := snap.DataTo(&pet); err != nil {
		return nil, errors.Wrap(err, "failed to deserialize pet document")
	}

	pet.ID = snap.Ref.ID
	if pet.ScanHistory == nil {
		pet.ScanHistory = []entity.ScanLocation{}
	}
	pet.SortScanHistory()

	return &pet, nil
}

// FindByID retrieves one pet document by id.
func (repo *petRepository) FindByID(ctx context.Context, id string) (*entity.PetProfile, error) {
	if strings.TrimSpace(id) == "" {
		return nil, repository.ErrPetNotFound
	}

	snap, err := repo.col().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrPetNotFound
		}

		return nil, errors.Wrap(err, "failed to load pet document")
	}

	return toPetDomain(snap)
}

// FindAll retrieves every pet ordered by creation time descending.
func (repo *petRepository) FindAll(ctx context.Context) ([]*entity.PetProfile, error) {
	snaps, err := repo.col().
		OrderBy("createdAt", fs.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, translateQueryError(err, "failed to list pets")
	}

	return petsFromSnapshots(snaps)
}

// FindByOwner retrieves pets owned by userID ordered by creation time
// descending. The query shape requires the mascotas(userId, createdAt)
// composite index.
func (repo *petRepository) FindByOwner(ctx context.Context, userID string) ([]*entity.PetProfile, error) {
	snaps, err := repo.col().
		Where("userId", "==", userID).
		OrderBy("createdAt", fs.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, translateQueryError(err, "failed to list pets by owner")
	}

	return petsFromSnapshots(snaps)
}

func petsFromSnapshots(snaps []*fs.DocumentSnapshot) ([]*entity.PetProfile, error) {
	pets := make([]*entity.PetProfile, 0, len(snaps))
	for _, snap := range snaps {
		pet, err := toPetDomain(snap)
		if err != nil {
			return nil, err
		}
		pets = append(pets, pet)
	}

	return pets, nil
}

// Create inserts a new pet document and fills in the store-assigned id.
func (repo *petRepository) Create(ctx context.Context, pet *entity.PetProfile) error {
	ref := repo.col().NewDoc()
	if _, err := ref.Create(ctx, pet); err != nil {
		return errors.Wrap(err, "failed to create pet document")
	}

	pet.ID = ref.ID

	return nil
}

// Update applies a partial field update. A nil value stores an explicit
// null, matching how cleared optional fields are represented.
func (repo *petRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	updates := make([]fs.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, fs.Update{Path: path, Value: value})
	}

	if _, err := repo.col().Doc(id).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return repository.ErrPetNotFound
		}

		return errors.Wrap(err, "failed to update pet document")
	}

	return nil
}

// SetOwner binds the userId field and touches nothing else.
func (repo *petRepository) SetOwner(ctx context.Context, id, userID string) error {
	if _, err := repo.col().Doc(id).Update(ctx, []fs.Update{
		{Path: "userId", Value: userID},
	}); err != nil {
		if isNotFound(err) {
			return repository.ErrPetNotFound
		}

		return errors.Wrap(err, "failed to bind pet owner")
	}

	return nil
}

// Delete removes the pet document.
func (repo *petRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.col().Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete pet document")
	}

	return nil
}

// AppendScan prepends the event to the embedded history inside a store
// transaction. The read-modify-write cycle is transactional so two
// concurrent scans on the same pet cannot silently drop each other.
func (repo *petRepository) AppendScan(ctx context.Context, petID string, scan entity.ScanLocation) (*entity.PetProfile, error) {
	ref := repo.col().Doc(petID)

	var updated *entity.PetProfile
	err := repo.client.RunTransaction(ctx, func(ctx context.Context, tx *fs.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return repository.ErrPetNotFound
			}

			return errors.Wrap(err, "failed to load pet for scan append")
		}

		pet, err := toPetDomain(snap)
		if err != nil {
			return err
		}

		pet.ScanHistory = append([]entity.ScanLocation{scan}, pet.ScanHistory...)
		pet.SortScanHistory()

		if err := tx.Update(ref, []fs.Update{
			{Path: "scanHistory", Value: pet.ScanHistory},
		}); err != nil {
			return errors.Wrap(err, "failed to write scan history")
		}

		updated = pet

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
