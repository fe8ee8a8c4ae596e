// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// AppUser is the account profile stored in the "users" collection, keyed by
// the external identity provider's uid. The identity account itself (email,
// password, tokens) lives entirely with the provider; this document only
// carries the application profile.
type AppUser struct {
	UID         string  `json:"uid" firestore:"uid"`
	Email       string  `json:"email" firestore:"email"`
	DisplayName string  `json:"displayName" firestore:"displayName"`
	Role        Role    `json:"nivel" firestore:"nivel"`
	PhotoURL    *string `json:"photoURL" firestore:"photoURL"`
	PhotoPath   *string `json:"photoPath" firestore:"photoPath"`
	Phone1      *string `json:"phone1" firestore:"phone1"`
	Phone2      *string `json:"phone2" firestore:"phone2"`
	Address     *string `json:"address" firestore:"address"`
}

// EffectiveRole returns the stored role, defaulting to RoleUser when the
// field is absent or carries an unknown value.
func (u *AppUser) EffectiveRole() Role {
	if u == nil || !u.Role.IsValid() {
		return RoleUser
	}

	return u.Role
}
