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

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	client *fs.Client
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *fs.Client) repository.UserRepository {
	return &userRepository{
		client: client,
	}
}

func (repo *userRepository) col() *fs.CollectionRef {
	return repo.client.Collection(constants.CollectionUsers)
}

func toUserDomain(snap *fs.DocumentSnapshot) (*entity.AppUser, error) {
	var user entity.AppUser
	if err := snap.DataTo(&user); err != nil {
		return nil, errors.Wrap(err, "failed to deserialize user document")
	}

	user.UID = snap.Ref.ID
	// Role defaults to "user" when the field is absent or unknown.
	user.Role = user.EffectiveRole()

	return &user, nil
}

// Create inserts the user document keyed by the identity provider uid.
func (repo *userRepository) Create(ctx context.Context, user *entity.AppUser) error {
	if _, err := repo.col().Doc(user.UID).Set(ctx, user); err != nil {
		return errors.Wrap(err, "failed to create user document")
	}

	return nil
}

// FindByUID retrieves one user document.
func (repo *userRepository) FindByUID(ctx context.Context, uid string) (*entity.AppUser, error) {
	if strings.TrimSpace(uid) == "" {
		return nil, repository.ErrUserNotFound
	}

	snap, err := repo.col().Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user document")
	}

	return toUserDomain(snap)
}

// FindAll retrieves every user ordered by display name ascending.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.AppUser, error) {
	snaps, err := repo.col().
		OrderBy("displayName", fs.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, translateQueryError(err, "failed to list users")
	}

	users := make([]*entity.AppUser, 0, len(snaps))
	for _, snap := range snaps {
		user, err := toUserDomain(snap)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

// FindAdmins retrieves every user with the admin role.
func (repo *userRepository) FindAdmins(ctx context.Context) ([]*entity.AppUser, error) {
	snaps, err := repo.col().
		Where("nivel", "==", entity.RoleAdmin.String()).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, translateQueryError(err, "failed to list admins")
	}

	admins := make([]*entity.AppUser, 0, len(snaps))
	for _, snap := range snaps {
		admin, err := toUserDomain(snap)
		if err != nil {
			return nil, err
		}
		admins = append(admins, admin)
	}

	return admins, nil
}

// UpdateWithOwnedPetCascade writes the user fields and, when petFields is
// non-empty, the denormalized owner fields on every owned pet, all in one
// atomic batch so the profile and its denormalized copies cannot diverge.
func (repo *userRepository) UpdateWithOwnedPetCascade(ctx context.Context, uid string, userFields, petFields map[string]any) error {
	userRef := repo.col().Doc(uid)

	batch := repo.client.Batch()
	batch.Update(userRef, fieldsToUpdates(userFields))

	if len(petFields) > 0 {
		petSnaps, err := repo.client.Collection(constants.CollectionPets).
			Where("userId", "==", uid).
			Documents(ctx).GetAll()
		if err != nil {
			return translateQueryError(err, "failed to list owned pets for cascade")
		}

		petUpdates := fieldsToUpdates(petFields)
		for _, snap := range petSnaps {
			batch.Update(snap.Ref, petUpdates)
		}
	}

	if _, err := batch.Commit(ctx); err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to commit user update batch")
	}

	return nil
}

// DeleteWithOwnedPets removes the user document and every owned pet in one
// atomic batch. Pets owned by other users are untouched.
func (repo *userRepository) DeleteWithOwnedPets(ctx context.Context, uid string) error {
	batch := repo.client.Batch()
	batch.Delete(repo.col().Doc(uid))

	petSnaps, err := repo.client.Collection(constants.CollectionPets).
		Where("userId", "==", uid).
		Documents(ctx).GetAll()
	if err != nil {
		return translateQueryError(err, "failed to list owned pets for deletion")
	}

	for _, snap := range petSnaps {
		batch.Delete(snap.Ref)
	}

	if _, err := batch.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit user deletion batch")
	}

	return nil
}

func fieldsToUpdates(fields map[string]any) []fs.Update {
	updates := make([]fs.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, fs.Update{Path: path, Value: value})
	}

	return updates
}
