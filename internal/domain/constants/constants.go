// Package constants holds shared domain constants.
package constants

const (
	// PubSubProviderLocal selects the local HTTP publisher for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// Collection names in the document store.
const (
	// CollectionPets is the pet profile collection ("mascotas" for
	// compatibility with the existing store).
	CollectionPets = "mascotas"
	// CollectionUsers is the account profile collection.
	CollectionUsers = "users"
	// CollectionNotifications is the inbox collection.
	CollectionNotifications = "notifications"
)
