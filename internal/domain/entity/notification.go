// Package entity contains the core business objects of the project.
package entity

import "time"

// NotificationType classifies an inbox entry.
type NotificationType string

const (
	// NotificationQRScan is sent to a pet's owner when its QR is scanned.
	NotificationQRScan NotificationType = "qrScan"
	// NotificationNewPetAdmin is fanned out to administrators when a pet
	// profile is created.
	NotificationNewPetAdmin NotificationType = "newPetAdmin"
	// NotificationGeneric is an unclassified inbox entry.
	NotificationGeneric NotificationType = "generic"
)

// AppNotification is one entry in a user's inbox, stored in the
// "notifications" collection. The only mutation after creation is flipping
// the read flag; deletion is terminal.
type AppNotification struct {
	ID              string           `json:"id" firestore:"-"`
	UserID          string           `json:"userId" firestore:"userId"`
	Title           string           `json:"title" firestore:"title"`
	Message         string           `json:"message" firestore:"message"`
	Link            *string          `json:"link,omitempty" firestore:"link"`
	Timestamp       time.Time        `json:"timestamp" firestore:"timestamp,serverTimestamp"`
	Read            bool             `json:"read" firestore:"read"`
	Type            NotificationType `json:"type" firestore:"type"`
	RelatedPetID    *string          `json:"relatedPetId,omitempty" firestore:"relatedPetId"`
	RelatedPetName  *string          `json:"relatedPetName,omitempty" firestore:"relatedPetName"`
	RelatedUserID   *string          `json:"relatedUserId,omitempty" firestore:"relatedUserId"`
	RelatedUserName *string          `json:"relatedUserName,omitempty" firestore:"relatedUserName"`
}
