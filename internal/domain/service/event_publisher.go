package service

import (
	"context"
)

// ScanEvent represents a recorded QR scan published for downstream consumers
type ScanEvent struct {
	RequestID string  `json:"request_id,omitempty"` // For distributed tracing
	ScanID    string  `json:"scan_id"`
	PetID     string  `json:"pet_id"`
	PetName   string  `json:"pet_name"`
	OwnerID   string  `json:"owner_id,omitempty"` // Empty for unclaimed pets
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp string  `json:"timestamp"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishScanEvent publishes a scan event for async processing
	PublishScanEvent(ctx context.Context, event *ScanEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
