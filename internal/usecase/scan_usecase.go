package usecase

import (
	"context"

	"petlink/internal/domain/entity"
)

// ScanInput is the payload reported by a public profile page when a tag
// is scanned. Zero is a valid coordinate (equator, prime meridian), so the
// fields carry only the range validators.
type ScanInput struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	RequestID string  `json:"-"`
}

// ScanResult is the outcome of recording one scan.
type ScanResult struct {
	Scan *entity.ScanLocation `json:"scan"`
	// DistanceFromPrevious is the great-circle distance in meters from the
	// previous most recent scan, when one exists.
	DistanceFromPrevious *float64 `json:"distanceFromPreviousMeters,omitempty"`
}

// ScanUsecase defines the interface for the scan event recorder
type ScanUsecase interface {
	// RecordScan appends a scan to the pet's history, notifies the owner,
	// and publishes a scan event when a publisher is configured.
	RecordScan(ctx context.Context, petID string, input *ScanInput) (*ScanResult, error)
}
