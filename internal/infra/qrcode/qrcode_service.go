package qrcode

import (
	"fmt"
	"strings"

	"petlink/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// ProfileURL returns the public, unauthenticated profile address a printed
// tag points at.
func (s *qrcodeService) ProfileURL(petID string) string {
	return fmt.Sprintf("%s/public/pets/%s", s.baseURL, petID)
}

// GenerateProfileQR generates a PNG QR code encoding the pet's public
// profile URL.
func (s *qrcodeService) GenerateProfileQR(petID string) ([]byte, error) {
	qrCode, err := qrcode.New(s.ProfileURL(petID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
