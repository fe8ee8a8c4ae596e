package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateProfileQR generates a PNG QR code whose payload is the public
	// profile URL for the given pet.
	GenerateProfileQR(petID string) ([]byte, error)

	// ProfileURL returns the public profile URL encoded into the QR code.
	ProfileURL(petID string) string
}
