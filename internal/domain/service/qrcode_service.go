package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateFollowQR generates a shareable QR code that encodes a user id,
	// scanned by other clients to follow that user.
	GenerateFollowQR(userID uuid.UUID) ([]byte, error)

	// ParseFollowQR parses QR code data and returns the encoded user id.
	ParseFollowQR(qrData string) (uuid.UUID, error)
}
