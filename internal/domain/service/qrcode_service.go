package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateLinkQR renders the given deep link as a PNG QR code.
	GenerateLinkQR(link string) ([]byte, error)
}
