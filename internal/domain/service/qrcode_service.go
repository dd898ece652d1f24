package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateCouponQR renders a PNG QR code carrying the coupon code
	GenerateCouponQR(code string) ([]byte, error)

	// ParseCouponQR extracts the coupon code from scanned QR payload data
	ParseCouponQR(qrData string) (string, error)
}
