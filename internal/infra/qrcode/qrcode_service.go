package qrcode

import (
	"encoding/json"
	"strings"

	"tienda/config"
	"tienda/internal/domain/entity"
	"tienda/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize   = 256
	couponQRType  = "coupon"
	maxQRCodeSize = 1024
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// CouponQRData is the payload encoded in a coupon QR code.
type CouponQRData struct {
	Type string `json:"type"`
	Code string `json:"code"`
}

// NewQRCodeService creates the coupon QR renderer from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := defaultSize, ""
	if cfg != nil && cfg.QRCode != nil {
		size, level = cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel
	}
	if size <= 0 || size > maxQRCodeSize {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateCouponQR renders a PNG QR code for the coupon code.
func (s *qrcodeService) GenerateCouponQR(code string) ([]byte, error) {
	code = entity.NormalizeCuponCode(code)
	if code == "" {
		return nil, errors.New("coupon code is empty")
	}

	payload, err := json.Marshal(CouponQRData{Type: couponQRType, Code: code})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(payload), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseCouponQR extracts the coupon code from a scanned QR payload.
func (s *qrcodeService) ParseCouponQR(qrData string) (string, error) {
	var data CouponQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != couponQRType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}

	code := entity.NormalizeCuponCode(data.Code)
	if code == "" {
		return "", errors.New("QR code carries no coupon code")
	}

	return code, nil
}
