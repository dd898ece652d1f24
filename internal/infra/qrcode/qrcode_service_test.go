package qrcode

import (
	"encoding/json"
	"testing"

	"tienda/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(size int, level string) *qrcodeService {
	return NewQRCodeService(&config.Config{
		QRCode: &config.QRCodeConfig{Size: size, ErrorCorrectionLevel: level},
	}).(*qrcodeService)
}

func TestNewQRCodeService_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, newTestService(256, tt.level).errorCorrectionLevel)
		})
	}
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	svc := NewQRCodeService(nil).(*qrcodeService)
	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, qrcode.Medium, svc.errorCorrectionLevel)

	assert.Equal(t, defaultSize, newTestService(0, "M").size)
	assert.Equal(t, defaultSize, newTestService(5000, "M").size)
}

func TestQRCodeService_GenerateCouponQR(t *testing.T) {
	svc := newTestService(256, "M")

	pngBytes, err := svc.GenerateCouponQR("save10")
	require.NoError(t, err)
	require.Greater(t, len(pngBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, pngBytes[:4])
}

func TestQRCodeService_GenerateCouponQR_EmptyCode(t *testing.T) {
	_, err := newTestService(256, "M").GenerateCouponQR("   ")
	assert.Error(t, err)
}

func TestQRCodeService_ParseCouponQR(t *testing.T) {
	svc := newTestService(256, "M")

	valid, err := json.Marshal(CouponQRData{Type: couponQRType, Code: " save10"})
	require.NoError(t, err)
	wrongType, err := json.Marshal(CouponQRData{Type: "subscription", Code: "SAVE10"})
	require.NoError(t, err)
	noCode, err := json.Marshal(CouponQRData{Type: couponQRType})
	require.NoError(t, err)

	code, err := svc.ParseCouponQR(string(valid))
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", code)

	for name, payload := range map[string]string{
		"invalid json": "{not json",
		"wrong type":   string(wrongType),
		"missing code": string(noCode),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseCouponQR(payload)
			assert.Error(t, err)
		})
	}
}
