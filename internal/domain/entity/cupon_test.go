package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCupon_RejectReason(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	tests := []struct {
		name  string
		cupon *Cupon
		want  string
	}{
		{name: "missing", cupon: nil, want: CuponReasonNotFound},
		{name: "inactive", cupon: &Cupon{Activo: false}, want: CuponReasonInactive},
		{name: "expired", cupon: &Cupon{Activo: true, ExpiraEn: &past}, want: CuponReasonExpired},
		{name: "expires exactly now", cupon: &Cupon{Activo: true, ExpiraEn: &now}, want: CuponReasonExpired},
		{name: "valid until later", cupon: &Cupon{Activo: true, ExpiraEn: &future}, want: ""},
		{name: "no expiry", cupon: &Cupon{Activo: true}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cupon.RejectReason(now))
		})
	}
}

func TestCupon_DiscountFor(t *testing.T) {
	cupon := &Cupon{Descuento: 15}

	assert.InDelta(t, 15.0, cupon.DiscountFor(100), 0.0001)
	assert.InDelta(t, 4.5, cupon.DiscountFor(30), 0.0001)
	assert.Zero(t, cupon.DiscountFor(0))
	assert.Zero(t, (*Cupon)(nil).DiscountFor(100))
}

func TestNormalizeCuponCode(t *testing.T) {
	assert.Equal(t, "SAVE10", NormalizeCuponCode("  save10 "))
	assert.Empty(t, NormalizeCuponCode("   "))
}
