package entity

import (
	"strings"
	"time"
)

// Reasons a coupon can be rejected.
const (
	CuponReasonNotFound = "not_found"
	CuponReasonInactive = "inactive"
	CuponReasonExpired  = "expired"
)

// Cupon is a percentage discount code.
type Cupon struct {
	ID          uint       `json:"id"`
	CodigoCupon string     `json:"codigoCupon"`
	Descuento   int        `json:"descuento"`
	Activo      bool       `json:"activo"`
	ExpiraEn    *time.Time `json:"expiraEn"`
	Descripcion string     `json:"descripcion"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NormalizeCuponCode is the canonical stored form of a coupon code.
func NormalizeCuponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// RejectReason returns why the coupon cannot be applied at now, or "" when it can.
func (c *Cupon) RejectReason(now time.Time) string {
	if c == nil {
		return CuponReasonNotFound
	}
	if !c.Activo {
		return CuponReasonInactive
	}
	if c.ExpiraEn != nil && !now.Before(*c.ExpiraEn) {
		return CuponReasonExpired
	}

	return ""
}

// DiscountFor returns the discount amount the coupon grants on subtotal.
func (c *Cupon) DiscountFor(subtotal float64) float64 {
	if c == nil || subtotal <= 0 {
		return 0
	}

	return RoundMoney(subtotal * float64(c.Descuento) / 100)
}

// CuponValidation is the result of checking a code at checkout.
type CuponValidation struct {
	Valid          bool    `json:"valid"`
	CodigoCupon    string  `json:"codigoCupon"`
	Descuento      int     `json:"descuento"`
	MontoDescuento float64 `json:"montoDescuento"`
	Reason         string  `json:"reason,omitempty"`
}
