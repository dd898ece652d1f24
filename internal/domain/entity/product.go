package entity

import "time"

// ProductEstado is the publication state of a product.
type ProductEstado string

const (
	ProductEstadoActivo   ProductEstado = "activo"
	ProductEstadoInactivo ProductEstado = "inactivo"
)

// IsValid checks if the estado is one of the known values.
func (e ProductEstado) IsValid() bool {
	return e == ProductEstadoActivo || e == ProductEstadoInactivo
}

// Product is a sellable clothing item.
type Product struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Price       float64       `json:"price"`
	Stock       int           `json:"stock"`
	Size        string        `json:"size"`
	Estado      ProductEstado `json:"estado"`
	Images      []string      `json:"images"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// FeaturedProduct pins a product on the storefront home page.
type FeaturedProduct struct {
	ID        uint      `json:"id"`
	ProductID uint      `json:"productId"`
	Position  int       `json:"position"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
