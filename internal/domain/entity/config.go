package entity

import "time"

// Setting is a free-form storefront key/value entry.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Agencia holds the shipping agencies and delivery window offered at checkout.
type Agencia struct {
	ID             uint      `json:"id"`
	Agencias       []string  `json:"agencias"`
	MinimoDelivery int       `json:"minimoDelivery"`
	MaximoDelivery int       `json:"maximoDelivery"`
	CostoEnvio     float64   `json:"costoEnvio"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// DefaultAgencia is the row created the first time the config is read.
func DefaultAgencia() *Agencia {
	return &Agencia{
		Agencias:       []string{},
		MinimoDelivery: 1,
		MaximoDelivery: 7,
	}
}

// Fotos holds the storefront's static page images.
type Fotos struct {
	ID        uint      `json:"id"`
	Portada   string    `json:"portada"`
	Nosotros  string    `json:"nosotros"`
	Banners   []string  `json:"banners"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultFotos is the row created the first time the photos are read.
func DefaultFotos() *Fotos {
	return &Fotos{Banners: []string{}}
}
