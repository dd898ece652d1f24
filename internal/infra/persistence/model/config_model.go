package model

import (
	"time"

	"gorm.io/datatypes"
)

// SettingModel mirrors the 'settings' key/value table.
type SettingModel struct {
	Key       string `gorm:"primaryKey;type:varchar(100)"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SettingModel) TableName() string {
	return "settings"
}

// SingletonID is the primary key of the single agencias and fotos rows.
const SingletonID uint = 1

// AgenciaModel mirrors the singleton 'agencias' table.
type AgenciaModel struct {
	ID             uint                        `gorm:"primaryKey"`
	Agencias       datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	MinimoDelivery int                         `gorm:"not null;default:1"`
	MaximoDelivery int                         `gorm:"not null;default:7"`
	CostoEnvio     float64                     `gorm:"type:numeric(10,2);not null;default:0"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AgenciaModel) TableName() string {
	return "agencias"
}

// FotosModel mirrors the singleton 'fotos' table.
type FotosModel struct {
	ID        uint                        `gorm:"primaryKey"`
	Portada   string                      `gorm:"type:text"`
	Nosotros  string                      `gorm:"type:text"`
	Banners   datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FotosModel) TableName() string {
	return "fotos"
}
