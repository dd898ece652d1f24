package model

import "time"

// CuponModel mirrors the 'cupones' table. Codes are stored upper-cased.
type CuponModel struct {
	ID          uint   `gorm:"primaryKey"`
	CodigoCupon string `gorm:"column:codigo_cupon;type:varchar(50);not null;index:idx_cupones_codigo_upper,unique,expression:UPPER(codigo_cupon)"`
	Descuento   int    `gorm:"not null;check:descuento BETWEEN 1 AND 100"`
	Activo      bool   `gorm:"not null;default:true"`
	ExpiraEn    *time.Time
	Descripcion string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CuponModel) TableName() string {
	return "cupones"
}
