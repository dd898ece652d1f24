package model

import (
	"time"

	"gorm.io/datatypes"
)

// CategoryModel mirrors the 'categories' table. Names are unique ignoring case.
type CategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(100);not null;index:idx_categories_name_lower,unique,expression:LOWER(name)"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ColeccionModel mirrors the 'colecciones' table. Names are unique ignoring case.
type ColeccionModel struct {
	ID          uint   `gorm:"primaryKey"`
	Nombre      string `gorm:"type:varchar(100);not null;index:idx_colecciones_nombre_lower,unique,expression:LOWER(nombre)"`
	Descripcion string `gorm:"type:text"`
	Imagen      string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ColeccionModel) TableName() string {
	return "colecciones"
}

// ProductModel mirrors the 'productos' table. Images is stored as a JSON array.
type ProductModel struct {
	ID          uint                        `gorm:"primaryKey"`
	Name        string                      `gorm:"type:varchar(200);not null;index"`
	Description string                      `gorm:"type:text"`
	Category    string                      `gorm:"type:varchar(100);index"`
	Price       float64                     `gorm:"type:numeric(10,2);not null;check:price >= 0"`
	Stock       int                         `gorm:"not null;default:0;check:stock >= 0"`
	Size        string                      `gorm:"type:varchar(20)"`
	Estado      string                      `gorm:"type:varchar(20);not null;default:activo"`
	Images      datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "productos"
}

// FeaturedProductModel mirrors the 'productos_destacados' table.
type FeaturedProductModel struct {
	ID        uint          `gorm:"primaryKey"`
	ProductID uint          `gorm:"column:producto_id;uniqueIndex;not null"`
	Position  int           `gorm:"not null;default:0"`
	Product   *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeaturedProductModel) TableName() string {
	return "productos_destacados"
}
