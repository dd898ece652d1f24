// Package model holds the GORM persistence structs. They are exported so the
// GORM Gen tool can build type-safe query code from them.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	ClerkID   string `gorm:"column:clerk_id;type:varchar(191);uniqueIndex;not null"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name      string `gorm:"type:varchar(150)"`
	Role      string `gorm:"type:varchar(20);not null;default:USER;index"`
	Phone     string `gorm:"type:varchar(30)"`
	DNI       string `gorm:"column:dni;type:varchar(20)"`
	Address   string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// AdminBootstrapModel mirrors the single-row 'admin_bootstrap' table. The row
// with ID 1 exists once the store's first administrator has been assigned.
type AdminBootstrapModel struct {
	ID        uint `gorm:"primaryKey;autoIncrement:false"`
	UserID    uint `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminBootstrapModel) TableName() string {
	return "admin_bootstrap"
}
