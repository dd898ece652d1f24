package model

import "time"

// OrderModel mirrors the 'pedidos' table.
type OrderModel struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        uint      `gorm:"not null;index"`
	Status        string    `gorm:"type:varchar(20);not null;default:Pendiente;index"`
	Address       string    `gorm:"type:text"`
	Agencia       string    `gorm:"type:varchar(150)"`
	CouponCode    string    `gorm:"type:varchar(50)"`
	TotalProducts int       `gorm:"not null"`
	Discount      float64   `gorm:"type:numeric(10,2);not null;default:0"`
	TotalPrice    float64   `gorm:"type:numeric(10,2);not null"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time

	User  *UserModel       `gorm:"foreignKey:UserID"`
	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "pedidos"
}

// OrderItemModel mirrors the 'pedido_items' table.
type OrderItemModel struct {
	ID         uint          `gorm:"primaryKey"`
	OrderID    uint          `gorm:"not null;index"`
	ProductoID uint          `gorm:"column:producto_id;not null;index"`
	Quantity   int           `gorm:"not null;check:quantity > 0"`
	UnitPrice  float64       `gorm:"type:numeric(10,2);not null"`
	TotalPrice float64       `gorm:"type:numeric(10,2);not null"`
	Product    *ProductModel `gorm:"foreignKey:ProductoID"`
	CreatedAt  time.Time     `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "pedido_items"
}
