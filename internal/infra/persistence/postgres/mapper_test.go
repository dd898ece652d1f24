package postgres

import (
	"testing"
	"time"

	"tienda/internal/domain/entity"
	"tienda/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
)

func TestCuponMapping_NormalizesCode(t *testing.T) {
	expira := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	cuponM := fromCuponDomain(&entity.Cupon{
		CodigoCupon: "  save10 ",
		Descuento:   10,
		Activo:      true,
		ExpiraEn:    &expira,
	})

	assert.Equal(t, "SAVE10", cuponM.CodigoCupon)
	assert.Equal(t, &expira, toCuponDomain(cuponM).ExpiraEn)
}

func TestProductMapping_ImagesNeverNil(t *testing.T) {
	productM := fromProductDomain(&entity.Product{Name: "Polo", Estado: entity.ProductEstadoActivo})
	assert.NotNil(t, productM.Images)

	product := toProductDomain(&model.ProductModel{Name: "Polo"})
	assert.Equal(t, []string{}, product.Images)
}

func TestUserMapping_DefaultsRole(t *testing.T) {
	userM := fromUserDomain(&entity.User{ClerkID: "user_1", Email: "a@b.pe"})
	assert.Equal(t, "USER", userM.Role)

	userM = fromUserDomain(&entity.User{ClerkID: "user_1", Role: entity.RoleAdmin})
	assert.Equal(t, "ADMIN", userM.Role)
}

func TestOrderMapping_RoundTripsItems(t *testing.T) {
	orderM := fromOrderDomain(&entity.Order{
		UserID:        7,
		Status:        entity.OrderStatusPendiente,
		TotalProducts: 3,
		TotalPrice:    90,
		Items: []entity.OrderItem{
			{ProductoID: 1, Quantity: 1, UnitPrice: 30, TotalPrice: 30},
			{ProductoID: 2, Quantity: 2, UnitPrice: 30, TotalPrice: 60},
		},
	})
	assert.Len(t, orderM.Items, 2)
	assert.Equal(t, "Pendiente", orderM.Status)

	order := toOrderDomain(orderM)
	assert.Equal(t, entity.OrderStatusPendiente, order.Status)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, uint(2), order.Items[1].ProductoID)
	assert.Nil(t, order.User)
}

func TestSingletonMapping_EmptyLists(t *testing.T) {
	agencia := toAgenciaDomain(&model.AgenciaModel{MinimoDelivery: 1, MaximoDelivery: 7})
	assert.Equal(t, []string{}, agencia.Agencias)

	fotos := toFotosDomain(&model.FotosModel{})
	assert.Equal(t, []string{}, fotos.Banners)
}
