package main

import (
	"tienda/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.AdminBootstrapModel{},
		model.CategoryModel{},
		model.ColeccionModel{},
		model.ProductModel{},
		model.FeaturedProductModel{},
		model.CuponModel{},
		model.SettingModel{},
		model.AgenciaModel{},
		model.FotosModel{},
		model.OrderModel{},
		model.OrderItemModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
