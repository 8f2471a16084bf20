package repository

import "github.com/tu-usuario/comercio-pro/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// Deactivate retira el producto del catálogo (borrado suave); las líneas
	// de órdenes existentes conservan su snapshot.
	Deactivate(id string) error
}
