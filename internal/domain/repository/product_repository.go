package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia del catálogo de productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	ListByMerchant(merchantID string, limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
}
