package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// UserRepository define el puerto de persistencia de usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByMerchantID(merchantID string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
