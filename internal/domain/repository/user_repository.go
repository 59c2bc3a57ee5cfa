package repository

import "github.com/crunchyspot/crunchyspot-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
// FindByEmail devuelve (nil, nil) si no existe.
type UserRepository interface {
	Create(user *entity.User) (insertedID string, err error)
	FindByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
	PromoteToAdmin(id string) (matched int64, err error)
	Delete(id string) (deleted int64, err error)
	Count() (int64, error)
}
