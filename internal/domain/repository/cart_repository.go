package repository

import "github.com/crunchyspot/crunchyspot-api/internal/domain/entity"

// CartRepository puerto de persistencia para carritos.
type CartRepository interface {
	ListByEmail(email string) ([]*entity.CartItem, error)
	Insert(item *entity.CartItem) (insertedID string, err error)
	Delete(id string) (deleted int64, err error)
	// DeleteByIDs purga en bloque los carritos listados en un pago.
	// Ignora ids que no sean ObjectID válidos.
	DeleteByIDs(ids []string) (deleted int64, err error)
}
