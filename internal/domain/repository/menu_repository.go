package repository

import "github.com/crunchyspot/crunchyspot-api/internal/domain/entity"

// MenuItemPatch campos actualizables de un plato (PATCH /menu/:id).
type MenuItemPatch struct {
	Name        string
	Price       float64
	Recipe      string
	Description string
	Image       string
}

// MenuRepository puerto de persistencia para el menú. Las operaciones por id
// reciben el identificador crudo del caller y lo resuelven con la estrategia
// de doble interpretación (ObjectID primero, string literal después);
// agotadas ambas devuelven domain.ErrNotFound.
type MenuRepository interface {
	List(category string) ([]*entity.MenuItem, error)
	FindByID(rawID string) (*entity.MenuItem, error)
	Insert(item *entity.MenuItem) (insertedID string, err error)
	Update(rawID string, patch MenuItemPatch) error
	Delete(rawID string) error
	Count() (int64, error)
}
