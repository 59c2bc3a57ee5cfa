package usecase

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/crunchyspot/crunchyspot-api/internal/application/dto"
	"github.com/crunchyspot/crunchyspot-api/internal/domain"
	"github.com/crunchyspot/crunchyspot-api/internal/domain/entity"
	"github.com/crunchyspot/crunchyspot-api/internal/domain/repository"
)

// MenuUseCase navegación y CRUD del menú. Las operaciones por id delegan en
// el repositorio, que aplica la resolución de doble interpretación del _id.
type MenuUseCase struct {
	menuRepo repository.MenuRepository
	validate *validator.Validate
}

// NewMenuUseCase construye el caso de uso del menú.
func NewMenuUseCase(menuRepo repository.MenuRepository) *MenuUseCase {
	return &MenuUseCase{menuRepo: menuRepo, validate: validator.New()}
}

// List devuelve el menú completo, opcionalmente filtrado por categoría.
func (uc *MenuUseCase) List(category string) ([]dto.MenuItemResponse, error) {
	items, err := uc.menuRepo.List(category)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MenuItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toMenuItemResponse(it))
	}
	return out, nil
}

// Get busca un plato por id crudo (ObjectID o string legado).
func (uc *MenuUseCase) Get(rawID string) (*dto.MenuItemResponse, error) {
	item, err := uc.menuRepo.FindByID(rawID)
	if err != nil {
		return nil, err
	}
	resp := toMenuItemResponse(item)
	return &resp, nil
}

// Create inserta un plato nuevo. El store genera siempre el ObjectID:
// las altas nuevas no perpetúan la forma string legada del _id.
func (uc *MenuUseCase) Create(in dto.CreateMenuItemRequest) (*dto.InsertResult, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	item := &entity.MenuItem{
		Name:        in.Name,
		Recipe:      in.Recipe,
		Description: in.Description,
		Image:       in.Image,
		Category:    in.Category,
		Price:       in.Price,
	}
	id, err := uc.menuRepo.Insert(item)
	if err != nil {
		return nil, err
	}
	return &dto.InsertResult{InsertedID: id}, nil
}

// Update actualiza los campos editables de un plato por id crudo.
func (uc *MenuUseCase) Update(rawID string, in dto.UpdateMenuItemRequest) error {
	if err := uc.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return uc.menuRepo.Update(rawID, repository.MenuItemPatch{
		Name:        in.Name,
		Price:       in.Price,
		Recipe:      in.Recipe,
		Description: in.Description,
		Image:       in.Image,
	})
}

// Delete elimina un plato por id crudo.
func (uc *MenuUseCase) Delete(rawID string) error {
	return uc.menuRepo.Delete(rawID)
}

func toMenuItemResponse(it *entity.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ID:          it.ID.String(),
		Name:        it.Name,
		Recipe:      it.Recipe,
		Description: it.Description,
		Image:       it.Image,
		Category:    it.Category,
		Price:       it.Price,
	}
}
