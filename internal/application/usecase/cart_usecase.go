package usecase

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/crunchyspot/crunchyspot-api/internal/application/dto"
	"github.com/crunchyspot/crunchyspot-api/internal/domain"
	"github.com/crunchyspot/crunchyspot-api/internal/domain/entity"
	"github.com/crunchyspot/crunchyspot-api/internal/domain/repository"
)

// CartUseCase carrito de compras, con alcance por email del dueño.
type CartUseCase struct {
	cartRepo repository.CartRepository
	validate *validator.Validate
}

// NewCartUseCase construye el caso de uso del carrito.
func NewCartUseCase(cartRepo repository.CartRepository) *CartUseCase {
	return &CartUseCase{cartRepo: cartRepo, validate: validator.New()}
}

// ListByEmail devuelve el carrito del email indicado.
func (uc *CartUseCase) ListByEmail(email string) ([]dto.CartItemResponse, error) {
	items, err := uc.cartRepo.ListByEmail(email)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CartItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.CartItemResponse{
			ID:         it.ID.Hex(),
			MenuItemID: it.MenuItemID,
			Email:      it.Email,
			Name:       it.Name,
			Image:      it.Image,
			Price:      it.Price,
		})
	}
	return out, nil
}

// Add agrega un plato al carrito.
func (uc *CartUseCase) Add(in dto.AddCartItemRequest) (*dto.InsertResult, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	item := &entity.CartItem{
		MenuItemID: in.MenuItemID,
		Email:      in.Email,
		Name:       in.Name,
		Image:      in.Image,
		Price:      in.Price,
	}
	id, err := uc.cartRepo.Insert(item)
	if err != nil {
		return nil, err
	}
	return &dto.InsertResult{InsertedID: id}, nil
}

// Remove elimina un renglón del carrito por id.
func (uc *CartUseCase) Remove(id string) (*dto.DeleteResult, error) {
	deleted, err := uc.cartRepo.Delete(id)
	if err != nil {
		return nil, err
	}
	if deleted == 0 {
		return nil, domain.ErrNotFound
	}
	return &dto.DeleteResult{DeletedCount: deleted}, nil
}
