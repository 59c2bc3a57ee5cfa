package dto

// AddCartItemRequest agrega un plato al carrito del usuario indicado.
type AddCartItemRequest struct {
	MenuItemID string  `json:"menuItemId" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Price      float64 `json:"price" validate:"gte=0"`
}

// CartItemResponse un renglón del carrito.
type CartItemResponse struct {
	ID         string  `json:"_id"`
	MenuItemID string  `json:"menuItemId"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
}
