package dto

// CreateMenuItemRequest alta de un plato (solo admin).
type CreateMenuItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Recipe      string  `json:"recipe"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

// UpdateMenuItemRequest campos actualizables de un plato (solo admin).
type UpdateMenuItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Recipe      string  `json:"recipe"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// MenuItemResponse representación pública de un plato. El _id conserva la
// forma con la que fue creado (hex de ObjectID o string legado).
type MenuItemResponse struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Recipe      string  `json:"recipe"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
}

// InsertResult id asignado por el store en una inserción.
type InsertResult struct {
	InsertedID string `json:"insertedId"`
}
