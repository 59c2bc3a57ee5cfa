package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem un plato agregado al carrito de un usuario (alcance por email).
// Se elimina individualmente o en bloque cuando se registra un pago.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	MenuItemID string             `bson:"menu_item_id"`
	Email      string             `bson:"email"`
	Name       string             `bson:"name"`
	Image      string             `bson:"image"`
	Price      float64            `bson:"price"`
}
