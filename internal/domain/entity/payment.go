package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment registro inmutable de un pago confirmado. Al crearse dispara la
// purga de los carritos referenciados y el envío (best-effort) del recibo.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Email         string             `bson:"email"`
	Price         float64            `bson:"price"`
	TransactionID string             `bson:"transaction_id"`
	CartIDs       []string           `bson:"cart_ids"`
	MenuItemIDs   []string           `bson:"menu_item_ids"`
	Status        string             `bson:"status"`
	Date          time.Time          `bson:"date"`
}

// CategoryStat agregado de ventas por categoría del menú (reportes admin).
type CategoryStat struct {
	Category string  `bson:"category"`
	Quantity int64   `bson:"quantity"`
	Revenue  float64 `bson:"revenue"`
}
