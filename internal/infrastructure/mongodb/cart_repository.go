package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/crunchyspot/crunchyspot-api/internal/domain"
	"github.com/crunchyspot/crunchyspot-api/internal/domain/entity"
	"github.com/crunchyspot/crunchyspot-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre MongoDB.
type CartRepo struct {
	col *mongo.Collection
}

// NewCartRepository construye el adaptador de persistencia para carritos.
func NewCartRepository(db *mongo.Database) *CartRepo {
	return &CartRepo{col: db.Collection(colCarts)}
}

// ListByEmail devuelve el carrito del email indicado.
func (r *CartRepo) ListByEmail(email string) ([]*entity.CartItem, error) {
	ctx := context.Background()
	cur, err := r.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("list carts: %w", err)
	}
	defer cur.Close(ctx)
	var list []*entity.CartItem
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode carts: %w", err)
	}
	return list, nil
}

// Insert agrega un renglón al carrito.
func (r *CartRepo) Insert(item *entity.CartItem) (string, error) {
	doc := bson.M{
		"menu_item_id": item.MenuItemID,
		"email":        item.Email,
		"name":         item.Name,
		"image":        item.Image,
		"price":        item.Price,
	}
	res, err := r.col.InsertOne(context.Background(), doc)
	if err != nil {
		return "", fmt.Errorf("insert cart item: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert cart item: _id inesperado %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// Delete elimina un renglón del carrito por ObjectID.
func (r *CartRepo) Delete(id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, domain.ErrInvalidInput
	}
	res, err := r.col.DeleteOne(context.Background(), bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete cart item: %w", err)
	}
	return res.DeletedCount, nil
}

// DeleteByIDs purga en bloque los carritos listados en un pago.
// Ids que no son hex válido se ignoran: la purga nunca tumba un pago ya registrado.
func (r *CartRepo) DeleteByIDs(ids []string) (int64, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return 0, nil
	}
	res, err := r.col.DeleteMany(context.Background(), bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return 0, fmt.Errorf("delete cart items: %w", err)
	}
	return res.DeletedCount, nil
}
