package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/crunchyspot/crunchyspot-api/internal/domain/entity"
	"github.com/crunchyspot/crunchyspot-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación del puerto PaymentRepository sobre MongoDB.
type PaymentRepo struct {
	col *mongo.Collection
}

// NewPaymentRepository construye el adaptador de persistencia para pagos.
func NewPaymentRepository(db *mongo.Database) *PaymentRepo {
	return &PaymentRepo{col: db.Collection(colPayments)}
}

// Insert persiste un pago. El registro es inmutable: no existe Update.
func (r *PaymentRepo) Insert(p *entity.Payment) (string, error) {
	doc := bson.M{
		"email":          p.Email,
		"price":          p.Price,
		"transaction_id": p.TransactionID,
		"cart_ids":       p.CartIDs,
		"menu_item_ids":  p.MenuItemIDs,
		"status":         p.Status,
		"date":           p.Date,
	}
	res, err := r.col.InsertOne(context.Background(), doc)
	if err != nil {
		return "", fmt.Errorf("insert payment: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert payment: _id inesperado %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// ListByEmail devuelve los pagos de un usuario, más recientes primero.
func (r *PaymentRepo) ListByEmail(email string) ([]*entity.Payment, error) {
	ctx := context.Background()
	cur, err := r.col.Find(ctx, bson.M{"email": email},
		options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer cur.Close(ctx)
	var list []*entity.Payment
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}
	return list, nil
}

// Count total de pagos registrados (= órdenes).
func (r *PaymentRepo) Count() (int64, error) {
	n, err := r.col.CountDocuments(context.Background(), bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count payments: %w", err)
	}
	return n, nil
}

// Revenue suma de price sobre todos los pagos vía aggregate.
func (r *PaymentRepo) Revenue() (float64, error) {
	ctx := context.Background()
	pipeline := []bson.M{
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$price"}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregate revenue: %w", err)
	}
	defer cur.Close(ctx)
	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("decode revenue: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

// OrdersByCategory ventas por categoría: unwind de menu_item_ids, lookup
// contra menu y group por categoría. El $convert con onError preserva los
// ids string legados para que el lookup matchee ambas formas de _id.
func (r *PaymentRepo) OrdersByCategory() ([]entity.CategoryStat, error) {
	ctx := context.Background()
	pipeline := []bson.M{
		{"$unwind": "$menu_item_ids"},
		{"$addFields": bson.M{
			"menu_item_ref": bson.M{"$convert": bson.M{
				"input":   "$menu_item_ids",
				"to":      "objectId",
				"onError": "$menu_item_ids",
			}},
		}},
		{"$lookup": bson.M{
			"from":         colMenu,
			"localField":   "menu_item_ref",
			"foreignField": "_id",
			"as":           "items",
		}},
		{"$unwind": "$items"},
		{"$group": bson.M{
			"_id":      "$items.category",
			"quantity": bson.M{"$sum": 1},
			"revenue":  bson.M{"$sum": "$items.price"},
		}},
		{"$project": bson.M{
			"_id":      0,
			"category": "$_id",
			"quantity": 1,
			"revenue":  1,
		}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate order stats: %w", err)
	}
	defer cur.Close(ctx)
	var stats []entity.CategoryStat
	if err := cur.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("decode order stats: %w", err)
	}
	return stats, nil
}
