package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/crunchyspot/crunchyspot-api/internal/domain/entity"
	"github.com/crunchyspot/crunchyspot-api/internal/domain/repository"
)

var _ repository.MenuRepository = (*MenuRepo)(nil)

// MenuRepo implementación del puerto MenuRepository sobre MongoDB.
// Las operaciones por id usan resolveByID: ObjectID primero, string después.
type MenuRepo struct {
	col *mongo.Collection
}

// NewMenuRepository construye el adaptador de persistencia para el menú.
func NewMenuRepository(db *mongo.Database) *MenuRepo {
	return &MenuRepo{col: db.Collection(colMenu)}
}

// List devuelve el menú, filtrado por categoría si se indica.
func (r *MenuRepo) List(category string) ([]*entity.MenuItem, error) {
	ctx := context.Background()
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	defer cur.Close(ctx)
	var list []*entity.MenuItem
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}
	return list, nil
}

// FindByID busca un plato con la doble interpretación del _id.
func (r *MenuRepo) FindByID(rawID string) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := resolveByID(rawID, func(filter bson.M) (bool, error) {
		err := r.col.FindOne(context.Background(), filter).Decode(&item)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return false, nil
			}
			return false, fmt.Errorf("get menu item: %w", err)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Insert persiste un plato nuevo; el _id lo genera siempre el store
// (las altas nuevas quedan normalizadas a ObjectID).
func (r *MenuRepo) Insert(item *entity.MenuItem) (string, error) {
	doc := bson.M{
		"name":     item.Name,
		"recipe":   item.Recipe,
		"image":    item.Image,
		"category": item.Category,
		"price":    item.Price,
	}
	if item.Description != "" {
		doc["description"] = item.Description
	}
	res, err := r.col.InsertOne(context.Background(), doc)
	if err != nil {
		return "", fmt.Errorf("insert menu item: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert menu item: _id inesperado %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// Update actualiza los campos editables con la doble interpretación del _id.
// A lo sumo un documento resulta afectado por llamada.
func (r *MenuRepo) Update(rawID string, patch repository.MenuItemPatch) error {
	update := bson.M{"$set": bson.M{
		"name":        patch.Name,
		"price":       patch.Price,
		"recipe":      patch.Recipe,
		"description": patch.Description,
		"image":       patch.Image,
	}}
	return resolveByID(rawID, func(filter bson.M) (bool, error) {
		res, err := r.col.UpdateOne(context.Background(), filter, update)
		if err != nil {
			return false, fmt.Errorf("update menu item: %w", err)
		}
		return res.MatchedCount > 0, nil
	})
}

// Delete elimina un plato con la doble interpretación del _id.
func (r *MenuRepo) Delete(rawID string) error {
	return resolveByID(rawID, func(filter bson.M) (bool, error) {
		res, err := r.col.DeleteOne(context.Background(), filter)
		if err != nil {
			return false, fmt.Errorf("delete menu item: %w", err)
		}
		return res.DeletedCount > 0, nil
	})
}

// Count total de platos del menú.
func (r *MenuRepo) Count() (int64, error) {
	n, err := r.col.CountDocuments(context.Background(), bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count menu: %w", err)
	}
	return n, nil
}
