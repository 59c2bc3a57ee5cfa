package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/crunchyspot/crunchyspot-api/internal/domain"
)

// Resolución de identificadores con doble interpretación. Colecciones con
// datos legados mezclan `_id` ObjectID y `_id` string; un id crudo del caller
// se intenta SIEMPRE primero como ObjectID (si es hex válido) y después como
// string literal. El orden es fijo y la resolución se detiene en el primer
// match, de modo que una escritura afecta a lo sumo un documento por llamada.

// idFilters devuelve los filtros a intentar, en orden. Si rawID no es un
// ObjectID sintácticamente válido, la primera interpretación se omite.
func idFilters(rawID string) []bson.M {
	filters := make([]bson.M, 0, 2)
	if oid, err := primitive.ObjectIDFromHex(rawID); err == nil {
		filters = append(filters, bson.M{"_id": oid})
	}
	filters = append(filters, bson.M{"_id": rawID})
	return filters
}

// resolveByID ejecuta attempt con cada filtro del plan en orden y se detiene
// en el primero que reporta match. Agotado el plan sin match devuelve
// domain.ErrNotFound. Determinista e idempotente sobre un store sin cambios.
func resolveByID(rawID string, attempt func(filter bson.M) (matched bool, err error)) error {
	for _, filter := range idFilters(rawID) {
		matched, err := attempt(filter)
		if err != nil {
			return err
		}
		if matched {
			return nil
		}
	}
	return domain.ErrNotFound
}
