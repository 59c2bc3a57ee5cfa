package mongodb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/crunchyspot/crunchyspot-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// idFilters — plan de interpretaciones del _id
// ──────────────────────────────────────────────────────────────────────────────

// Un hex válido de 24 caracteres produce dos filtros: ObjectID primero, string después.
func TestIDFilters_HexValido_ObjectIDPrimero(t *testing.T) {
	raw := primitive.NewObjectID().Hex()
	filters := idFilters(raw)

	require.Len(t, filters, 2, "hex válido debe producir dos interpretaciones")

	oid, ok := filters[0]["_id"].(primitive.ObjectID)
	require.True(t, ok, "la primera interpretación debe ser ObjectID")
	assert.Equal(t, raw, oid.Hex())

	s, ok := filters[1]["_id"].(string)
	require.True(t, ok, "la segunda interpretación debe ser string literal")
	assert.Equal(t, raw, s)
}

// Un id que no es hex válido omite la interpretación ObjectID por completo.
func TestIDFilters_IdLegado_SoloString(t *testing.T) {
	filters := idFilters("item-42")

	require.Len(t, filters, 1)
	assert.Equal(t, bson.M{"_id": "item-42"}, filters[0])
}

// ──────────────────────────────────────────────────────────────────────────────
// resolveByID — estrategia secuencial de dos intentos
// ──────────────────────────────────────────────────────────────────────────────

// Match en el primer intento: el segundo nunca se ejecuta.
func TestResolveByID_MatchObjectID_NoCaeAlString(t *testing.T) {
	raw := primitive.NewObjectID().Hex()
	var attempts []bson.M

	err := resolveByID(raw, func(filter bson.M) (bool, error) {
		attempts = append(attempts, filter)
		return true, nil
	})

	require.NoError(t, err)
	require.Len(t, attempts, 1, "con match en ObjectID no debe intentarse el string")
	_, isOID := attempts[0]["_id"].(primitive.ObjectID)
	assert.True(t, isOID)
}

// Sin match como ObjectID, el segundo intento usa el id como string literal.
func TestResolveByID_FallbackAString_PreservaOrden(t *testing.T) {
	raw := primitive.NewObjectID().Hex()
	var attempts []bson.M

	err := resolveByID(raw, func(filter bson.M) (bool, error) {
		attempts = append(attempts, filter)
		_, isString := filter["_id"].(string)
		return isString, nil // solo matchea la interpretación string
	})

	require.NoError(t, err)
	require.Len(t, attempts, 2)
	_, first := attempts[0]["_id"].(primitive.ObjectID)
	_, second := attempts[1]["_id"].(string)
	assert.True(t, first, "el primer intento debe ser siempre ObjectID")
	assert.True(t, second, "el segundo intento debe ser el string literal")
}

// Id legado: un solo intento, directamente como string.
func TestResolveByID_IdLegado_UnSoloIntento(t *testing.T) {
	var attempts int

	err := resolveByID("item-42", func(filter bson.M) (bool, error) {
		attempts++
		assert.Equal(t, "item-42", filter["_id"])
		return true, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

// Agotadas ambas interpretaciones sin match → ErrNotFound, y repetir la
// llamada con el mismo input produce el mismo resultado (idempotencia).
func TestResolveByID_SinMatch_NotFoundIdempotente(t *testing.T) {
	raw := primitive.NewObjectID().Hex()
	attempt := func(filter bson.M) (bool, error) { return false, nil }

	err1 := resolveByID(raw, attempt)
	err2 := resolveByID(raw, attempt)

	assert.ErrorIs(t, err1, domain.ErrNotFound)
	assert.ErrorIs(t, err2, domain.ErrNotFound)
}

// Un error del store corta la resolución: no se intenta la siguiente interpretación.
func TestResolveByID_ErrorDelStore_CortaElPlan(t *testing.T) {
	raw := primitive.NewObjectID().Hex()
	storeErr := errors.New("conexión perdida")
	var attempts int

	err := resolveByID(raw, func(filter bson.M) (bool, error) {
		attempts++
		return false, storeErr
	})

	assert.ErrorIs(t, err, storeErr)
	assert.Equal(t, 1, attempts, "tras un error no debe haber más intentos")
}
