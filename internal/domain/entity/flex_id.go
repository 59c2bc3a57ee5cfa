package entity

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// FlexID es el `_id` de colecciones con datos legados: los documentos nuevos
// llevan ObjectID generado por el store, pero existen documentos antiguos con
// `_id` string plano. Se decodifica a su forma hex o literal según el caso.
// Las escrituras nuevas nunca usan FlexID: el store genera siempre ObjectID.
type FlexID string

var _ bson.ValueUnmarshaler = (*FlexID)(nil)

// UnmarshalBSONValue acepta ObjectID (→ hex) o string literal.
func (id *FlexID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.ObjectID:
		oid, ok := rv.ObjectIDOK()
		if !ok {
			return fmt.Errorf("flexid: ObjectID malformado")
		}
		*id = FlexID(oid.Hex())
	case bsontype.String:
		s, ok := rv.StringValueOK()
		if !ok {
			return fmt.Errorf("flexid: string malformado")
		}
		*id = FlexID(s)
	default:
		return fmt.Errorf("flexid: tipo BSON no soportado para _id: %s", t)
	}
	return nil
}

// String devuelve la representación textual del identificador.
func (id FlexID) String() string { return string(id) }
