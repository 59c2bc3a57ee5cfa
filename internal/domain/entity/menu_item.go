package entity

// MenuItem un plato del menú. El `_id` puede ser ObjectID generado o un
// string legado; la forma queda fija en la creación y toda búsqueda
// posterior la tolera vía el resolver de identificadores.
type MenuItem struct {
	ID          FlexID  `bson:"_id"`
	Name        string  `bson:"name"`
	Recipe      string  `bson:"recipe"`
	Description string  `bson:"description,omitempty"`
	Image       string  `bson:"image"`
	Category    string  `bson:"category"`
	Price       float64 `bson:"price"`
}
