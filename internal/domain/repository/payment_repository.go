package repository

import "github.com/crunchyspot/crunchyspot-api/internal/domain/entity"

// PaymentRepository puerto de persistencia para pagos y sus agregados de reporte.
type PaymentRepository interface {
	Insert(payment *entity.Payment) (insertedID string, err error)
	ListByEmail(email string) ([]*entity.Payment, error)
	Count() (int64, error)
	// Revenue total facturado (suma de price sobre todos los pagos).
	Revenue() (float64, error)
	// OrdersByCategory agrupa los platos vendidos por categoría del menú
	// (unwind de menu_item_ids + lookup contra menu + group).
	OrdersByCategory() ([]entity.CategoryStat, error)
}
