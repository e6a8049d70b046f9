package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockBalance existencia actual de un item en una ubicación.
// Clave única (item_id, location_id); se crea perezosamente con el primer
// movimiento del par y nunca puede quedar negativa.
type StockBalance struct {
	ItemID     string
	LocationID string
	QtyOnHand  decimal.Decimal
	UpdatedAt  time.Time
}
