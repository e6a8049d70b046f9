package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementLog registro inmutable de un cambio físico o de cantidad,
// ligado al vale que lo originó. Solo se agrega: no existe ruta de
// actualización ni borrado.
type MovementLog struct {
	ID             string
	SlipID         string // vacío = movimiento sin vale (ej. mantenimiento)
	ItemID         string
	AssetID        string
	FromLocationID string
	ToLocationID   string
	QuantityDelta  *decimal.Decimal // nil para movimientos de solo activo
	CreatedAt      time.Time
}
