package slip

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/activos-pro/internal/domain"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
)

// AdjustStock aplica un delta firmado al saldo de (item, ubicación) dentro de
// la transacción del caller (el repo debe estar atado a la tx).
//
// Bloquea la fila con SELECT FOR UPDATE para serializar ajustes concurrentes
// sobre el mismo par; pares distintos no se bloquean entre sí. Si la fila no
// existe el saldo actual es cero y la fila se crea en el upsert. La invariante
// de no-negatividad se verifica aquí, en cada punto de llamada, sin importar
// el tipo de vale: si el resultado sería negativo retorna
// *domain.InsufficientStockError y el caller debe abortar la transacción
// completa (sin aplicación parcial).
func AdjustStock(stockRepo repository.StockBalanceRepository, itemID, locationID string, delta decimal.Decimal, now time.Time) (*entity.StockBalance, error) {
	balance, err := stockRepo.GetForUpdate(itemID, locationID)
	if err != nil {
		return nil, err
	}
	next := balance.QtyOnHand.Add(delta)
	if next.IsNegative() {
		return nil, &domain.InsufficientStockError{
			ItemID:     itemID,
			LocationID: locationID,
			Delta:      delta,
			Current:    balance.QtyOnHand,
		}
	}
	balance.QtyOnHand = next
	balance.UpdatedAt = now
	if err := stockRepo.Upsert(balance); err != nil {
		return nil, err
	}
	return balance, nil
}
