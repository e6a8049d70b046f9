package repository

import "github.com/tu-usuario/activos-pro/internal/domain/entity"

// StockBalanceRepository define el puerto para consultar/actualizar el saldo
// por (item, ubicación). Usado dentro de transacciones para garantizar consistencia.
type StockBalanceRepository interface {
	Get(itemID, locationID string) (*entity.StockBalance, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE); si no existe
	// devuelve un saldo en cero (la fila se crea en el Upsert).
	GetForUpdate(itemID, locationID string) (*entity.StockBalance, error)
	Upsert(balance *entity.StockBalance) error
}
