package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
)

var _ repository.StockBalanceRepository = (*StockBalanceRepo)(nil)

// StockBalanceRepo implementación de StockBalanceRepository sobre PostgreSQL (usable con pool o tx).
type StockBalanceRepo struct {
	q Querier
}

// NewStockBalanceRepository construye el adaptador de saldos. Pasar pool o tx (Querier).
func NewStockBalanceRepository(q Querier) *StockBalanceRepo {
	return &StockBalanceRepo{q: q}
}

// Get obtiene el saldo actual de un item en una ubicación; si la fila no
// existe devuelve saldo cero (se crea perezosamente en el Upsert).
func (r *StockBalanceRepo) Get(itemID, locationID string) (*entity.StockBalance, error) {
	query := `
		SELECT item_id, location_id, qty_on_hand, updated_at
		FROM stock_balances WHERE item_id = $1 AND location_id = $2`
	var b entity.StockBalance
	err := r.q.QueryRow(context.Background(), query, itemID, locationID).Scan(
		&b.ItemID, &b.LocationID, &b.QtyOnHand, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockBalance{ItemID: itemID, LocationID: locationID, QtyOnHand: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock balance: %w", err)
	}
	return &b, nil
}

// GetForUpdate obtiene el saldo y bloquea la fila para update (SELECT FOR UPDATE).
func (r *StockBalanceRepo) GetForUpdate(itemID, locationID string) (*entity.StockBalance, error) {
	query := `
		SELECT item_id, location_id, qty_on_hand, updated_at
		FROM stock_balances WHERE item_id = $1 AND location_id = $2
		FOR UPDATE`
	var b entity.StockBalance
	err := r.q.QueryRow(context.Background(), query, itemID, locationID).Scan(
		&b.ItemID, &b.LocationID, &b.QtyOnHand, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockBalance{ItemID: itemID, LocationID: locationID, QtyOnHand: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock balance for update: %w", err)
	}
	return &b, nil
}

// Upsert inserta o actualiza el saldo (por item y ubicación).
func (r *StockBalanceRepo) Upsert(balance *entity.StockBalance) error {
	query := `
		INSERT INTO stock_balances (item_id, location_id, qty_on_hand, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (item_id, location_id)
		DO UPDATE SET qty_on_hand = EXCLUDED.qty_on_hand, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, balance.ItemID, balance.LocationID, balance.QtyOnHand)
	if err != nil {
		return fmt.Errorf("upsert stock balance: %w", err)
	}
	return nil
}
