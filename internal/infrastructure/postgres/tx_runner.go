package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/activos-pro/internal/application/slip"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
)

var _ slip.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Ningún colaborador comete por su cuenta: el Rollback
// diferido es no-op después de un Commit exitoso.
func (r *TxRunner) Run(ctx context.Context, fn func(
	slipRepo repository.SlipRepository,
	stockRepo repository.StockBalanceRepository,
	assetRepo repository.AssetRepository,
	itemRepo repository.ItemRepository,
	movRepo repository.MovementLogRepository,
	auditRepo repository.AuditEventRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	slipRepo := NewSlipRepository(tx)
	stockRepo := NewStockBalanceRepository(tx)
	assetRepo := NewAssetRepository(tx)
	itemRepo := NewItemRepository(tx)
	movRepo := NewMovementLogRepository(tx)
	auditRepo := NewAuditEventRepository(tx)

	if err := fn(slipRepo, stockRepo, assetRepo, itemRepo, movRepo, auditRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
