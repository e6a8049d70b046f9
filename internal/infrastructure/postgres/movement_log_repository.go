package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
)

var _ repository.MovementLogRepository = (*MovementLogRepo)(nil)

// MovementLogRepo implementación sobre PostgreSQL (usable con pool o tx).
// La tabla movement_logs es solo-append: no hay UPDATE ni DELETE.
type MovementLogRepo struct {
	q Querier
}

// NewMovementLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementLogRepository(q Querier) *MovementLogRepo {
	return &MovementLogRepo{q: q}
}

// Create agrega un registro de movimiento. Append puro: toda validación
// ocurrió aguas arriba.
func (r *MovementLogRepo) Create(log *entity.MovementLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movement_logs (id, slip_id, item_id, asset_id, from_location_id, to_location_id, quantity_delta, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, nullable(log.SlipID), nullable(log.ItemID), nullable(log.AssetID),
		nullable(log.FromLocationID), nullable(log.ToLocationID), log.QuantityDelta, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement log: %w", err)
	}
	return nil
}

// List consulta el histórico con filtros opcionales, más recientes primero.
func (r *MovementLogRepo) List(filter repository.MovementLogFilter, limit, offset int) ([]*entity.MovementLog, error) {
	query := `
		SELECT id, slip_id, item_id, asset_id, from_location_id, to_location_id, quantity_delta, created_at
		FROM movement_logs WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.SlipID != "" {
		query += fmt.Sprintf(" AND slip_id = $%d", pos)
		args = append(args, filter.SlipID)
		pos++
	}
	if filter.ItemID != "" {
		query += fmt.Sprintf(" AND item_id = $%d", pos)
		args = append(args, filter.ItemID)
		pos++
	}
	if filter.AssetID != "" {
		query += fmt.Sprintf(" AND asset_id = $%d", pos)
		args = append(args, filter.AssetID)
		pos++
	}
	if filter.LocationID != "" {
		query += fmt.Sprintf(" AND (from_location_id = $%d OR to_location_id = $%d)", pos, pos)
		args = append(args, filter.LocationID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movement logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementLog
	for rows.Next() {
		var m entity.MovementLog
		var slipID, itemID, assetID, fromLoc, toLoc *string
		var delta *decimal.Decimal
		if err := rows.Scan(&m.ID, &slipID, &itemID, &assetID, &fromLoc, &toLoc, &delta, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement log: %w", err)
		}
		m.SlipID = deref(slipID)
		m.ItemID = deref(itemID)
		m.AssetID = deref(assetID)
		m.FromLocationID = deref(fromLoc)
		m.ToLocationID = deref(toLoc)
		m.QuantityDelta = delta
		list = append(list, &m)
	}
	return list, rows.Err()
}
