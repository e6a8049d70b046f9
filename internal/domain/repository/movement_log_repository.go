package repository

import "github.com/tu-usuario/activos-pro/internal/domain/entity"

// MovementLogFilter filtros de consulta del histórico de movimientos.
type MovementLogFilter struct {
	SlipID     string
	ItemID     string
	AssetID    string
	LocationID string // coincide contra origen o destino
}

// MovementLogRepository puerto del registro de movimientos. Solo-append:
// no expone actualización ni borrado.
type MovementLogRepository interface {
	Create(log *entity.MovementLog) error
	List(filter MovementLogFilter, limit, offset int) ([]*entity.MovementLog, error)
}
