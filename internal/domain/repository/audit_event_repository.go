package repository

import "github.com/tu-usuario/activos-pro/internal/domain/entity"

// AuditEventRepository puerto de la bitácora de auditoría. Solo-append:
// no expone actualización ni borrado.
type AuditEventRepository interface {
	Create(event *entity.AuditEvent) error
	List(entityType, entityID string, limit, offset int) ([]*entity.AuditEvent, error)
}
