package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
)

var _ repository.AuditEventRepository = (*AuditEventRepo)(nil)

// AuditEventRepo implementación sobre PostgreSQL (usable con pool o tx).
// La tabla audit_events es solo-append: no hay UPDATE ni DELETE.
type AuditEventRepo struct {
	q Querier
}

// NewAuditEventRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditEventRepository(q Querier) *AuditEventRepo {
	return &AuditEventRepo{q: q}
}

// Create agrega un evento de auditoría. Los snapshots van en columnas jsonb.
func (r *AuditEventRepo) Create(event *entity.AuditEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	query := `
		INSERT INTO audit_events (id, entity_type, entity_id, action, old_value, new_value, actor_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.EntityType, event.EntityID, event.Action,
		event.OldValue, event.NewValue, nullable(event.ActorID), event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create audit event: %w", err)
	}
	return nil
}

// List consulta la bitácora por entidad, más recientes primero.
func (r *AuditEventRepo) List(entityType, entityID string, limit, offset int) ([]*entity.AuditEvent, error) {
	query := `
		SELECT id, entity_type, entity_id, action, old_value, new_value, actor_id, created_at
		FROM audit_events WHERE 1=1`
	args := []any{}
	pos := 1
	if entityType != "" {
		query += fmt.Sprintf(" AND entity_type = $%d", pos)
		args = append(args, entityType)
		pos++
	}
	if entityID != "" {
		query += fmt.Sprintf(" AND entity_id = $%d", pos)
		args = append(args, entityID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditEvent
	for rows.Next() {
		var e entity.AuditEvent
		var actorID *string
		if err := rows.Scan(&e.ID, &e.EntityType, &e.EntityID, &e.Action,
			&e.OldValue, &e.NewValue, &actorID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		e.ActorID = deref(actorID)
		list = append(list, &e)
	}
	return list, rows.Err()
}
