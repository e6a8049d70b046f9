package entity

import "time"

// Acciones auditables sobre entidades.
const (
	AuditActionCreate = "CREATE"
	AuditActionUpdate = "UPDATE"
	AuditActionDelete = "DELETE"
)

// AuditEvent snapshot inmutable antes/después de cada mutación de cualquier
// entidad rastreada, independiente del resultado de negocio. En CREATE no hay
// OldValue; en DELETE no hay NewValue. Tabla solo-append.
type AuditEvent struct {
	ID         string
	EntityType string // "slip", "asset", "item", "location", "property", ...
	EntityID   string
	Action     string // CREATE, UPDATE, DELETE
	OldValue   []byte // snapshot JSON, nil si no aplica
	NewValue   []byte // snapshot JSON, nil si no aplica
	ActorID    string
	CreatedAt  time.Time
}
