package audit

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
)

// Recorder escribe snapshots antes/después por cada mutación de entidades.
// Recibe el repositorio por parámetro: el motor de vales pasa el repo atado a
// su transacción (si la tx hace rollback el evento tampoco persiste) y los
// casos de uso CRUD pasan el repo del pool.
type Recorder struct{}

// NewRecorder construye el recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Write agrega un evento de auditoría. En CREATE oldValue va en nil; en DELETE
// newValue va en nil. Los snapshots se serializan a JSON.
func (r *Recorder) Write(repo repository.AuditEventRepository, entityType, entityID, action string, oldValue, newValue any, actorID string) error {
	event := &entity.AuditEvent{
		ID:         uuid.New().String(),
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		ActorID:    actorID,
		CreatedAt:  time.Now(),
	}
	if oldValue != nil {
		data, err := json.Marshal(oldValue)
		if err != nil {
			return fmt.Errorf("audit: serializar snapshot anterior: %w", err)
		}
		event.OldValue = data
	}
	if newValue != nil {
		data, err := json.Marshal(newValue)
		if err != nil {
			return fmt.Errorf("audit: serializar snapshot nuevo: %w", err)
		}
		event.NewValue = data
	}
	return repo.Create(event)
}
