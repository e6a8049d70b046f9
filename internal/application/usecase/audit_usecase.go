package usecase

import (
	"github.com/tu-usuario/activos-pro/internal/application/dto"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
)

// AuditQueryUseCase lectura de la bitácora de auditoría (solo-append, sin mutaciones).
type AuditQueryUseCase struct {
	repo repository.AuditEventRepository
}

// NewAuditQueryUseCase construye el caso de uso.
func NewAuditQueryUseCase(repo repository.AuditEventRepository) *AuditQueryUseCase {
	return &AuditQueryUseCase{repo: repo}
}

// List lista eventos filtrando opcionalmente por tipo de entidad y/o ID.
func (uc *AuditQueryUseCase) List(entityType, entityID string, limit, offset int) ([]*dto.AuditEventResponse, error) {
	events, err := uc.repo.List(entityType, entityID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AuditEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, &dto.AuditEventResponse{
			ID:         e.ID,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Action:     e.Action,
			OldValue:   e.OldValue,
			NewValue:   e.NewValue,
			ActorID:    e.ActorID,
			CreatedAt:  e.CreatedAt,
		})
	}
	return out, nil
}
