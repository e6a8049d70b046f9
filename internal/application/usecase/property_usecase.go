package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/activos-pro/internal/application/audit"
	"github.com/tu-usuario/activos-pro/internal/application/dto"
	"github.com/tu-usuario/activos-pro/internal/domain"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
)

// PropertyUseCase casos de uso CRUD para propiedades. Cada mutación queda
// auditada (snapshot antes/después).
type PropertyUseCase struct {
	repo      repository.PropertyRepository
	auditRepo repository.AuditEventRepository
	auditor   *audit.Recorder
}

// NewPropertyUseCase construye el caso de uso.
func NewPropertyUseCase(repo repository.PropertyRepository, auditRepo repository.AuditEventRepository, auditor *audit.Recorder) *PropertyUseCase {
	return &PropertyUseCase{repo: repo, auditRepo: auditRepo, auditor: auditor}
}

// Create crea una propiedad.
func (uc *PropertyUseCase) Create(actorID string, in dto.CreatePropertyRequest) (*dto.PropertyResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "requerido")
	}
	now := time.Now()
	property := &entity.Property{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(property); err != nil {
		return nil, err
	}
	if err := uc.auditor.Write(uc.auditRepo, "property", property.ID, entity.AuditActionCreate, nil, property, actorID); err != nil {
		return nil, err
	}
	return toPropertyResponse(property), nil
}

// GetByID obtiene una propiedad.
func (uc *PropertyUseCase) GetByID(id string) (*dto.PropertyResponse, error) {
	property, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, domain.ErrNotFound
	}
	return toPropertyResponse(property), nil
}

// List lista propiedades paginadas.
func (uc *PropertyUseCase) List(limit, offset int) ([]*dto.PropertyResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PropertyResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPropertyResponse(p))
	}
	return out, nil
}

// Delete elimina una propiedad y audita el borrado con su último snapshot.
func (uc *PropertyUseCase) Delete(actorID, id string) error {
	property, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if property == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	return uc.auditor.Write(uc.auditRepo, "property", id, entity.AuditActionDelete, property, nil, actorID)
}

func toPropertyResponse(p *entity.Property) *dto.PropertyResponse {
	return &dto.PropertyResponse{
		ID:        p.ID,
		Name:      p.Name,
		Address:   p.Address,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
