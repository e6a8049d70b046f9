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

// LocationUseCase casos de uso CRUD para ubicaciones.
type LocationUseCase struct {
	repo         repository.LocationRepository
	propertyRepo repository.PropertyRepository
	auditRepo    repository.AuditEventRepository
	auditor      *audit.Recorder
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository, propertyRepo repository.PropertyRepository, auditRepo repository.AuditEventRepository, auditor *audit.Recorder) *LocationUseCase {
	return &LocationUseCase{repo: repo, propertyRepo: propertyRepo, auditRepo: auditRepo, auditor: auditor}
}

// Create crea una ubicación; la propiedad debe existir.
func (uc *LocationUseCase) Create(actorID string, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "requerido")
	}
	property, err := uc.propertyRepo.GetByID(in.PropertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	location := &entity.Location{
		ID:         uuid.New().String(),
		PropertyID: in.PropertyID,
		Name:       in.Name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	if err := uc.auditor.Write(uc.auditRepo, "location", location.ID, entity.AuditActionCreate, nil, location, actorID); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// GetByID obtiene una ubicación.
func (uc *LocationUseCase) GetByID(id string) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	return toLocationResponse(location), nil
}

// ListByProperty lista ubicaciones de una propiedad.
func (uc *LocationUseCase) ListByProperty(propertyID string, limit, offset int) ([]*dto.LocationResponse, error) {
	list, err := uc.repo.ListByProperty(propertyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LocationResponse, 0, len(list))
	for _, l := range list {
		out = append(out, toLocationResponse(l))
	}
	return out, nil
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:         l.ID,
		PropertyID: l.PropertyID,
		Name:       l.Name,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}
