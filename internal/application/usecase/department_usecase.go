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

// DepartmentUseCase casos de uso CRUD para departamentos.
type DepartmentUseCase struct {
	repo      repository.DepartmentRepository
	auditRepo repository.AuditEventRepository
	auditor   *audit.Recorder
}

// NewDepartmentUseCase construye el caso de uso.
func NewDepartmentUseCase(repo repository.DepartmentRepository, auditRepo repository.AuditEventRepository, auditor *audit.Recorder) *DepartmentUseCase {
	return &DepartmentUseCase{repo: repo, auditRepo: auditRepo, auditor: auditor}
}

// Create crea un departamento.
func (uc *DepartmentUseCase) Create(actorID string, in dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "requerido")
	}
	now := time.Now()
	department := &entity.Department{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(department); err != nil {
		return nil, err
	}
	if err := uc.auditor.Write(uc.auditRepo, "department", department.ID, entity.AuditActionCreate, nil, department, actorID); err != nil {
		return nil, err
	}
	return toDepartmentResponse(department), nil
}

// List lista departamentos paginados.
func (uc *DepartmentUseCase) List(limit, offset int) ([]*dto.DepartmentResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DepartmentResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDepartmentResponse(d))
	}
	return out, nil
}

func toDepartmentResponse(d *entity.Department) *dto.DepartmentResponse {
	return &dto.DepartmentResponse{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
