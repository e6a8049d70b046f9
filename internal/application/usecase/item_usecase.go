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

// ItemUseCase casos de uso CRUD para items (tipos de artículo fungible).
type ItemUseCase struct {
	repo      repository.ItemRepository
	auditRepo repository.AuditEventRepository
	auditor   *audit.Recorder
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, auditRepo repository.AuditEventRepository, auditor *audit.Recorder) *ItemUseCase {
	return &ItemUseCase{repo: repo, auditRepo: auditRepo, auditor: auditor}
}

// Create crea un item.
func (uc *ItemUseCase) Create(actorID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "requerido")
	}
	if in.Unit == "" {
		return nil, domain.NewValidationError("unit", "requerido")
	}
	now := time.Now()
	item := &entity.Item{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        in.Name,
		Unit:        in.Unit,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	if err := uc.auditor.Write(uc.auditRepo, "item", item.ID, entity.AuditActionCreate, nil, item, actorID); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Update actualiza campos editables de un item.
func (uc *ItemUseCase) Update(actorID, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	before := *item
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	if err := uc.auditor.Write(uc.auditRepo, "item", item.ID, entity.AuditActionUpdate, &before, item, actorID); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un item.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// List lista items paginados.
func (uc *ItemUseCase) List(limit, offset int) ([]*dto.ItemResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, toItemResponse(it))
	}
	return out, nil
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:          i.ID,
		SKU:         i.SKU,
		Name:        i.Name,
		Unit:        i.Unit,
		Description: i.Description,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
