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

// Tope fijo del endpoint de búsqueda de activos.
const assetSearchLimit = 50

// AssetUseCase casos de uso de activos: CRUD de datos maestros y búsqueda.
// La condición y la ubicación NO se mutan aquí: eso es del motor de vales
// (o de los flujos de mantenimiento).
type AssetUseCase struct {
	repo      repository.AssetRepository
	itemRepo  repository.ItemRepository
	auditRepo repository.AuditEventRepository
	auditor   *audit.Recorder
}

// NewAssetUseCase construye el caso de uso.
func NewAssetUseCase(repo repository.AssetRepository, itemRepo repository.ItemRepository, auditRepo repository.AuditEventRepository, auditor *audit.Recorder) *AssetUseCase {
	return &AssetUseCase{repo: repo, itemRepo: itemRepo, auditRepo: auditRepo, auditor: auditor}
}

// Create crea un activo con placa única.
func (uc *AssetUseCase) Create(actorID string, in dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	if in.Tag == "" {
		return nil, domain.NewValidationError("tag", "requerido")
	}
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "requerido")
	}
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	condition := in.Condition
	if condition == "" {
		condition = entity.ConditionGood
	}
	if !entity.ValidCondition(condition) {
		return nil, domain.NewValidationError("condition", "condición inválida")
	}
	now := time.Now()
	asset := &entity.Asset{
		ID:                uuid.New().String(),
		Tag:               in.Tag,
		Name:              in.Name,
		ItemID:            in.ItemID,
		Condition:         condition,
		CurrentLocationID: in.CurrentLocationID,
		Notes:             in.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(asset); err != nil {
		return nil, err
	}
	if err := uc.auditor.Write(uc.auditRepo, "asset", asset.ID, entity.AuditActionCreate, nil, asset, actorID); err != nil {
		return nil, err
	}
	return toAssetResponse(asset), nil
}

// Update actualiza datos maestros (nombre, notas) de un activo.
func (uc *AssetUseCase) Update(actorID, id string, in dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	asset, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrNotFound
	}
	before := *asset
	if in.Name != nil {
		asset.Name = *in.Name
	}
	if in.Notes != nil {
		asset.Notes = *in.Notes
	}
	asset.UpdatedAt = time.Now()
	if err := uc.repo.Update(asset); err != nil {
		return nil, err
	}
	if err := uc.auditor.Write(uc.auditRepo, "asset", asset.ID, entity.AuditActionUpdate, &before, asset, actorID); err != nil {
		return nil, err
	}
	return toAssetResponse(asset), nil
}

// GetByID obtiene un activo.
func (uc *AssetUseCase) GetByID(id string) (*dto.AssetResponse, error) {
	asset, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrNotFound
	}
	return toAssetResponse(asset), nil
}

// Search busca por placa o nombre (case-insensitive), ordenado por placa,
// máximo 50 resultados.
func (uc *AssetUseCase) Search(query string) ([]*dto.AssetResponse, error) {
	if query == "" {
		return nil, domain.NewValidationError("q", "requerido")
	}
	list, err := uc.repo.Search(query, assetSearchLimit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AssetResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAssetResponse(a))
	}
	return out, nil
}

// List lista activos paginados.
func (uc *AssetUseCase) List(limit, offset int) ([]*dto.AssetResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AssetResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAssetResponse(a))
	}
	return out, nil
}

func toAssetResponse(a *entity.Asset) *dto.AssetResponse {
	return &dto.AssetResponse{
		ID:                a.ID,
		Tag:               a.Tag,
		Name:              a.Name,
		ItemID:            a.ItemID,
		Condition:         a.Condition,
		CurrentLocationID: a.CurrentLocationID,
		Notes:             a.Notes,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}
