package slip

import (
	"context"

	"github.com/tu-usuario/activos-pro/internal/domain"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
)

// QueryUseCase lecturas de vales (fuera de transacción, repos del pool).
type QueryUseCase struct {
	slipRepo repository.SlipRepository
	movRepo  repository.MovementLogRepository
}

// NewQueryUseCase construye el caso de uso de consultas.
func NewQueryUseCase(slipRepo repository.SlipRepository, movRepo repository.MovementLogRepository) *QueryUseCase {
	return &QueryUseCase{slipRepo: slipRepo, movRepo: movRepo}
}

// GetSlip devuelve el vale completo (cabecera, líneas ordenadas y firma).
func (uc *QueryUseCase) GetSlip(_ context.Context, id string) (*entity.Slip, error) {
	s, err := uc.slipRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// ListSlips lista vales paginados, más recientes primero.
func (uc *QueryUseCase) ListSlips(_ context.Context, limit, offset int) ([]*entity.Slip, error) {
	return uc.slipRepo.List(limit, offset)
}

// ListMovements consulta el histórico de movimientos con filtros opcionales.
func (uc *QueryUseCase) ListMovements(_ context.Context, filter repository.MovementLogFilter, limit, offset int) ([]*entity.MovementLog, error) {
	return uc.movRepo.List(filter, limit, offset)
}
