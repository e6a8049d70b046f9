package repository

import "github.com/tu-usuario/activos-pro/internal/domain/entity"

// AssetRepository define el puerto de persistencia para Asset (DIP).
type AssetRepository interface {
	Create(asset *entity.Asset) error
	GetByID(id string) (*entity.Asset, error)
	// GetByIDForUpdate bloquea la fila del activo (SELECT FOR UPDATE) para que
	// la condición observada no cambie durante la transacción del vale.
	GetByIDForUpdate(id string) (*entity.Asset, error)
	GetByTag(tag string) (*entity.Asset, error)
	Update(asset *entity.Asset) error
	// Search busca por placa o nombre, case-insensitive, ordenado por placa.
	Search(query string, limit int) ([]*entity.Asset, error)
	List(limit, offset int) ([]*entity.Asset, error)
	Delete(id string) error
}
