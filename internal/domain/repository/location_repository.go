package repository

import "github.com/tu-usuario/activos-pro/internal/domain/entity"

// LocationRepository define el puerto de persistencia para Location (DIP).
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	Update(location *entity.Location) error
	ListByProperty(propertyID string, limit, offset int) ([]*entity.Location, error)
	Delete(id string) error
}
