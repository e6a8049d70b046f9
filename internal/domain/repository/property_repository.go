package repository

import "github.com/tu-usuario/activos-pro/internal/domain/entity"

// PropertyRepository define el puerto de persistencia para Property (DIP).
type PropertyRepository interface {
	Create(property *entity.Property) error
	GetByID(id string) (*entity.Property, error)
	Update(property *entity.Property) error
	List(limit, offset int) ([]*entity.Property, error)
	Delete(id string) error
}
