package repository

import "github.com/tu-usuario/activos-pro/internal/domain/entity"

// DepartmentRepository define el puerto de persistencia para Department (DIP).
type DepartmentRepository interface {
	Create(department *entity.Department) error
	GetByID(id string) (*entity.Department, error)
	List(limit, offset int) ([]*entity.Department, error)
	Delete(id string) error
}
