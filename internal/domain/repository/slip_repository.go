package repository

import "github.com/tu-usuario/activos-pro/internal/domain/entity"

// SlipRepository define el puerto de persistencia del agregado Slip
// (cabecera + líneas + firma). No hay Update ni Delete: el vale es inmutable.
type SlipRepository interface {
	// Create persiste cabecera, líneas y firma. Debe llamarse dentro de la
	// transacción del motor; una violación del único en sequence_number se
	// reporta como domain.ErrDuplicate.
	Create(slip *entity.Slip) error
	// GetByID devuelve el vale completo (líneas ordenadas por line_number y firma),
	// o nil si no existe.
	GetByID(id string) (*entity.Slip, error)
	List(limit, offset int) ([]*entity.Slip, error)
}
