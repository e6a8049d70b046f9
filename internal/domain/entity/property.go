package entity

import "time"

// Property representa una propiedad o sede (edificio, hotel, campus) que
// agrupa ubicaciones de inventario.
type Property struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
