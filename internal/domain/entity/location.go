package entity

import "time"

// Location representa una ubicación física dentro de una propiedad
// (bodega, piso, habitación) donde se almacena stock o activos.
type Location struct {
	ID         string
	PropertyID string
	Name       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
