package entity

import "time"

// Department departamento solicitante de un vale (mantenimiento, ama de llaves, etc.).
type Department struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
