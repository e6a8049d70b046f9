package dto

import "time"

// CreatePropertyRequest entrada para crear una propiedad.
type CreatePropertyRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address"`
}

// PropertyResponse salida de una propiedad.
type PropertyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateLocationRequest entrada para crear una ubicación dentro de una propiedad.
type CreateLocationRequest struct {
	PropertyID string `json:"property_id" validate:"required,uuid"`
	Name       string `json:"name" validate:"required,min=1,max=200"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"property_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateDepartmentRequest entrada para crear un departamento.
type CreateDepartmentRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// DepartmentResponse salida de un departamento.
type DepartmentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
