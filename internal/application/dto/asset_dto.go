package dto

import "time"

// CreateAssetRequest entrada para crear un activo.
type CreateAssetRequest struct {
	Tag               string `json:"tag" validate:"required,min=1,max=100"`
	Name              string `json:"name" validate:"required,min=1,max=200"`
	ItemID            string `json:"item_id" validate:"required,uuid"`
	Condition         string `json:"condition" validate:"omitempty,oneof=GOOD FAIR POOR UNDER_MAINTENANCE SCRAP"`
	CurrentLocationID string `json:"current_location_id,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

// UpdateAssetRequest entrada para actualizar datos maestros de un activo.
// Condición y ubicación se mutan solo vía vales o mantenimiento.
type UpdateAssetRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=200"`
	Notes *string `json:"notes"`
}

// AssetResponse salida de un activo.
type AssetResponse struct {
	ID                string    `json:"id"`
	Tag               string    `json:"tag"`
	Name              string    `json:"name"`
	ItemID            string    `json:"item_id"`
	Condition         string    `json:"condition"`
	CurrentLocationID string    `json:"current_location_id,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
