package dto

import "time"

// CreateItemRequest entrada para crear un item (tipo de artículo fungible).
type CreateItemRequest struct {
	SKU         string `json:"sku" validate:"omitempty,max=100"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Unit        string `json:"unit" validate:"required"`
	Description string `json:"description"`
}

// UpdateItemRequest entrada para actualizar un item.
type UpdateItemRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Unit        *string `json:"unit"`
	Description *string `json:"description"`
}

// ItemResponse salida de un item.
type ItemResponse struct {
	ID          string    `json:"id"`
	SKU         string    `json:"sku,omitempty"`
	Name        string    `json:"name"`
	Unit        string    `json:"unit"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
