package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// SlipLineRequest línea del vale: exactamente uno de {item_id+quantity, asset_id}.
type SlipLineRequest struct {
	ItemID       string          `json:"item_id,omitempty"`
	Quantity     decimal.Decimal `json:"quantity,omitempty"`
	AssetID      string          `json:"asset_id,omitempty"`
	NewCondition string          `json:"new_condition,omitempty" validate:"omitempty,oneof=GOOD FAIR POOR UNDER_MAINTENANCE SCRAP"`
}

// SignatureRequest firma capturada en UI; se persiste tal cual.
type SignatureRequest struct {
	SignedByName   string `json:"signed_by_name" validate:"required"`
	SignedByUserID string `json:"signed_by_user_id,omitempty"`
	Method         string `json:"method,omitempty"` // TYPED, DRAWN
}

// CreateSlipRequest body para POST /api/slips.
type CreateSlipRequest struct {
	SequenceNumber string            `json:"sequence_number" validate:"required"`
	Type           string            `json:"type" validate:"required,oneof=ISSUE RETURN TRANSFER"`
	PropertyID     string            `json:"property_id" validate:"required,uuid"`
	FromLocationID string            `json:"from_location_id,omitempty"`
	ToLocationID   string            `json:"to_location_id,omitempty"`
	DepartmentID   string            `json:"department_id" validate:"required,uuid"`
	RequesterID    string            `json:"requester_id,omitempty"`
	IssuerID       string            `json:"issuer_id,omitempty"`
	ReceiverID     string            `json:"receiver_id,omitempty"`
	Lines          []SlipLineRequest `json:"lines" validate:"required,min=1"`
	Signature      SignatureRequest  `json:"signature" validate:"required"`
}

// SlipLineResponse salida de una línea.
type SlipLineResponse struct {
	ID              string           `json:"id"`
	LineNumber      int              `json:"line_number"`
	ItemID          string           `json:"item_id,omitempty"`
	Quantity        *decimal.Decimal `json:"quantity,omitempty"`
	AssetID         string           `json:"asset_id,omitempty"`
	NewCondition    string           `json:"new_condition,omitempty"`
	ConditionAtMove string           `json:"condition_at_move,omitempty"`
}

// SignatureResponse salida de la firma.
type SignatureResponse struct {
	ID             string    `json:"id"`
	SignedByName   string    `json:"signed_by_name"`
	SignedByUserID string    `json:"signed_by_user_id,omitempty"`
	Method         string    `json:"method,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// SlipResponse salida de un vale completo.
type SlipResponse struct {
	ID             string             `json:"id"`
	SequenceNumber string             `json:"sequence_number"`
	Type           string             `json:"type"`
	PropertyID     string             `json:"property_id"`
	FromLocationID string             `json:"from_location_id,omitempty"`
	ToLocationID   string             `json:"to_location_id,omitempty"`
	DepartmentID   string             `json:"department_id"`
	RequesterID    string             `json:"requester_id,omitempty"`
	IssuerID       string             `json:"issuer_id,omitempty"`
	ReceiverID     string             `json:"receiver_id,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	CreatedBy      string             `json:"created_by"`
	Lines          []SlipLineResponse `json:"lines"`
	Signature      *SignatureResponse `json:"signature,omitempty"`
}

// MovementLogResponse salida de un movimiento del histórico.
type MovementLogResponse struct {
	ID             string           `json:"id"`
	SlipID         string           `json:"slip_id,omitempty"`
	ItemID         string           `json:"item_id,omitempty"`
	AssetID        string           `json:"asset_id,omitempty"`
	FromLocationID string           `json:"from_location_id,omitempty"`
	ToLocationID   string           `json:"to_location_id,omitempty"`
	QuantityDelta  *decimal.Decimal `json:"quantity_delta,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

// AuditEventResponse salida de un evento de auditoría.
type AuditEventResponse struct {
	ID         string          `json:"id"`
	EntityType string          `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	Action     string          `json:"action"`
	OldValue   json.RawMessage `json:"old_value,omitempty"`
	NewValue   json.RawMessage `json:"new_value,omitempty"`
	ActorID    string          `json:"actor_id"`
	CreatedAt  time.Time       `json:"created_at"`
}
