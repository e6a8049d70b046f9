package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrAssetNotMovable    = errors.New("el activo no puede moverse en su condición actual")
)

// ValidationError error de validación estructural con el campo y la razón,
// para que el handler pueda construir un mensaje preciso.
// errors.Is(err, ErrInvalidInput) == true.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError construye un ValidationError.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// InsufficientStockError el ajuste llevaría el saldo de (item, ubicación)
// por debajo de cero. Lleva los identificadores, el delta solicitado y el
// saldo actual; la transacción que lo recibe debe abortarse completa.
// errors.Is(err, ErrInsufficientStock) == true.
type InsufficientStockError struct {
	ItemID     string
	LocationID string
	Delta      decimal.Decimal
	Current    decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: item %s en ubicación %s: saldo %s, delta %s",
		e.ItemID, e.LocationID, e.Current.String(), e.Delta.String())
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// AssetNotMovableError la condición del activo prohíbe el movimiento solicitado.
// errors.Is(err, ErrAssetNotMovable) == true.
type AssetNotMovableError struct {
	AssetID   string
	Tag       string
	Condition string
}

func (e *AssetNotMovableError) Error() string {
	return fmt.Sprintf("activo %s (%s) no puede moverse: condición %s", e.Tag, e.AssetID, e.Condition)
}

func (e *AssetNotMovableError) Unwrap() error { return ErrAssetNotMovable }
