package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/activos-pro/internal/application/dto"
	"github.com/tu-usuario/activos-pro/internal/domain"
)

// respondDomainError traduce errores de dominio a respuestas HTTP.
//
// Mapeo:
//   - ValidationError / ErrInvalidInput → 400 VALIDATION (con el campo ofensor)
//   - ErrUnauthorized / ErrUserNotFound → 401 UNAUTHORIZED
//   - ErrForbidden → 403 FORBIDDEN (mensaje genérico, no revela la regla)
//   - ErrNotFound → 404 NOT_FOUND
//   - ErrInsufficientStock → 409 INSUFFICIENT_STOCK
//   - ErrDuplicate / ErrEmailAlreadyExists / ErrConflict → 409
//   - ErrAssetNotMovable → 422 ASSET_NOT_MOVABLE
//   - resto → 500 INTERNAL
func respondDomainError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: vErr.Reason, Field: vErr.Field,
		})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrUserNotFound) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	}
	if errors.Is(err, domain.ErrForbidden) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	}

	var stockErr *domain.InsufficientStockError
	if errors.As(err, &stockErr) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "INSUFFICIENT_STOCK",
			Message: "stock insuficiente: saldo " + stockErr.Current.String() + ", solicitado " + stockErr.Delta.Abs().String(),
		})
	}
	if errors.Is(err, domain.ErrInsufficientStock) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	}
	if errors.Is(err, domain.ErrEmailAlreadyExists) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	}
	if errors.Is(err, domain.ErrDuplicate) || errors.Is(err, domain.ErrConflict) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto con el estado actual"})
	}

	var notMovable *domain.AssetNotMovableError
	if errors.As(err, &notMovable) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code:    "ASSET_NOT_MOVABLE",
			Message: "el activo " + notMovable.Tag + " no puede moverse: condición " + notMovable.Condition,
		})
	}
	if errors.Is(err, domain.ErrAssetNotMovable) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "ASSET_NOT_MOVABLE", Message: "el activo no puede moverse en su condición actual"})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
