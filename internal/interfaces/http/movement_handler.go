package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/activos-pro/internal/application/dto"
	appslip "github.com/tu-usuario/activos-pro/internal/application/slip"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
)

// MovementHandler consulta del histórico de movimientos (protegido).
type MovementHandler struct {
	queries *appslip.QueryUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(queries *appslip.QueryUseCase) *MovementHandler {
	return &MovementHandler{queries: queries}
}

// List godoc
// @Summary      Histórico de movimientos
// @Description  Filtros opcionales por vale, item, activo o ubicación. Más recientes primero.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        slip_id      query  string  false  "filtrar por vale"
// @Param        item_id      query  string  false  "filtrar por item"
// @Param        asset_id     query  string  false  "filtrar por activo"
// @Param        location_id  query  string  false  "filtrar por ubicación (origen o destino)"
// @Param        limit        query  int     false  "máx resultados (default 20)"
// @Param        offset       query  int     false  "desplazamiento"
// @Success      200  {array}  dto.MovementLogResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	filter := repository.MovementLogFilter{
		SlipID:     c.Query("slip_id"),
		ItemID:     c.Query("item_id"),
		AssetID:    c.Query("asset_id"),
		LocationID: c.Query("location_id"),
	}
	list, err := h.queries.ListMovements(c.Context(), filter, page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]*dto.MovementLogResponse, 0, len(list))
	for _, m := range list {
		out = append(out, &dto.MovementLogResponse{
			ID:             m.ID,
			SlipID:         m.SlipID,
			ItemID:         m.ItemID,
			AssetID:        m.AssetID,
			FromLocationID: m.FromLocationID,
			ToLocationID:   m.ToLocationID,
			QuantityDelta:  m.QuantityDelta,
			CreatedAt:      m.CreatedAt,
		})
	}
	return c.JSON(out)
}
