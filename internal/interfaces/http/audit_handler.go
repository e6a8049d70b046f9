package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/activos-pro/internal/application/dto"
	"github.com/tu-usuario/activos-pro/internal/application/usecase"
)

// AuditHandler consulta de la bitácora de auditoría (protegido, solo admin).
type AuditHandler struct {
	uc *usecase.AuditQueryUseCase
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *usecase.AuditQueryUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// List godoc
// @Summary      Listar eventos de auditoría
// @Description  Filtros opcionales por tipo de entidad y/o ID de entidad. Más recientes primero.
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        entity_type  query  string  false  "slip, asset, item, property, location, department"
// @Param        entity_id    query  string  false  "ID de la entidad"
// @Param        limit        query  int     false  "máx resultados (default 20)"
// @Param        offset       query  int     false  "desplazamiento"
// @Success      200  {array}  dto.AuditEventResponse
// @Router       /api/audit-events [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	list, err := h.uc.List(c.Query("entity_type"), c.Query("entity_id"), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}
