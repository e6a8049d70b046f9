package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/activos-pro/internal/application/dto"
	appslip "github.com/tu-usuario/activos-pro/internal/application/slip"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
)

// SlipHandler maneja las peticiones HTTP de vales de movimiento (protegido).
type SlipHandler struct {
	create  *appslip.CreateSlipUseCase
	queries *appslip.QueryUseCase
	pdf     *appslip.PDFUseCase
}

// NewSlipHandler construye el handler.
func NewSlipHandler(create *appslip.CreateSlipUseCase, queries *appslip.QueryUseCase, pdf *appslip.PDFUseCase) *SlipHandler {
	return &SlipHandler{create: create, queries: queries, pdf: pdf}
}

// Create godoc
// @Summary      Crear vale de movimiento (ISSUE, RETURN o TRANSFER)
// @Description  Procesa el vale de forma atómica: valida cabecera, líneas y firma,
//
//	ajusta saldos de stock, mueve activos y registra movimientos y auditoría.
//	Cualquier fallo revierte todo.
//
// @Tags         slips
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSlipRequest  true  "cabecera + líneas + firma"
// @Success      201   {object}  dto.SlipResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/slips [post]
func (h *SlipHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	role := GetRole(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateSlipRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s, err := h.create.CreateSlip(c.Context(), userID, role, toCreateSlipInput(in))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toSlipResponse(s))
}

// GetByID godoc
// @Summary      Obtener vale por ID (cabecera, líneas ordenadas y firma)
// @Tags         slips
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del vale"
// @Success      200  {object}  dto.SlipResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/slips/{id} [get]
func (h *SlipHandler) GetByID(c *fiber.Ctx) error {
	s, err := h.queries.GetSlip(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toSlipResponse(s))
}

// List godoc
// @Summary      Listar vales (más recientes primero)
// @Tags         slips
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máx resultados (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.SlipResponse
// @Router       /api/slips [get]
func (h *SlipHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	list, err := h.queries.ListSlips(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]*dto.SlipResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSlipResponse(s))
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Representación imprimible del vale (PDF)
// @Tags         slips
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del vale"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/slips/{id}/pdf [get]
func (h *SlipHandler) PDF(c *fiber.Ctx) error {
	data, err := h.pdf.GenerateSlipPDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="vale.pdf"`)
	return c.Send(data)
}

// ── mapeo DTO ↔ entidad ───────────────────────────────────────────────────────

func toCreateSlipInput(in dto.CreateSlipRequest) appslip.CreateSlipInput {
	out := appslip.CreateSlipInput{
		SequenceNumber: in.SequenceNumber,
		Type:           in.Type,
		PropertyID:     in.PropertyID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		DepartmentID:   in.DepartmentID,
		RequesterID:    in.RequesterID,
		IssuerID:       in.IssuerID,
		ReceiverID:     in.ReceiverID,
		Signature: appslip.SignatureInput{
			SignedByName:   in.Signature.SignedByName,
			SignedByUserID: in.Signature.SignedByUserID,
			Method:         in.Signature.Method,
		},
	}
	for _, l := range in.Lines {
		out.Lines = append(out.Lines, appslip.LineInput{
			ItemID:       l.ItemID,
			Quantity:     l.Quantity,
			AssetID:      l.AssetID,
			NewCondition: l.NewCondition,
		})
	}
	return out
}

func toSlipResponse(s *entity.Slip) *dto.SlipResponse {
	resp := &dto.SlipResponse{
		ID:             s.ID,
		SequenceNumber: s.SequenceNumber,
		Type:           s.Type,
		PropertyID:     s.PropertyID,
		FromLocationID: s.FromLocationID,
		ToLocationID:   s.ToLocationID,
		DepartmentID:   s.DepartmentID,
		RequesterID:    s.RequesterID,
		IssuerID:       s.IssuerID,
		ReceiverID:     s.ReceiverID,
		CreatedAt:      s.CreatedAt,
		CreatedBy:      s.CreatedBy,
		Lines:          make([]dto.SlipLineResponse, 0, len(s.Lines)),
	}
	for _, l := range s.Lines {
		lr := dto.SlipLineResponse{
			ID:              l.ID,
			LineNumber:      l.LineNumber,
			ItemID:          l.ItemID,
			AssetID:         l.AssetID,
			NewCondition:    l.NewCondition,
			ConditionAtMove: l.ConditionAtMove,
		}
		if l.IsItemLine() {
			qty := l.Quantity
			lr.Quantity = &qty
		}
		resp.Lines = append(resp.Lines, lr)
	}
	if s.Signature != nil {
		resp.Signature = &dto.SignatureResponse{
			ID:             s.Signature.ID,
			SignedByName:   s.Signature.SignedByName,
			SignedByUserID: s.Signature.SignedByUserID,
			Method:         s.Signature.Method,
			CreatedAt:      s.Signature.CreatedAt,
		}
	}
	return resp
}
