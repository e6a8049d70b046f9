package slip

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/activos-pro/internal/application/audit"
	"github.com/tu-usuario/activos-pro/internal/domain"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
	domainslip "github.com/tu-usuario/activos-pro/internal/domain/slip"
)

// CreateSlipUseCase motor de vales: valida la solicitud (cabecera + líneas +
// firma), ajusta saldos, mueve activos y registra movimientos y auditoría
// dentro de una sola transacción con Commit/Rollback.
type CreateSlipUseCase struct {
	txRunner       TxRunner
	propertyRepo   repository.PropertyRepository
	locationRepo   repository.LocationRepository
	departmentRepo repository.DepartmentRepository
	userRepo       repository.UserRepository
	auditor        *audit.Recorder
}

// NewCreateSlipUseCase construye el motor de vales.
func NewCreateSlipUseCase(
	txRunner TxRunner,
	propertyRepo repository.PropertyRepository,
	locationRepo repository.LocationRepository,
	departmentRepo repository.DepartmentRepository,
	userRepo repository.UserRepository,
	auditor *audit.Recorder,
) *CreateSlipUseCase {
	return &CreateSlipUseCase{
		txRunner:       txRunner,
		propertyRepo:   propertyRepo,
		locationRepo:   locationRepo,
		departmentRepo: departmentRepo,
		userRepo:       userRepo,
		auditor:        auditor,
	}
}

// LineInput línea solicitada: exactamente uno de {ItemID+Quantity, AssetID}.
type LineInput struct {
	ItemID       string
	Quantity     decimal.Decimal
	AssetID      string
	NewCondition string // opcional, solo líneas de activo en ISSUE/RETURN
}

// SignatureInput datos de la firma capturada; se persisten tal cual
// (solo se exige el nombre del firmante).
type SignatureInput struct {
	SignedByName   string
	SignedByUserID string
	Method         string // TYPED, DRAWN u otro
}

// CreateSlipInput entrada para crear un vale.
type CreateSlipInput struct {
	SequenceNumber string
	Type           string // ISSUE, RETURN, TRANSFER
	PropertyID     string
	FromLocationID string
	ToLocationID   string
	DepartmentID   string
	RequesterID    string
	IssuerID       string
	ReceiverID     string
	Lines          []LineInput
	Signature      SignatureInput
}

// CreateSlip crea un vale de movimiento de forma atómica.
//
// Orden de pasos: autorización (antes de tocar datos) → validación estructural
// → resolución de referencias de cabecera → transacción: por cada línea en
// orden [guard de condición si aplica → ajuste de saldo o movimiento de
// activo → registro de movimiento] → persistir vale + firma → evento de
// auditoría → Commit. Cualquier fallo hace Rollback de todo: no sobreviven
// líneas, saldos, movimientos ni eventos parciales.
func (uc *CreateSlipUseCase) CreateSlip(ctx context.Context, actorID, role string, in CreateSlipInput) (*entity.Slip, error) {
	if !domainslip.CanCreateSlip(role) {
		return nil, domain.ErrForbidden
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := uc.resolveHeader(in); err != nil {
		return nil, err
	}

	now := time.Now()
	s := buildSlip(in, actorID, now)

	err := uc.txRunner.Run(ctx, func(
		slipRepo repository.SlipRepository,
		stockRepo repository.StockBalanceRepository,
		assetRepo repository.AssetRepository,
		itemRepo repository.ItemRepository,
		movRepo repository.MovementLogRepository,
		auditRepo repository.AuditEventRepository,
	) error {
		for _, line := range s.Lines {
			if line.IsAssetLine() {
				if err := uc.applyAssetLine(s, line, assetRepo, movRepo, auditRepo, now); err != nil {
					return err
				}
				continue
			}
			if err := uc.applyItemLine(s, line, stockRepo, itemRepo, movRepo, now); err != nil {
				return err
			}
		}
		if err := slipRepo.Create(s); err != nil {
			return err
		}
		return uc.auditor.Write(auditRepo, "slip", s.ID, entity.AuditActionCreate, nil, s, actorID)
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// applyAssetLine procesa una línea de activo: bloquea la fila, corre el guard
// de condición (solo ISSUE), captura ConditionAtMove con la condición
// observada, actualiza ubicación/condición y registra el movimiento.
func (uc *CreateSlipUseCase) applyAssetLine(
	s *entity.Slip,
	line *entity.SlipLine,
	assetRepo repository.AssetRepository,
	movRepo repository.MovementLogRepository,
	auditRepo repository.AuditEventRepository,
	now time.Time,
) error {
	// FOR UPDATE: la condición observada no puede cambiar por otra línea
	// ni por otra transacción mientras este vale esté en curso.
	asset, err := assetRepo.GetByIDForUpdate(line.AssetID)
	if err != nil {
		return err
	}
	if asset == nil {
		return domain.ErrNotFound
	}
	if err := domainslip.CheckAssetMovable(asset, s.Type); err != nil {
		return err
	}
	line.ConditionAtMove = asset.Condition

	before := *asset
	fromLocation := s.FromLocationID
	if fromLocation == "" {
		// RETURN sin origen explícito: el activo vuelve desde donde estaba.
		fromLocation = asset.CurrentLocationID
	}
	asset.CurrentLocationID = s.ToLocationID
	if line.NewCondition != "" {
		asset.Condition = line.NewCondition
	}
	asset.UpdatedAt = now
	if err := assetRepo.Update(asset); err != nil {
		return err
	}
	if err := uc.auditor.Write(auditRepo, "asset", asset.ID, entity.AuditActionUpdate, &before, asset, s.CreatedBy); err != nil {
		return err
	}
	return movRepo.Create(&entity.MovementLog{
		ID:             uuid.New().String(),
		SlipID:         s.ID,
		AssetID:        asset.ID,
		FromLocationID: fromLocation,
		ToLocationID:   s.ToLocationID,
		QuantityDelta:  nil, // movimiento de solo activo
		CreatedAt:      now,
	})
}

// applyItemLine procesa una línea de cantidad: ISSUE resta en origen, RETURN
// suma en destino, TRANSFER resta en origen y suma en destino (dos ajustes
// independientes, ambos con la invariante de no-negatividad).
func (uc *CreateSlipUseCase) applyItemLine(
	s *entity.Slip,
	line *entity.SlipLine,
	stockRepo repository.StockBalanceRepository,
	itemRepo repository.ItemRepository,
	movRepo repository.MovementLogRepository,
	now time.Time,
) error {
	item, err := itemRepo.GetByID(line.ItemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}

	switch s.Type {
	case entity.SlipTypeIssue:
		if _, err := AdjustStock(stockRepo, line.ItemID, s.FromLocationID, line.Quantity.Neg(), now); err != nil {
			return err
		}
		delta := line.Quantity.Neg()
		return movRepo.Create(&entity.MovementLog{
			ID:             uuid.New().String(),
			SlipID:         s.ID,
			ItemID:         line.ItemID,
			FromLocationID: s.FromLocationID,
			ToLocationID:   s.ToLocationID,
			QuantityDelta:  &delta,
			CreatedAt:      now,
		})

	case entity.SlipTypeReturn:
		if _, err := AdjustStock(stockRepo, line.ItemID, s.ToLocationID, line.Quantity, now); err != nil {
			return err
		}
		delta := line.Quantity
		return movRepo.Create(&entity.MovementLog{
			ID:             uuid.New().String(),
			SlipID:         s.ID,
			ItemID:         line.ItemID,
			FromLocationID: s.FromLocationID,
			ToLocationID:   s.ToLocationID,
			QuantityDelta:  &delta,
			CreatedAt:      now,
		})

	case entity.SlipTypeTransfer:
		if _, err := AdjustStock(stockRepo, line.ItemID, s.FromLocationID, line.Quantity.Neg(), now); err != nil {
			return err
		}
		if _, err := AdjustStock(stockRepo, line.ItemID, s.ToLocationID, line.Quantity, now); err != nil {
			return err
		}
		// Dos registros: salida en origen y entrada en destino.
		outDelta := line.Quantity.Neg()
		if err := movRepo.Create(&entity.MovementLog{
			ID:             uuid.New().String(),
			SlipID:         s.ID,
			ItemID:         line.ItemID,
			FromLocationID: s.FromLocationID,
			QuantityDelta:  &outDelta,
			CreatedAt:      now,
		}); err != nil {
			return err
		}
		inDelta := line.Quantity
		return movRepo.Create(&entity.MovementLog{
			ID:            uuid.New().String(),
			SlipID:        s.ID,
			ItemID:        line.ItemID,
			ToLocationID:  s.ToLocationID,
			QuantityDelta: &inDelta,
			CreatedAt:     now,
		})
	}
	return domain.ErrInvalidInput
}

// validateInput validación estructural de cabecera, líneas y firma.
// No abre transacción: falla antes de cualquier acceso a datos.
func validateInput(in CreateSlipInput) error {
	if in.SequenceNumber == "" {
		return domain.NewValidationError("sequence_number", "requerido")
	}
	switch in.Type {
	case entity.SlipTypeIssue, entity.SlipTypeReturn, entity.SlipTypeTransfer:
	default:
		return domain.NewValidationError("type", "debe ser ISSUE, RETURN o TRANSFER")
	}
	if in.PropertyID == "" {
		return domain.NewValidationError("property_id", "requerido")
	}
	if in.DepartmentID == "" {
		return domain.NewValidationError("department_id", "requerido")
	}
	switch in.Type {
	case entity.SlipTypeIssue:
		if in.FromLocationID == "" {
			return domain.NewValidationError("from_location_id", "requerido para ISSUE")
		}
	case entity.SlipTypeReturn:
		if in.ToLocationID == "" {
			return domain.NewValidationError("to_location_id", "requerido para RETURN")
		}
	case entity.SlipTypeTransfer:
		if in.FromLocationID == "" || in.ToLocationID == "" {
			return domain.NewValidationError("from_location_id/to_location_id", "requeridos para TRANSFER")
		}
		if in.FromLocationID == in.ToLocationID {
			return domain.NewValidationError("to_location_id", "origen y destino deben ser distintos")
		}
	}
	if len(in.Lines) == 0 {
		return domain.NewValidationError("lines", "se requiere al menos una línea")
	}
	for i, line := range in.Lines {
		hasItem := line.ItemID != ""
		hasAsset := line.AssetID != ""
		if hasItem == hasAsset {
			// ambos o ninguno: la línea es una variante etiquetada con
			// exactamente un payload
			return domain.NewValidationError(lineField(i), "debe referenciar exactamente un item con cantidad o un activo")
		}
		if hasItem && !line.Quantity.GreaterThan(decimal.Zero) {
			return domain.NewValidationError(lineField(i), "la cantidad debe ser mayor que cero")
		}
		if hasItem && line.NewCondition != "" {
			return domain.NewValidationError(lineField(i), "una línea de cantidad no lleva condición")
		}
		if hasAsset && line.NewCondition != "" {
			if !entity.ValidCondition(line.NewCondition) {
				return domain.NewValidationError(lineField(i), "condición inválida")
			}
			if in.Type == entity.SlipTypeTransfer {
				return domain.NewValidationError(lineField(i), "TRANSFER no actualiza la condición del activo")
			}
		}
	}
	if in.Signature.SignedByName == "" {
		return domain.NewValidationError("signature.signed_by_name", "requerido")
	}
	return nil
}

func lineField(i int) string {
	return fmt.Sprintf("lines[%d]", i)
}

// resolveHeader verifica que todas las referencias de cabecera existan.
// Las lecturas no tienen efectos: un fallo aquí deja cero estado observable.
func (uc *CreateSlipUseCase) resolveHeader(in CreateSlipInput) error {
	property, err := uc.propertyRepo.GetByID(in.PropertyID)
	if err != nil {
		return err
	}
	if property == nil {
		return domain.ErrNotFound
	}
	for _, locID := range []string{in.FromLocationID, in.ToLocationID} {
		if locID == "" {
			continue
		}
		loc, err := uc.locationRepo.GetByID(locID)
		if err != nil {
			return err
		}
		if loc == nil || loc.PropertyID != in.PropertyID {
			return domain.ErrNotFound
		}
	}
	dept, err := uc.departmentRepo.GetByID(in.DepartmentID)
	if err != nil {
		return err
	}
	if dept == nil {
		return domain.ErrNotFound
	}
	for _, userID := range []string{in.RequesterID, in.IssuerID, in.ReceiverID, in.Signature.SignedByUserID} {
		if userID == "" {
			continue
		}
		user, err := uc.userRepo.GetByID(userID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

// buildSlip arma el agregado con IDs y numeración de líneas.
func buildSlip(in CreateSlipInput, actorID string, now time.Time) *entity.Slip {
	s := &entity.Slip{
		ID:             uuid.New().String(),
		SequenceNumber: in.SequenceNumber,
		Type:           in.Type,
		PropertyID:     in.PropertyID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		DepartmentID:   in.DepartmentID,
		RequesterID:    in.RequesterID,
		IssuerID:       in.IssuerID,
		ReceiverID:     in.ReceiverID,
		CreatedAt:      now,
		CreatedBy:      actorID,
	}
	for i, line := range in.Lines {
		s.Lines = append(s.Lines, &entity.SlipLine{
			ID:           uuid.New().String(),
			SlipID:       s.ID,
			LineNumber:   i + 1,
			ItemID:       line.ItemID,
			Quantity:     line.Quantity,
			AssetID:      line.AssetID,
			NewCondition: line.NewCondition,
		})
	}
	s.Signature = &entity.Signature{
		ID:             uuid.New().String(),
		SlipID:         s.ID,
		SignedByName:   in.Signature.SignedByName,
		SignedByUserID: in.Signature.SignedByUserID,
		Method:         in.Signature.Method,
		CreatedAt:      now,
	}
	return s
}
