package slip

import (
	"context"

	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de vales:
// el commit o rollback ocurre exactamente una vez en el runner, nunca en los
// colaboradores.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		slipRepo repository.SlipRepository,
		stockRepo repository.StockBalanceRepository,
		assetRepo repository.AssetRepository,
		itemRepo repository.ItemRepository,
		movRepo repository.MovementLogRepository,
		auditRepo repository.AuditEventRepository,
	) error) error
}

// SlipLineForPDF línea enriquecida con datos de presentación para el PDF.
type SlipLineForPDF struct {
	LineNumber      int
	Description     string // nombre del item o del activo
	AssetTag        string // vacío en líneas de cantidad
	Quantity        string // formateada; vacía en líneas de activo
	Unit            string
	ConditionAtMove string
}

// SlipPDFGenerator puerto para la representación imprimible del vale.
type SlipPDFGenerator interface {
	GenerateSlipPDF(ctx context.Context, s *entity.Slip, property *entity.Property,
		fromLocation, toLocation *entity.Location, lines []SlipLineForPDF) ([]byte, error)
}
