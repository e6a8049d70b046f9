package slip

import (
	"context"

	"github.com/tu-usuario/activos-pro/internal/domain"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
)

// PDFUseCase genera la representación imprimible de un vale: carga el agregado
// y sus referencias y delega el render al puerto SlipPDFGenerator.
type PDFUseCase struct {
	slipRepo     repository.SlipRepository
	propertyRepo repository.PropertyRepository
	locationRepo repository.LocationRepository
	itemRepo     repository.ItemRepository
	assetRepo    repository.AssetRepository
	generator    SlipPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	slipRepo repository.SlipRepository,
	propertyRepo repository.PropertyRepository,
	locationRepo repository.LocationRepository,
	itemRepo repository.ItemRepository,
	assetRepo repository.AssetRepository,
	generator SlipPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		slipRepo:     slipRepo,
		propertyRepo: propertyRepo,
		locationRepo: locationRepo,
		itemRepo:     itemRepo,
		assetRepo:    assetRepo,
		generator:    generator,
	}
}

// GenerateSlipPDF devuelve los bytes del PDF del vale.
func (uc *PDFUseCase) GenerateSlipPDF(ctx context.Context, slipID string) ([]byte, error) {
	s, err := uc.slipRepo.GetByID(slipID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	property, err := uc.propertyRepo.GetByID(s.PropertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, domain.ErrNotFound
	}

	from, err := uc.loadLocation(s.FromLocationID)
	if err != nil {
		return nil, err
	}
	to, err := uc.loadLocation(s.ToLocationID)
	if err != nil {
		return nil, err
	}

	lines := make([]SlipLineForPDF, 0, len(s.Lines))
	for _, line := range s.Lines {
		row := SlipLineForPDF{
			LineNumber:      line.LineNumber,
			ConditionAtMove: line.ConditionAtMove,
		}
		if line.IsItemLine() {
			item, err := uc.itemRepo.GetByID(line.ItemID)
			if err != nil {
				return nil, err
			}
			if item != nil {
				row.Description = item.Name
				row.Unit = item.Unit
			}
			row.Quantity = line.Quantity.String()
		} else {
			asset, err := uc.assetRepo.GetByID(line.AssetID)
			if err != nil {
				return nil, err
			}
			if asset != nil {
				row.Description = asset.Name
				row.AssetTag = asset.Tag
			}
		}
		lines = append(lines, row)
	}
	return uc.generator.GenerateSlipPDF(ctx, s, property, from, to, lines)
}

// loadLocation devuelve nil sin error para IDs vacíos (ubicación opcional).
func (uc *PDFUseCase) loadLocation(id string) (*entity.Location, error) {
	if id == "" {
		return nil, nil
	}
	return uc.locationRepo.GetByID(id)
}
