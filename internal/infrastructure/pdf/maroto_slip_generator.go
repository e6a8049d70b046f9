// Package pdf implementa la representación imprimible del vale de movimiento.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Propiedad  │  Tipo de vale + Consecutivo + Fecha    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ORIGEN / DESTINO: ubicaciones del movimiento                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Descripción | Placa | Cant | Unidad | Condición  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FIRMA: nombre del firmante + método de captura              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appslip "github.com/tu-usuario/activos-pro/internal/application/slip"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoSlipGenerator implementa slip.SlipPDFGenerator usando Maroto v2.
type MarotoSlipGenerator struct{}

// NewMarotoSlipGenerator construye el generador.
func NewMarotoSlipGenerator() *MarotoSlipGenerator { return &MarotoSlipGenerator{} }

var _ appslip.SlipPDFGenerator = (*MarotoSlipGenerator)(nil)

// GenerateSlipPDF genera el PDF del vale y devuelve sus bytes.
func (g *MarotoSlipGenerator) GenerateSlipPDF(
	_ context.Context,
	s *entity.Slip,
	property *entity.Property,
	fromLocation, toLocation *entity.Location,
	lines []appslip.SlipLineForPDF,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Vale de Movimiento "+s.SequenceNumber, true).
		WithAuthor(property.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(s, property))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(locationsRow(fromLocation, toLocation))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de líneas
	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(lines) {
		m.AddRows(r)
	}

	// Firma
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(signatureRow(s.Signature))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// slipTypeLabel rótulo del tipo de vale para el encabezado.
func slipTypeLabel(t string) string {
	switch t {
	case entity.SlipTypeIssue:
		return "VALE DE SALIDA"
	case entity.SlipTypeReturn:
		return "VALE DE DEVOLUCIÓN"
	case entity.SlipTypeTransfer:
		return "VALE DE TRASLADO"
	default:
		return "VALE DE MOVIMIENTO"
	}
}

// headerRow: propiedad (izq) y tipo + consecutivo + fecha (der).
func headerRow(s *entity.Slip, property *entity.Property) core.Row {
	fecha := s.CreatedAt.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(property.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(property.Address, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(slipTypeLabel(s.Type), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(s.SequenceNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// locationsRow: origen y destino del movimiento.
func locationsRow(from, to *entity.Location) core.Row {
	origen := "—"
	if from != nil {
		origen = from.Name
	}
	destino := "—"
	if to != nil {
		destino = to.Name
	}

	return row.New(12).Add(
		col.New(6).Add(
			text.New("ORIGEN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(origen, props.Text{Size: 9, Top: 7}),
		),
		col.New(6).Add(
			text.New("DESTINO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(destino, props.Text{Size: 9, Top: 7}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Descripción", 5, align.Left),
		h("Placa", 2, align.Left),
		h("Cant.", 1, align.Right),
		h("Unidad", 1, align.Center),
		h("Condición", 2, align.Center),
	)
}

// tableLineRows: una fila por línea del vale.
func tableLineRows(lines []appslip.SlipLineForPDF) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.LineNumber),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				l.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(l.AssetTag, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				nonEmpty(l.Quantity, "—"),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				nonEmpty(l.Unit, "—"),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(l.ConditionAtMove, "—"),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}

// signatureRow: nombre del firmante y método de captura.
func signatureRow(sig *entity.Signature) core.Row {
	if sig == nil {
		return row.New(10)
	}
	metodo := "Firma digitada"
	if sig.Method == entity.SignatureMethodDrawn {
		metodo = "Firma dibujada"
	}
	return row.New(18).Add(
		col.New(12).Add(
			text.New("RECIBIDO CONFORME", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(sig.SignedByName, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 7,
			}),
			text.New(fmt.Sprintf("%s   |   %s", metodo, sig.CreatedAt.Format("02/01/2006 15:04")), props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
