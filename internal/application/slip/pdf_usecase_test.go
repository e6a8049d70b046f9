package slip

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/activos-pro/internal/domain"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
)

type fakePDFGenerator struct {
	called bool
}

func (g *fakePDFGenerator) GenerateSlipPDF(_ context.Context, _ *entity.Slip, _ *entity.Property,
	_, _ *entity.Location, _ []SlipLineForPDF) ([]byte, error) {
	g.called = true
	return []byte("%PDF-1.7"), nil
}

func newPDFFixture(t *testing.T, props map[string]entity.Property) (*PDFUseCase, *engineFixture, *fakePDFGenerator) {
	t.Helper()
	f := newEngineFixture(t)
	gen := &fakePDFGenerator{}
	uc := NewPDFUseCase(
		&fakeSlipRepo{f.store},
		&fakePropertyRepo{props: props},
		&fakeLocationRepo{locs: map[string]entity.Location{
			"loc-a": {ID: "loc-a", PropertyID: "p-1", Name: "Bodega principal"},
		}},
		&fakeItemRepo{f.store},
		&fakeAssetRepo{f.store},
		gen,
	)
	return uc, f, gen
}

func TestGenerateSlipPDF_ValeExistenteGeneraBytes(t *testing.T) {
	uc, f, gen := newPDFFixture(t, map[string]entity.Property{
		"p-1": {ID: "p-1", Name: "Hotel Centro"},
	})
	f.seedStock("item-1", "loc-a", 10)

	in := baseInput(entity.SlipTypeIssue)
	in.Lines = []LineInput{itemLine(3)}
	created, err := f.uc.CreateSlip(context.Background(), "u-admin", entity.RoleAdmin, in)
	require.NoError(t, err)

	out, err := uc.GenerateSlipPDF(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, gen.called)
	assert.NotEmpty(t, out)
}

// Un vale cuya propiedad ya no existe (inconsistencia de datos) devuelve
// ErrNotFound en vez de llegar al generador con una referencia nula.
func TestGenerateSlipPDF_PropiedadFaltanteRetornaNotFound(t *testing.T) {
	uc, f, gen := newPDFFixture(t, map[string]entity.Property{})
	f.seedStock("item-1", "loc-a", 10)

	in := baseInput(entity.SlipTypeIssue)
	in.Lines = []LineInput{itemLine(3)}
	created, err := f.uc.CreateSlip(context.Background(), "u-admin", entity.RoleAdmin, in)
	require.NoError(t, err)

	out, err := uc.GenerateSlipPDF(context.Background(), created.ID)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.False(t, gen.called)
}

func TestGenerateSlipPDF_ValeInexistenteRetornaNotFound(t *testing.T) {
	uc, _, gen := newPDFFixture(t, map[string]entity.Property{
		"p-1": {ID: "p-1", Name: "Hotel Centro"},
	})

	out, err := uc.GenerateSlipPDF(context.Background(), "vale-inexistente")
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.False(t, gen.called)
}
