package slip

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/activos-pro/internal/application/audit"
	"github.com/tu-usuario/activos-pro/internal/domain"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// fakeStore concentra el estado que vive "dentro de la transacción". El
// fakeTxRunner lo clona antes de ejecutar el callback y lo restaura si este
// falla, reproduciendo la semántica de rollback del runner real.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	stock     *fakeStockRepo
	assets    map[string]entity.Asset
	items     map[string]entity.Item
	slips     map[string]entity.Slip
	movements []entity.MovementLog
	audits    []entity.AuditEvent
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		stock:  newFakeStockRepo(),
		assets: make(map[string]entity.Asset),
		items:  make(map[string]entity.Item),
		slips:  make(map[string]entity.Slip),
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for k, v := range s.stock.balances {
		c.stock.balances[k] = v
	}
	c.stock.upserts = s.stock.upserts
	for k, v := range s.assets {
		c.assets[k] = v
	}
	for k, v := range s.items {
		c.items[k] = v
	}
	for k, v := range s.slips {
		c.slips[k] = v
	}
	c.movements = append(c.movements, s.movements...)
	c.audits = append(c.audits, s.audits...)
	return c
}

type fakeSlipRepo struct{ s *fakeStore }

func (r *fakeSlipRepo) Create(slip *entity.Slip) error {
	for _, existing := range r.s.slips {
		if existing.SequenceNumber == slip.SequenceNumber {
			return domain.ErrDuplicate
		}
	}
	r.s.slips[slip.ID] = *slip
	return nil
}

func (r *fakeSlipRepo) GetByID(id string) (*entity.Slip, error) {
	if s, ok := r.s.slips[id]; ok {
		copia := s
		return &copia, nil
	}
	return nil, nil
}

func (r *fakeSlipRepo) List(limit, offset int) ([]*entity.Slip, error) {
	var out []*entity.Slip
	for _, s := range r.s.slips {
		copia := s
		out = append(out, &copia)
	}
	return out, nil
}

type fakeAssetRepo struct{ s *fakeStore }

func (r *fakeAssetRepo) Create(a *entity.Asset) error { r.s.assets[a.ID] = *a; return nil }
func (r *fakeAssetRepo) GetByID(id string) (*entity.Asset, error) {
	if a, ok := r.s.assets[id]; ok {
		copia := a
		return &copia, nil
	}
	return nil, nil
}
func (r *fakeAssetRepo) GetByIDForUpdate(id string) (*entity.Asset, error) { return r.GetByID(id) }
func (r *fakeAssetRepo) GetByTag(tag string) (*entity.Asset, error) {
	for _, a := range r.s.assets {
		if a.Tag == tag {
			copia := a
			return &copia, nil
		}
	}
	return nil, nil
}
func (r *fakeAssetRepo) Update(a *entity.Asset) error { r.s.assets[a.ID] = *a; return nil }
func (r *fakeAssetRepo) Search(query string, limit int) ([]*entity.Asset, error) { return nil, nil }
func (r *fakeAssetRepo) List(limit, offset int) ([]*entity.Asset, error)         { return nil, nil }
func (r *fakeAssetRepo) Delete(id string) error                                  { delete(r.s.assets, id); return nil }

type fakeItemRepo struct{ s *fakeStore }

func (r *fakeItemRepo) Create(i *entity.Item) error { r.s.items[i.ID] = *i; return nil }
func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	if i, ok := r.s.items[id]; ok {
		copia := i
		return &copia, nil
	}
	return nil, nil
}
func (r *fakeItemRepo) Update(i *entity.Item) error                    { r.s.items[i.ID] = *i; return nil }
func (r *fakeItemRepo) List(limit, offset int) ([]*entity.Item, error) { return nil, nil }
func (r *fakeItemRepo) Delete(id string) error                         { delete(r.s.items, id); return nil }

type fakeMovementRepo struct{ s *fakeStore }

func (r *fakeMovementRepo) Create(m *entity.MovementLog) error {
	r.s.movements = append(r.s.movements, *m)
	return nil
}

func (r *fakeMovementRepo) List(filter repository.MovementLogFilter, limit, offset int) ([]*entity.MovementLog, error) {
	var out []*entity.MovementLog
	for i := range r.s.movements {
		copia := r.s.movements[i]
		out = append(out, &copia)
	}
	return out, nil
}

type fakeAuditRepo struct{ s *fakeStore }

func (r *fakeAuditRepo) Create(e *entity.AuditEvent) error {
	r.s.audits = append(r.s.audits, *e)
	return nil
}

func (r *fakeAuditRepo) List(entityType, entityID string, limit, offset int) ([]*entity.AuditEvent, error) {
	var out []*entity.AuditEvent
	for i := range r.s.audits {
		copia := r.s.audits[i]
		out = append(out, &copia)
	}
	return out, nil
}

// fakeTxRunner clona el estado antes del callback y lo restaura ante error.
type fakeTxRunner struct {
	s          *fakeStore
	rolledBack bool
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	slipRepo repository.SlipRepository,
	stockRepo repository.StockBalanceRepository,
	assetRepo repository.AssetRepository,
	itemRepo repository.ItemRepository,
	movRepo repository.MovementLogRepository,
	auditRepo repository.AuditEventRepository,
) error) error {
	backup := r.s.clone()
	err := fn(
		&fakeSlipRepo{r.s}, r.s.stock, &fakeAssetRepo{r.s},
		&fakeItemRepo{r.s}, &fakeMovementRepo{r.s}, &fakeAuditRepo{r.s},
	)
	if err != nil {
		*r.s = *backup
		r.rolledBack = true
		return err
	}
	return nil
}

// Repos de cabecera (fuera de la transacción, solo lecturas).

type fakePropertyRepo struct{ props map[string]entity.Property }

func (r *fakePropertyRepo) Create(p *entity.Property) error { r.props[p.ID] = *p; return nil }
func (r *fakePropertyRepo) GetByID(id string) (*entity.Property, error) {
	if p, ok := r.props[id]; ok {
		copia := p
		return &copia, nil
	}
	return nil, nil
}
func (r *fakePropertyRepo) Update(p *entity.Property) error                    { return nil }
func (r *fakePropertyRepo) List(limit, offset int) ([]*entity.Property, error) { return nil, nil }
func (r *fakePropertyRepo) Delete(id string) error                             { return nil }

type fakeLocationRepo struct{ locs map[string]entity.Location }

func (r *fakeLocationRepo) Create(l *entity.Location) error { r.locs[l.ID] = *l; return nil }
func (r *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	if l, ok := r.locs[id]; ok {
		copia := l
		return &copia, nil
	}
	return nil, nil
}
func (r *fakeLocationRepo) Update(l *entity.Location) error { return nil }
func (r *fakeLocationRepo) ListByProperty(propertyID string, limit, offset int) ([]*entity.Location, error) {
	return nil, nil
}
func (r *fakeLocationRepo) Delete(id string) error { return nil }

type fakeDepartmentRepo struct{ depts map[string]entity.Department }

func (r *fakeDepartmentRepo) Create(d *entity.Department) error { r.depts[d.ID] = *d; return nil }
func (r *fakeDepartmentRepo) GetByID(id string) (*entity.Department, error) {
	if d, ok := r.depts[id]; ok {
		copia := d
		return &copia, nil
	}
	return nil, nil
}
func (r *fakeDepartmentRepo) List(limit, offset int) ([]*entity.Department, error) { return nil, nil }
func (r *fakeDepartmentRepo) Delete(id string) error                               { return nil }

type fakeUserRepo struct{ users map[string]entity.User }

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = *u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		copia := u
		return &copia, nil
	}
	return nil, nil
}
func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) { return nil, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type engineFixture struct {
	uc     *CreateSlipUseCase
	store  *fakeStore
	runner *fakeTxRunner
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	store := newFakeStore()
	runner := &fakeTxRunner{s: store}

	propertyRepo := &fakePropertyRepo{props: map[string]entity.Property{
		"p-1": {ID: "p-1", Name: "Hotel Centro"},
	}}
	locationRepo := &fakeLocationRepo{locs: map[string]entity.Location{
		"loc-a": {ID: "loc-a", PropertyID: "p-1", Name: "Bodega principal"},
		"loc-b": {ID: "loc-b", PropertyID: "p-1", Name: "Piso 3"},
	}}
	departmentRepo := &fakeDepartmentRepo{depts: map[string]entity.Department{
		"d-1": {ID: "d-1", Name: "Mantenimiento"},
	}}
	userRepo := &fakeUserRepo{users: map[string]entity.User{
		"u-admin": {ID: "u-admin", Role: entity.RoleAdmin},
	}}

	store.items["item-1"] = entity.Item{ID: "item-1", SKU: "TOA-01", Name: "Toalla blanca", Unit: "und"}
	store.assets["asset-1"] = entity.Asset{
		ID: "asset-1", Tag: "EQ-0001", Name: "Taladro", ItemID: "item-1",
		Condition: entity.ConditionGood, CurrentLocationID: "loc-a",
	}

	uc := NewCreateSlipUseCase(runner, propertyRepo, locationRepo, departmentRepo, userRepo, audit.NewRecorder())
	return &engineFixture{uc: uc, store: store, runner: runner}
}

func (f *engineFixture) seedStock(itemID, locationID string, qty int64) {
	f.store.stock.balances[stockKey(itemID, locationID)] = entity.StockBalance{
		ItemID: itemID, LocationID: locationID, QtyOnHand: decimal.NewFromInt(qty),
	}
}

func baseInput(slipType string) CreateSlipInput {
	in := CreateSlipInput{
		SequenceNumber: "VAL-0001",
		Type:           slipType,
		PropertyID:     "p-1",
		DepartmentID:   "d-1",
		Signature:      SignatureInput{SignedByName: "Juan Pérez", Method: entity.SignatureMethodTyped},
	}
	switch slipType {
	case entity.SlipTypeIssue:
		in.FromLocationID = "loc-a"
	case entity.SlipTypeReturn:
		in.ToLocationID = "loc-a"
	case entity.SlipTypeTransfer:
		in.FromLocationID = "loc-a"
		in.ToLocationID = "loc-b"
	}
	return in
}

func itemLine(qty int64) LineInput {
	return LineInput{ItemID: "item-1", Quantity: decimal.NewFromInt(qty)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios
// ──────────────────────────────────────────────────────────────────────────────

// ISSUE con línea de cantidad: descuenta en origen, registra movimiento con
// delta negativo y audita la creación del vale.
func TestCreateSlip_SalidaDescuentaStock(t *testing.T) {
	f := newEngineFixture(t)
	f.seedStock("item-1", "loc-a", 10)

	in := baseInput(entity.SlipTypeIssue)
	in.Lines = []LineInput{itemLine(3)}

	s, err := f.uc.CreateSlip(context.Background(), "u-admin", entity.RoleAdmin, in)
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.True(t, f.store.stock.qty("item-1", "loc-a").Equal(decimal.NewFromInt(7)))
	assert.Len(t, f.store.slips, 1)

	require.Len(t, f.store.movements, 1)
	mov := f.store.movements[0]
	assert.Equal(t, s.ID, mov.SlipID)
	assert.Equal(t, "loc-a", mov.FromLocationID)
	require.NotNil(t, mov.QuantityDelta)
	assert.True(t, mov.QuantityDelta.Equal(decimal.NewFromInt(-3)))

	// Exactamente un evento: la creación del vale.
	require.Len(t, f.store.audits, 1)
	assert.Equal(t, "slip", f.store.audits[0].EntityType)
	assert.Equal(t, entity.AuditActionCreate, f.store.audits[0].Action)
}

// ISSUE sin saldo suficiente: el vale completo se revierte.
func TestCreateSlip_StockInsuficienteRevierteTodo(t *testing.T) {
	f := newEngineFixture(t)
	f.seedStock("item-1", "loc-a", 2)

	in := baseInput(entity.SlipTypeIssue)
	in.Lines = []LineInput{itemLine(5)}

	_, err := f.uc.CreateSlip(context.Background(), "u-admin", entity.RoleAdmin, in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	assert.True(t, f.runner.rolledBack)
	assert.True(t, f.store.stock.qty("item-1", "loc-a").Equal(decimal.NewFromInt(2)))
	assert.Empty(t, f.store.slips)
	assert.Empty(t, f.store.movements)
	assert.Empty(t, f.store.audits)
}

// Atomicidad multi-línea: la primera línea pasa, la segunda falla. Nada queda.
func TestCreateSlip_FalloEnSegundaLineaRevierteLaPrimera(t *testing.T) {
	f := newEngineFixture(t)
	f.seedStock("item-1", "loc-a", 10)

	in := baseInput(entity.SlipTypeIssue)
	in.Lines = []LineInput{
		itemLine(3),
		{AssetID: "asset-inexistente"},
	}

	_, err := f.uc.CreateSlip(context.Background(), "u-admin", entity.RoleAdmin, in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	// El descuento de la primera línea no sobrevive.
	assert.True(t, f.store.stock.qty("item-1", "loc-a").Equal(decimal.NewFromInt(10)))
	assert.Empty(t, f.store.slips)
	assert.Empty(t, f.store.movements)
	assert.Empty(t, f.store.audits)
}

// RETURN de activo sin origen explícito: el movimiento sale desde la ubicación
// actual del activo, se captura ConditionAtMove y se aplica NewCondition.
func TestCreateSlip_DevolucionDeActivoConNuevaCondicion(t *testing.T) {
	f := newEngineFixture(t)
	asset := f.store.assets["asset-1"]
	asset.CurrentLocationID = "loc-b"
	asset.Condition = entity.ConditionFair
	f.store.assets["asset-1"] = asset

	in := baseInput(entity.SlipTypeReturn)
	in.Lines = []LineInput{{AssetID: "asset-1", NewCondition: entity.ConditionPoor}}

	s, err := f.uc.CreateSlip(context.Background(), "u-admin", entity.RoleAdmin, in)
	require.NoError(t, err)

	// Snapshot de la condición observada ANTES de aplicar la nueva.
	assert.Equal(t, entity.ConditionFair, s.Lines[0].ConditionAtMove)

	updated := f.store.assets["asset-1"]
	assert.Equal(t, "loc-a", updated.CurrentLocationID)
	assert.Equal(t, entity.ConditionPoor, updated.Condition)

	require.Len(t, f.store.movements, 1)
	mov := f.store.movements[0]
	assert.Equal(t, "loc-b", mov.FromLocationID, "origen implícito: donde estaba el activo")
	assert.Equal(t, "loc-a", mov.ToLocationID)
	assert.Nil(t, mov.QuantityDelta, "movimiento de solo activo no lleva delta")

	// Dos eventos: UPDATE del activo y CREATE del vale.
	require.Len(t, f.store.audits, 2)
	assert.Equal(t, "asset", f.store.audits[0].EntityType)
	assert.Equal(t, entity.AuditActionUpdate, f.store.audits[0].Action)
	assert.Equal(t, "slip", f.store.audits[1].EntityType)
}

// TRANSFER de cantidad: dos ajustes y dos movimientos (salida y entrada).
func TestCreateSlip_TrasladoGeneraDosMovimientos(t *testing.T) {
	f := newEngineFixture(t)
	f.seedStock("item-1", "loc-a", 8)

	in := baseInput(entity.SlipTypeTransfer)
	in.Lines = []LineInput{itemLine(5)}

	_, err := f.uc.CreateSlip(context.Background(), "u-admin", entity.RoleAdmin, in)
	require.NoError(t, err)

	assert.True(t, f.store.stock.qty("item-1", "loc-a").Equal(decimal.NewFromInt(3)))
	assert.True(t, f.store.stock.qty("item-1", "loc-b").Equal(decimal.NewFromInt(5)))

	require.Len(t, f.store.movements, 2)
	salida, entrada := f.store.movements[0], f.store.movements[1]
	assert.Equal(t, "loc-a", salida.FromLocationID)
	assert.Empty(t, salida.ToLocationID)
	assert.True(t, salida.QuantityDelta.Equal(decimal.NewFromInt(-5)))
	assert.Empty(t, entrada.FromLocationID)
	assert.Equal(t, "loc-b", entrada.ToLocationID)
	assert.True(t, entrada.QuantityDelta.Equal(decimal.NewFromInt(5)))
}

// ISSUE de un activo SCRAP: bloqueado por el guard, nada persiste.
func TestCreateSlip_ActivoScrapNoPuedeSalir(t *testing.T) {
	f := newEngineFixture(t)
	asset := f.store.assets["asset-1"]
	asset.Condition = entity.ConditionScrap
	f.store.assets["asset-1"] = asset

	in := baseInput(entity.SlipTypeIssue)
	in.ToLocationID = "loc-b"
	in.Lines = []LineInput{{AssetID: "asset-1"}}

	_, err := f.uc.CreateSlip(context.Background(), "u-admin", entity.RoleAdmin, in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrAssetNotMovable))

	// El activo no se movió.
	assert.Equal(t, "loc-a", f.store.assets["asset-1"].CurrentLocationID)
	assert.Empty(t, f.store.slips)
	assert.Empty(t, f.store.audits)
}

// RETURN de un activo SCRAP sí procede (el guard solo aplica a salidas).
func TestCreateSlip_DevolucionDeActivoScrapProcede(t *testing.T) {
	f := newEngineFixture(t)
	asset := f.store.assets["asset-1"]
	asset.Condition = entity.ConditionScrap
	asset.CurrentLocationID = "loc-b"
	f.store.assets["asset-1"] = asset

	in := baseInput(entity.SlipTypeReturn)
	in.Lines = []LineInput{{AssetID: "asset-1"}}

	s, err := f.uc.CreateSlip(context.Background(), "u-admin", entity.RoleAdmin, in)
	require.NoError(t, err)
	assert.Equal(t, entity.ConditionScrap, s.Lines[0].ConditionAtMove)
	assert.Equal(t, "loc-a", f.store.assets["asset-1"].CurrentLocationID)
}

// Rol sin permiso: rechazo antes de tocar cualquier dato.
func TestCreateSlip_VendedorNoPuedeCrearVales(t *testing.T) {
	f := newEngineFixture(t)
	f.seedStock("item-1", "loc-a", 10)

	in := baseInput(entity.SlipTypeIssue)
	in.Lines = []LineInput{itemLine(1)}

	_, err := f.uc.CreateSlip(context.Background(), "u-vend", entity.RoleVendedor, in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
	assert.False(t, f.runner.rolledBack, "no debe abrirse transacción")
	assert.True(t, f.store.stock.qty("item-1", "loc-a").Equal(decimal.NewFromInt(10)))
}

// Validación estructural de líneas y cabecera.
func TestCreateSlip_Validaciones(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateSlipInput)
		field  string
	}{
		{
			name:   "línea con item y activo a la vez",
			mutate: func(in *CreateSlipInput) { in.Lines = []LineInput{{ItemID: "item-1", Quantity: decimal.NewFromInt(1), AssetID: "asset-1"}} },
			field:  "lines[0]",
		},
		{
			name:   "línea vacía",
			mutate: func(in *CreateSlipInput) { in.Lines = []LineInput{{}} },
			field:  "lines[0]",
		},
		{
			name:   "cantidad cero",
			mutate: func(in *CreateSlipInput) { in.Lines = []LineInput{{ItemID: "item-1"}} },
			field:  "lines[0]",
		},
		{
			name:   "cantidad negativa",
			mutate: func(in *CreateSlipInput) { in.Lines = []LineInput{itemLine(-2)} },
			field:  "lines[0]",
		},
		{
			name:   "condición en línea de cantidad",
			mutate: func(in *CreateSlipInput) { in.Lines = []LineInput{{ItemID: "item-1", Quantity: decimal.NewFromInt(1), NewCondition: entity.ConditionPoor}} },
			field:  "lines[0]",
		},
		{
			name:   "sin líneas",
			mutate: func(in *CreateSlipInput) { in.Lines = nil },
			field:  "lines",
		},
		{
			name:   "firma sin nombre",
			mutate: func(in *CreateSlipInput) { in.Signature.SignedByName = "" },
			field:  "signature.signed_by_name",
		},
		{
			name:   "ISSUE sin origen",
			mutate: func(in *CreateSlipInput) { in.FromLocationID = "" },
			field:  "from_location_id",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newEngineFixture(t)
			in := baseInput(entity.SlipTypeIssue)
			in.Lines = []LineInput{itemLine(1)}
			tc.mutate(&in)

			_, err := f.uc.CreateSlip(context.Background(), "u-admin", entity.RoleAdmin, in)
			require.Error(t, err)

			var vErr *domain.ValidationError
			require.True(t, errors.As(err, &vErr), "se espera ValidationError, fue: %v", err)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

// TRANSFER exige origen y destino distintos y no admite cambio de condición.
func TestCreateSlip_ValidacionesDeTraslado(t *testing.T) {
	f := newEngineFixture(t)

	in := baseInput(entity.SlipTypeTransfer)
	in.ToLocationID = in.FromLocationID
	in.Lines = []LineInput{itemLine(1)}
	_, err := f.uc.CreateSlip(context.Background(), "u-admin", entity.RoleAdmin, in)
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "to_location_id", vErr.Field)

	in = baseInput(entity.SlipTypeTransfer)
	in.Lines = []LineInput{{AssetID: "asset-1", NewCondition: entity.ConditionPoor}}
	_, err = f.uc.CreateSlip(context.Background(), "u-admin", entity.RoleAdmin, in)
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "lines[0]", vErr.Field)
}

// Ubicación de otra propiedad en la cabecera: NOT_FOUND antes de la transacción.
func TestCreateSlip_UbicacionAjenaALaPropiedad(t *testing.T) {
	f := newEngineFixture(t)
	in := baseInput(entity.SlipTypeIssue)
	in.FromLocationID = "loc-zz"
	in.Lines = []LineInput{itemLine(1)}

	_, err := f.uc.CreateSlip(context.Background(), "u-admin", entity.RoleAdmin, in)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.False(t, f.runner.rolledBack)
}

// Consecutivo duplicado: ErrDuplicate y rollback del segundo vale.
func TestCreateSlip_ConsecutivoDuplicado(t *testing.T) {
	f := newEngineFixture(t)
	f.seedStock("item-1", "loc-a", 10)

	in := baseInput(entity.SlipTypeIssue)
	in.Lines = []LineInput{itemLine(1)}
	_, err := f.uc.CreateSlip(context.Background(), "u-admin", entity.RoleAdmin, in)
	require.NoError(t, err)

	_, err = f.uc.CreateSlip(context.Background(), "u-admin", entity.RoleAdmin, in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))

	// Solo el primer vale y su descuento sobreviven.
	assert.Len(t, f.store.slips, 1)
	assert.True(t, f.store.stock.qty("item-1", "loc-a").Equal(decimal.NewFromInt(9)))
}

// Un vale mixto (cantidad + activo) procesa ambas líneas en orden.
func TestCreateSlip_ValeMixto(t *testing.T) {
	f := newEngineFixture(t)
	f.seedStock("item-1", "loc-a", 10)

	in := baseInput(entity.SlipTypeIssue)
	in.ToLocationID = "loc-b"
	in.Lines = []LineInput{
		itemLine(2),
		{AssetID: "asset-1", NewCondition: entity.ConditionFair},
	}

	s, err := f.uc.CreateSlip(context.Background(), "u-admin", entity.RoleAdmin, in)
	require.NoError(t, err)

	assert.Equal(t, 1, s.Lines[0].LineNumber)
	assert.Equal(t, 2, s.Lines[1].LineNumber)
	assert.True(t, f.store.stock.qty("item-1", "loc-a").Equal(decimal.NewFromInt(8)))
	assert.Equal(t, "loc-b", f.store.assets["asset-1"].CurrentLocationID)
	assert.Equal(t, entity.ConditionFair, f.store.assets["asset-1"].Condition)
	assert.Len(t, f.store.movements, 2)

	// Auditoría: UPDATE del activo + CREATE del vale.
	require.Len(t, f.store.audits, 2)
}
