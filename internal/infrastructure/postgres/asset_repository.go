package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/activos-pro/internal/domain"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
)

var _ repository.AssetRepository = (*AssetRepo)(nil)

// AssetRepo implementación del puerto AssetRepository sobre PostgreSQL (usable con pool o tx).
type AssetRepo struct {
	q Querier
}

// NewAssetRepository construye el adaptador de persistencia para activos. Pasar pool o tx (Querier).
func NewAssetRepository(q Querier) *AssetRepo {
	return &AssetRepo{q: q}
}

const assetColumns = `id, tag, name, item_id, condition, current_location_id, notes, created_at, updated_at`

// Create persiste un nuevo activo. La placa (tag) es única: 23505 -> ErrDuplicate.
func (r *AssetRepo) Create(asset *entity.Asset) error {
	query := `
		INSERT INTO assets (id, tag, name, item_id, condition, current_location_id, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		asset.ID, asset.Tag, asset.Name, asset.ItemID, asset.Condition,
		nullable(asset.CurrentLocationID), asset.Notes, asset.CreatedAt, asset.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert asset: %w", err)
	}
	return nil
}

// GetByID obtiene un activo por ID.
func (r *AssetRepo) GetByID(id string) (*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1`
	return r.getOne(query, id)
}

// GetByIDForUpdate obtiene el activo y bloquea la fila (SELECT FOR UPDATE)
// para que su condición no cambie durante la transacción del vale.
func (r *AssetRepo) GetByIDForUpdate(id string) (*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1 FOR UPDATE`
	return r.getOne(query, id)
}

// GetByTag obtiene un activo por su placa única.
func (r *AssetRepo) GetByTag(tag string) (*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE tag = $1`
	return r.getOne(query, tag)
}

func (r *AssetRepo) getOne(query string, arg any) (*entity.Asset, error) {
	var a entity.Asset
	var location *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&a.ID, &a.Tag, &a.Name, &a.ItemID, &a.Condition, &location, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset: %w", err)
	}
	a.CurrentLocationID = deref(location)
	return &a, nil
}

// Update actualiza un activo (datos maestros, condición y ubicación).
func (r *AssetRepo) Update(asset *entity.Asset) error {
	query := `
		UPDATE assets SET name = $2, condition = $3, current_location_id = $4, notes = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		asset.ID, asset.Name, asset.Condition, nullable(asset.CurrentLocationID), asset.Notes, asset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update asset: %w", err)
	}
	return nil
}

// Search busca por placa o nombre, case-insensitive, ordenado por placa.
func (r *AssetRepo) Search(query string, limit int) ([]*entity.Asset, error) {
	sql := `
		SELECT ` + assetColumns + `
		FROM assets
		WHERE tag ILIKE $1 OR name ILIKE $1
		ORDER BY tag LIMIT $2`
	return r.list(sql, "%"+query+"%", limit)
}

// List lista activos paginados ordenados por placa.
func (r *AssetRepo) List(limit, offset int) ([]*entity.Asset, error) {
	sql := `SELECT ` + assetColumns + ` FROM assets ORDER BY tag LIMIT $1 OFFSET $2`
	return r.list(sql, limit, offset)
}

func (r *AssetRepo) list(sql string, args ...any) ([]*entity.Asset, error) {
	rows, err := r.q.Query(context.Background(), sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()
	var out []*entity.Asset
	for rows.Next() {
		var a entity.Asset
		var location *string
		if err := rows.Scan(&a.ID, &a.Tag, &a.Name, &a.ItemID, &a.Condition, &location,
			&a.Notes, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		a.CurrentLocationID = deref(location)
		out = append(out, &a)
	}
	return out, rows.Err()
}

// Delete elimina un activo por ID. Falla con FK si hay vales que lo referencian.
func (r *AssetRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	return nil
}
