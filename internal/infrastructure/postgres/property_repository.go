package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
)

var _ repository.PropertyRepository = (*PropertyRepo)(nil)

// PropertyRepo implementación del puerto PropertyRepository sobre PostgreSQL.
type PropertyRepo struct {
	pool *pgxpool.Pool
}

// NewPropertyRepository construye el adaptador de persistencia para propiedades.
func NewPropertyRepository(pool *pgxpool.Pool) *PropertyRepo {
	return &PropertyRepo{pool: pool}
}

// Create persiste una nueva propiedad.
func (r *PropertyRepo) Create(property *entity.Property) error {
	query := `
		INSERT INTO properties (id, name, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		property.ID, property.Name, property.Address, property.CreatedAt, property.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert property: %w", err)
	}
	return nil
}

// GetByID obtiene una propiedad por ID.
func (r *PropertyRepo) GetByID(id string) (*entity.Property, error) {
	query := `
		SELECT id, name, address, created_at, updated_at
		FROM properties WHERE id = $1`
	var p entity.Property
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Address, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get property: %w", err)
	}
	return &p, nil
}

// Update actualiza una propiedad existente.
func (r *PropertyRepo) Update(property *entity.Property) error {
	query := `
		UPDATE properties SET name = $2, address = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		property.ID, property.Name, property.Address, property.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}
	return nil
}

// List lista propiedades con paginación.
func (r *PropertyRepo) List(limit, offset int) ([]*entity.Property, error) {
	query := `
		SELECT id, name, address, created_at, updated_at
		FROM properties ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()
	var list []*entity.Property
	for rows.Next() {
		var p entity.Property
		if err := rows.Scan(&p.ID, &p.Name, &p.Address, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina una propiedad por ID.
func (r *PropertyRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	return nil
}
