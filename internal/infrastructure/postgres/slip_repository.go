package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/activos-pro/internal/domain"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/repository"
)

var _ repository.SlipRepository = (*SlipRepo)(nil)

// SlipRepo implementación del agregado Slip sobre PostgreSQL (usable con pool o tx).
// slips, slip_lines y signatures no tienen UPDATE ni DELETE: el vale es inmutable.
type SlipRepo struct {
	q Querier
}

// NewSlipRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSlipRepository(q Querier) *SlipRepo {
	return &SlipRepo{q: q}
}

// Create persiste cabecera, líneas y firma. El único en sequence_number se
// reporta como domain.ErrDuplicate.
func (r *SlipRepo) Create(s *entity.Slip) error {
	ctx := context.Background()
	query := `
		INSERT INTO slips (id, sequence_number, type, property_id, from_location_id, to_location_id,
			department_id, requester_id, issuer_id, receiver_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.SequenceNumber, s.Type, s.PropertyID,
		nullable(s.FromLocationID), nullable(s.ToLocationID),
		s.DepartmentID, nullable(s.RequesterID), nullable(s.IssuerID), nullable(s.ReceiverID),
		s.CreatedAt, s.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert slip: %w", err)
	}

	lineQuery := `
		INSERT INTO slip_lines (id, slip_id, line_number, item_id, quantity, asset_id, new_condition, condition_at_move)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, line := range s.Lines {
		var qty any
		if line.IsItemLine() {
			qty = line.Quantity
		}
		_, err := r.q.Exec(ctx, lineQuery,
			line.ID, s.ID, line.LineNumber,
			nullable(line.ItemID), qty, nullable(line.AssetID),
			nullable(line.NewCondition), nullable(line.ConditionAtMove),
		)
		if err != nil {
			return fmt.Errorf("insert slip line %d: %w", line.LineNumber, err)
		}
	}

	sigQuery := `
		INSERT INTO signatures (id, slip_id, signed_by_name, signed_by_user_id, method, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = r.q.Exec(ctx, sigQuery,
		s.Signature.ID, s.ID, s.Signature.SignedByName,
		nullable(s.Signature.SignedByUserID), nullable(s.Signature.Method), s.Signature.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert signature: %w", err)
	}
	return nil
}

// GetByID obtiene el vale completo (líneas ordenadas por line_number y firma), o nil si no existe.
func (r *SlipRepo) GetByID(id string) (*entity.Slip, error) {
	ctx := context.Background()
	query := `
		SELECT id, sequence_number, type, property_id, from_location_id, to_location_id,
			department_id, requester_id, issuer_id, receiver_id, created_at, created_by
		FROM slips WHERE id = $1`
	s, err := scanSlip(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get slip: %w", err)
	}

	lineQuery := `
		SELECT id, slip_id, line_number, item_id, quantity, asset_id, new_condition, condition_at_move
		FROM slip_lines WHERE slip_id = $1 ORDER BY line_number`
	rows, err := r.q.Query(ctx, lineQuery, id)
	if err != nil {
		return nil, fmt.Errorf("get slip lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var line entity.SlipLine
		var itemID, assetID, newCondition, conditionAtMove *string
		var qty *decimal.Decimal
		if err := rows.Scan(&line.ID, &line.SlipID, &line.LineNumber,
			&itemID, &qty, &assetID, &newCondition, &conditionAtMove); err != nil {
			return nil, fmt.Errorf("scan slip line: %w", err)
		}
		line.ItemID = deref(itemID)
		line.AssetID = deref(assetID)
		line.NewCondition = deref(newCondition)
		line.ConditionAtMove = deref(conditionAtMove)
		if qty != nil {
			line.Quantity = *qty
		}
		s.Lines = append(s.Lines, &line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sigQuery := `
		SELECT id, slip_id, signed_by_name, signed_by_user_id, method, created_at
		FROM signatures WHERE slip_id = $1`
	var sig entity.Signature
	var sigUserID, method *string
	err = r.q.QueryRow(ctx, sigQuery, id).Scan(
		&sig.ID, &sig.SlipID, &sig.SignedByName, &sigUserID, &method, &sig.CreatedAt,
	)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("get signature: %w", err)
		}
	} else {
		sig.SignedByUserID = deref(sigUserID)
		sig.Method = deref(method)
		s.Signature = &sig
	}
	return s, nil
}

// List lista cabeceras de vales, más recientes primero (sin líneas ni firma).
func (r *SlipRepo) List(limit, offset int) ([]*entity.Slip, error) {
	query := `
		SELECT id, sequence_number, type, property_id, from_location_id, to_location_id,
			department_id, requester_id, issuer_id, receiver_id, created_at, created_by
		FROM slips ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list slips: %w", err)
	}
	defer rows.Close()
	var list []*entity.Slip
	for rows.Next() {
		s, err := scanSlip(rows)
		if err != nil {
			return nil, fmt.Errorf("scan slip: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// scanSlip escanea una fila de slips (pgx.Row o pgx.Rows).
func scanSlip(row pgx.Row) (*entity.Slip, error) {
	var s entity.Slip
	var fromLoc, toLoc, requester, issuer, receiver *string
	err := row.Scan(
		&s.ID, &s.SequenceNumber, &s.Type, &s.PropertyID, &fromLoc, &toLoc,
		&s.DepartmentID, &requester, &issuer, &receiver, &s.CreatedAt, &s.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	s.FromLocationID = deref(fromLoc)
	s.ToLocationID = deref(toLoc)
	s.RequesterID = deref(requester)
	s.IssuerID = deref(issuer)
	s.ReceiverID = deref(receiver)
	return &s, nil
}

// nullable convierte "" a NULL para columnas opcionales.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
