package advisers

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository stores advisers in Postgres
type PostgresRepository struct {
	db *pgxpool.Pool
}

var _ Repository = (*PostgresRepository)(nil)

// NewPostgresRepository creates a new adviser repository
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ErrNotFound is returned when an adviser does not exist
var ErrNotFound = errors.New("adviser not found")

// Create inserts a new adviser record
func (r *PostgresRepository) Create(ctx context.Context, adviser *Adviser) error {
	query := `
		INSERT INTO advisers (
			id, name, reg_no, bio, risk_score, verdict, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		adviser.ID,
		adviser.Name,
		adviser.RegNo,
		adviser.Bio,
		adviser.RiskScore,
		adviser.Verdict,
		adviser.CreatedAt,
		adviser.UpdatedAt,
	)

	return err
}

// GetByID retrieves an adviser by ID
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Adviser, error) {
	query := `
		SELECT id, name, reg_no, bio, risk_score, verdict, created_at, updated_at
		FROM advisers
		WHERE id = $1
	`

	var adviser Adviser
	err := r.db.QueryRow(ctx, query, id).Scan(
		&adviser.ID,
		&adviser.Name,
		&adviser.RegNo,
		&adviser.Bio,
		&adviser.RiskScore,
		&adviser.Verdict,
		&adviser.CreatedAt,
		&adviser.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &adviser, nil
}

// List retrieves advisers ordered by newest first, with the total count
func (r *PostgresRepository) List(ctx context.Context, limit, offset int) ([]*Adviser, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM advisers`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, name, reg_no, bio, risk_score, verdict, created_at, updated_at
		FROM advisers
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	advisers := make([]*Adviser, 0)
	for rows.Next() {
		var adviser Adviser
		err := rows.Scan(
			&adviser.ID,
			&adviser.Name,
			&adviser.RegNo,
			&adviser.Bio,
			&adviser.RiskScore,
			&adviser.Verdict,
			&adviser.CreatedAt,
			&adviser.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		advisers = append(advisers, &adviser)
	}

	return advisers, total, rows.Err()
}
