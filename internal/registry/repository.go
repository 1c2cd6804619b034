package registry

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// SQLDirectory is a Directory backed by a Postgres registry table. Records
// are stored with a precomputed normalized_reg_no column so that lookups
// stay index-friendly.
type SQLDirectory struct {
	db *sql.DB
}

var _ Directory = (*SQLDirectory)(nil)

// NewSQLDirectory creates a directory over the given database handle
func NewSQLDirectory(db *sql.DB) *SQLDirectory {
	return &SQLDirectory{db: db}
}

// OpenSQLDirectory opens a Postgres connection and wraps it in a directory
func OpenSQLDirectory(dsn string) (*SQLDirectory, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open registry database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping registry database: %w", err)
	}
	return &SQLDirectory{db: db}, nil
}

func (d *SQLDirectory) Find(ctx context.Context, id string) (*Record, error) {
	query := `
		SELECT reg_no, name, entity_type, status
		FROM registry_records
		WHERE normalized_reg_no = $1
	`

	var rec Record
	err := d.db.QueryRowContext(ctx, query, id).Scan(
		&rec.RegNo,
		&rec.Name,
		&rec.EntityType,
		&rec.Status,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

func (d *SQLDirectory) FindBySuffix(ctx context.Context, suffix string) (*Record, error) {
	if suffix == "" {
		return nil, nil
	}

	query := `
		SELECT reg_no, name, entity_type, status
		FROM registry_records
		WHERE normalized_reg_no LIKE '%' || $1
		ORDER BY reg_no
		LIMIT 1
	`

	var rec Record
	err := d.db.QueryRowContext(ctx, query, suffix).Scan(
		&rec.RegNo,
		&rec.Name,
		&rec.EntityType,
		&rec.Status,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

func (d *SQLDirectory) Search(ctx context.Context, query string) ([]Record, error) {
	stmt := `
		SELECT reg_no, name, entity_type, status
		FROM registry_records
		WHERE name ILIKE '%' || $1 || '%'
		   OR reg_no ILIKE '%' || $1 || '%'
		   OR entity_type ILIKE '%' || $1 || '%'
		ORDER BY name
		LIMIT 50
	`

	rows, err := d.db.QueryContext(ctx, stmt, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.RegNo, &rec.Name, &rec.EntityType, &rec.Status); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// DB exposes the underlying handle for health checks
func (d *SQLDirectory) DB() *sql.DB {
	return d.db
}

// Close releases the underlying database handle
func (d *SQLDirectory) Close() error {
	return d.db.Close()
}
