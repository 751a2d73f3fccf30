package cityrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/yanqian/city-weather/internal/domain/geocode"
)

// SQLiteRepository persists cities in an embedded SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (or creates) the database at path and applies the schema.
func NewSQLiteRepository(ctx context.Context, path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// A single connection serializes writers and keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	repo := &SQLiteRepository{db: db}
	if err := repo.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

// EnsureSchema creates the cities table when missing.
func (r *SQLiteRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`PRAGMA journal_mode=WAL`,
		`PRAGMA busy_timeout=5000`,
		`CREATE TABLE IF NOT EXISTS cities (
			id   INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			lat  REAL NOT NULL,
			long REAL NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS cities_name_idx ON cities (name)`,
	}
	for _, stmt := range statements {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply sqlite schema: %w", err)
		}
	}
	return nil
}

// FindByName returns the oldest row for name.
func (r *SQLiteRepository) FindByName(ctx context.Context, name string) (geocode.Coordinate, bool, error) {
	var coord geocode.Coordinate
	err := r.db.QueryRowContext(ctx, `
		SELECT lat, long
		FROM cities
		WHERE name = ?
		ORDER BY id ASC
		LIMIT 1
	`, name).Scan(&coord.Latitude, &coord.Longitude)
	if errors.Is(err, sql.ErrNoRows) {
		return geocode.Coordinate{}, false, nil
	}
	if err != nil {
		return geocode.Coordinate{}, false, err
	}
	return coord, true, nil
}

// Insert adds a new city row.
func (r *SQLiteRepository) Insert(ctx context.Context, record geocode.CityRecord) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO cities (name, lat, long) VALUES (?, ?, ?)`,
		record.Name, record.Coordinate.Latitude, record.Coordinate.Longitude)
	return err
}

// Recent lists the most recently inserted names.
func (r *SQLiteRepository) Recent(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM cities ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNames(rows)
}

// Close releases the database handle.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

var _ geocode.CityRepository = (*SQLiteRepository)(nil)
