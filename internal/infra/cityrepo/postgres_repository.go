package cityrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/city-weather/internal/domain/geocode"
)

// PostgresRepository persists cities in Postgres using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// EnsureSchema creates the cities table when missing. name is indexed but not unique so
// racing inserts of the same city both succeed.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS cities (
			id   BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			lat  DOUBLE PRECISION NOT NULL,
			long DOUBLE PRECISION NOT NULL
		)
	`); err != nil {
		return err
	}
	_, err := r.pool.Exec(ctx, `CREATE INDEX IF NOT EXISTS cities_name_idx ON cities (name)`)
	return err
}

// FindByName returns the oldest row for name.
func (r *PostgresRepository) FindByName(ctx context.Context, name string) (geocode.Coordinate, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT lat, long
		FROM cities
		WHERE name = $1
		ORDER BY id ASC
		LIMIT 1
	`, name)
	if err != nil {
		return geocode.Coordinate{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return geocode.Coordinate{}, false, rows.Err()
	}
	var coord geocode.Coordinate
	if err := rows.Scan(&coord.Latitude, &coord.Longitude); err != nil {
		return geocode.Coordinate{}, false, err
	}
	return coord, true, rows.Err()
}

// Insert adds a new city row.
func (r *PostgresRepository) Insert(ctx context.Context, record geocode.CityRecord) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO cities (name, lat, long)
		VALUES ($1, $2, $3)
	`, record.Name, record.Coordinate.Latitude, record.Coordinate.Longitude)
	return err
}

// Recent lists the most recently inserted names.
func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT name
		FROM cities
		ORDER BY id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNames(rows)
}

type nameRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanNames(rows nameRows) ([]string, error) {
	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

var _ geocode.CityRepository = (*PostgresRepository)(nil)
