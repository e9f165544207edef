// Package routecache persists the airline route graph in SQLite. The graph
// feeds hidden-city discovery: DestinationsFrom answers "which cities do
// flights continue to after this airport".
package routecache

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/flightfinder/flightfinder/internal/domain"
	"github.com/flightfinder/flightfinder/internal/infrastructure/timeutil"
)

// schema creates the route graph table. One row per
// (airline, origin, destination) edge, upserted on refresh.
const schema = `
CREATE TABLE IF NOT EXISTS routes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	airline_code TEXT NOT NULL,
	origin TEXT NOT NULL,
	destination TEXT NOT NULL,
	last_updated TEXT NOT NULL,
	UNIQUE(airline_code, origin, destination)
);

CREATE INDEX IF NOT EXISTS idx_routes_origin ON routes(origin);
CREATE INDEX IF NOT EXISTS idx_routes_destination ON routes(destination);
`

// Store is a SQLite-backed domain.RouteCache.
type Store struct {
	db    *sql.DB
	clock timeutil.Clock
}

// Open opens (creating if needed) the route database at the given path.
// Parent directories are created; ":memory:" opens an in-memory database.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open route database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create route schema: %w", err)
	}

	return &Store{db: db, clock: timeutil.NewRealClock()}, nil
}

// WithClock replaces the clock used for last-updated timestamps.
// Intended for tests.
func (s *Store) WithClock(clock timeutil.Clock) *Store {
	s.clock = clock
	return s
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// AddRoute implements domain.RouteCache. Airport codes are stored uppercase.
func (s *Store) AddRoute(ctx context.Context, airlineCode, origin, destination string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO routes (airline_code, origin, destination, last_updated)
		VALUES (?, ?, ?, ?)`,
		airlineCode, strings.ToUpper(origin), strings.ToUpper(destination), s.now())
	if err != nil {
		return fmt.Errorf("add route: %w", err)
	}
	return nil
}

// AddRoutes implements domain.RouteCache, inserting the batch in one
// transaction.
func (s *Store) AddRoutes(ctx context.Context, routes []domain.Route) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin route batch: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO routes (airline_code, origin, destination, last_updated)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare route batch: %w", err)
	}
	defer stmt.Close()

	now := s.now()
	for _, r := range routes {
		if _, err := stmt.ExecContext(ctx, r.AirlineCode, strings.ToUpper(r.Origin), strings.ToUpper(r.Destination), now); err != nil {
			return fmt.Errorf("add route %s %s-%s: %w", r.AirlineCode, r.Origin, r.Destination, err)
		}
	}

	return tx.Commit()
}

// RoutesFrom implements domain.RouteCache.
func (s *Store) RoutesFrom(ctx context.Context, origin string) ([]domain.Route, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT airline_code, origin, destination, last_updated
		FROM routes WHERE origin = ?`,
		strings.ToUpper(origin))
	if err != nil {
		return nil, fmt.Errorf("query routes from %s: %w", origin, err)
	}
	defer rows.Close()

	var routes []domain.Route
	for rows.Next() {
		var r domain.Route
		if err := rows.Scan(&r.AirlineCode, &r.Origin, &r.Destination, &r.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan route: %w", err)
		}
		routes = append(routes, r)
	}
	return routes, rows.Err()
}

// DestinationsFrom implements domain.RouteCache.
func (s *Store) DestinationsFrom(ctx context.Context, origin string) (map[string]struct{}, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT destination FROM routes WHERE origin = ?`,
		strings.ToUpper(origin))
	if err != nil {
		return nil, fmt.Errorf("query destinations from %s: %w", origin, err)
	}
	defer rows.Close()

	destinations := make(map[string]struct{})
	for rows.Next() {
		var dest string
		if err := rows.Scan(&dest); err != nil {
			return nil, fmt.Errorf("scan destination: %w", err)
		}
		destinations[dest] = struct{}{}
	}
	return destinations, rows.Err()
}

// Clear implements domain.RouteCache.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM routes`); err != nil {
		return fmt.Errorf("clear routes: %w", err)
	}
	return nil
}

// Count implements domain.RouteCache.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM routes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count routes: %w", err)
	}
	return count, nil
}

// now formats the current time the way the schema stores it.
func (s *Store) now() string {
	return s.clock.Now().Format(time.RFC3339)
}

// Ensure Store implements domain.RouteCache at compile time.
var _ domain.RouteCache = (*Store)(nil)
