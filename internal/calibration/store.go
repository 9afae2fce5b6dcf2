// Package calibration persists pixels-per-unit calibration values in SQLite.
// The geometry code never reads the store directly: callers take a Snapshot
// and pass it on as a units.Resolver.
package calibration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/philipparndt/goshape/internal/logging"
	"github.com/philipparndt/goshape/pkg/units"
)

var (
	// ErrNotCalibrated is returned when no value is stored for a unit
	ErrNotCalibrated = errors.New("unit is not calibrated")
	// ErrInvalidCalibration is returned for non-positive or non-finite values
	ErrInvalidCalibration = errors.New("pixels per unit must be a positive number")
)

const schema = `
CREATE TABLE IF NOT EXISTS calibration (
    unit            TEXT PRIMARY KEY,
    pixels_per_unit REAL NOT NULL,
    updated_at      TEXT NOT NULL DEFAULT (datetime('now'))
)`

// Store keeps one calibration value per unit
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (and creates if needed) the calibration database at path
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	logger = logging.OrNop(logger)
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	logger.Debug("calibration store opened", "path", path)
	return &Store{db: db, logger: logger}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the stored pixels per unit
func (s *Store) Get(ctx context.Context, unit units.Unit) (float64, error) {
	row := s.db.QueryRowContext(ctx, `SELECT pixels_per_unit FROM calibration WHERE unit = ?`, string(unit))

	var v float64
	if err := row.Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%w: %s", ErrNotCalibrated, unit)
		}
		return 0, fmt.Errorf("read calibration: %w", err)
	}
	return v, nil
}

// Set stores a new pixels per unit value
func (s *Store) Set(ctx context.Context, unit units.Unit, pixelsPerUnit float64) error {
	if pixelsPerUnit <= 0 || math.IsNaN(pixelsPerUnit) || math.IsInf(pixelsPerUnit, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidCalibration, pixelsPerUnit)
	}

	_, err := s.db.ExecContext(ctx, `
        INSERT INTO calibration (unit, pixels_per_unit, updated_at)
        VALUES (?, ?, datetime('now'))
        ON CONFLICT(unit) DO UPDATE SET
            pixels_per_unit = excluded.pixels_per_unit,
            updated_at = excluded.updated_at
    `, string(unit), pixelsPerUnit)
	if err != nil {
		return fmt.Errorf("write calibration: %w", err)
	}

	s.logger.Info("calibration updated", "unit", unit, "pixelsPerUnit", pixelsPerUnit)
	return nil
}

// Reset removes the stored value so the default applies again
func (s *Store) Reset(ctx context.Context, unit units.Unit) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM calibration WHERE unit = ?`, string(unit)); err != nil {
		return fmt.Errorf("reset calibration: %w", err)
	}
	return nil
}

// All returns every stored value keyed by unit
func (s *Store) All(ctx context.Context) (map[units.Unit]float64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT unit, pixels_per_unit FROM calibration ORDER BY unit`)
	if err != nil {
		return nil, fmt.Errorf("list calibration: %w", err)
	}
	defer rows.Close()

	values := make(map[units.Unit]float64)
	for rows.Next() {
		var (
			unit string
			v    float64
		)
		if err := rows.Scan(&unit, &v); err != nil {
			return nil, fmt.Errorf("scan calibration: %w", err)
		}
		values[units.Unit(unit)] = v
	}
	return values, rows.Err()
}

// Snapshot returns the current calibration, falling back to the defaults
// for units without a stored value
func (s *Store) Snapshot(ctx context.Context) (units.Calibration, error) {
	values, err := s.All(ctx)
	if err != nil {
		return units.Calibration{}, err
	}

	cal := units.DefaultCalibration()
	for u, v := range values {
		cal = cal.With(u, v)
	}
	return cal, nil
}
