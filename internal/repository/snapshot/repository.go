package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Register driver.

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/domain/settings"
	"github.com/oshokin/alarm-clock/internal/parser"
)

// Repository defines persistence operations for configuration snapshots.
type Repository interface {
	Save(ctx context.Context, source string, snap *parser.Snapshot) (*Record, error)
	Latest(ctx context.Context) (*Record, error)
}

// Record is a stored snapshot with its metadata.
type Record struct {
	// ID identifies the snapshot.
	ID string
	// Source is the document the snapshot was parsed from.
	Source string
	// CreatedAt is when the snapshot was stored.
	CreatedAt time.Time
	// Snapshot is the stored configuration.
	Snapshot *parser.Snapshot
}

// ErrNotFound is returned when no snapshot has been stored yet.
var ErrNotFound = errors.New("snapshot not found")

// SQLiteRepository persists snapshots in a SQLite database.
type SQLiteRepository struct {
	// db is the open database handle.
	db *sql.DB
	// mu serialises writers so a snapshot is stored atomically.
	mu sync.Mutex
	// now returns the creation timestamp.
	now func() time.Time
}

// Open opens (and creates if needed) the database at path and runs migrations.
func Open(ctx context.Context, path string) (*SQLiteRepository, error) {
	path = filepath.Clean(path)

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}

	// Enforce a single connection to avoid SQLITE_BUSY during writes.
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("ping snapshot db: %w", err)
	}

	r := &SQLiteRepository{
		db:  db,
		now: time.Now,
	}

	if err = r.migrate(ctx); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("migrate snapshot db: %w", err)
	}

	return r, nil
}

// Close releases the database handle.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) migrate(ctx context.Context) error {
	queries := []string{
		`PRAGMA busy_timeout=30000;`,
		`CREATE TABLE IF NOT EXISTS snapshots (
			id TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			title TEXT NOT NULL,
			sound_file TEXT NOT NULL,
			screen_width INTEGER NOT NULL,
			screen_height INTEGER NOT NULL,
			dim_delay INTEGER NOT NULL,
			bright INTEGER NOT NULL,
			dim INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS fonts (
			snapshot_id TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
			slot INTEGER NOT NULL,
			file_name TEXT NOT NULL,
			size INTEGER NOT NULL,
			PRIMARY KEY (snapshot_id, slot)
		);`,
		`CREATE TABLE IF NOT EXISTS alarms (
			snapshot_id TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			trigger_time INTEGER NOT NULL,
			days INTEGER NOT NULL,
			PRIMARY KEY (snapshot_id, position)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_created ON snapshots(created_at);`,
	}

	for _, q := range queries {
		if _, err := r.db.ExecContext(ctx, q); err != nil {
			return err
		}
	}

	return nil
}

// Save stores the snapshot in a single transaction.
func (r *SQLiteRepository) Save(ctx context.Context, source string, snap *parser.Snapshot) (*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record := &Record{
		ID:        uuid.NewString(),
		Source:    source,
		CreatedAt: r.now().UTC(),
		Snapshot:  snap,
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin snapshot tx: %w", err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	s := snap.Settings

	_, err = tx.ExecContext(ctx,
		`INSERT INTO snapshots (id, source, created_at, title, sound_file, screen_width, screen_height, dim_delay, bright, dim)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, source, record.CreatedAt.UnixNano(), s.Title, s.SoundFileName,
		s.ScreenWidth, s.ScreenHeight, s.DimDelay, s.Bright, s.Dim)
	if err != nil {
		return nil, fmt.Errorf("insert snapshot: %w", err)
	}

	for _, size := range settings.FontSizes() {
		f := snap.Fonts[size]

		_, err = tx.ExecContext(ctx,
			`INSERT INTO fonts (snapshot_id, slot, file_name, size) VALUES (?, ?, ?, ?)`,
			record.ID, int(size), f.FileName, f.Size)
		if err != nil {
			return nil, fmt.Errorf("insert font %s: %w", size, err)
		}
	}

	for i, a := range snap.Alarms {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO alarms (snapshot_id, position, trigger_time, days) VALUES (?, ?, ?, ?)`,
			record.ID, i, a.TriggerTime, encodeDays(a.Days))
		if err != nil {
			return nil, fmt.Errorf("insert alarm %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit snapshot: %w", err)
	}

	return record, nil
}

// Latest loads the most recently stored snapshot.
func (r *SQLiteRepository) Latest(ctx context.Context) (*Record, error) {
	var (
		record  Record
		created int64
		snap    = &parser.Snapshot{Fonts: settings.DefaultFonts()}
		s       = &snap.Settings
	)

	err := r.db.QueryRowContext(ctx,
		`SELECT id, source, created_at, title, sound_file, screen_width, screen_height, dim_delay, bright, dim
		 FROM snapshots ORDER BY created_at DESC, rowid DESC LIMIT 1`).
		Scan(&record.ID, &record.Source, &created, &s.Title, &s.SoundFileName,
			&s.ScreenWidth, &s.ScreenHeight, &s.DimDelay, &s.Bright, &s.Dim)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("query snapshot: %w", err)
	}

	record.CreatedAt = time.Unix(0, created).UTC()

	if err = r.loadFonts(ctx, record.ID, snap); err != nil {
		return nil, err
	}

	if err = r.loadAlarms(ctx, record.ID, snap); err != nil {
		return nil, err
	}

	record.Snapshot = snap

	return &record, nil
}

func (r *SQLiteRepository) loadFonts(ctx context.Context, id string, snap *parser.Snapshot) error {
	rows, err := r.db.QueryContext(ctx, `SELECT slot, file_name, size FROM fonts WHERE snapshot_id = ?`, id)
	if err != nil {
		return fmt.Errorf("query fonts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			slot int
			f    settings.Font
		)

		if err = rows.Scan(&slot, &f.FileName, &f.Size); err != nil {
			return fmt.Errorf("scan font: %w", err)
		}

		if size := settings.FontSize(slot); size.Valid() {
			snap.Fonts[size] = f
		}
	}

	return rows.Err()
}

func (r *SQLiteRepository) loadAlarms(ctx context.Context, id string, snap *parser.Snapshot) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT trigger_time, days FROM alarms WHERE snapshot_id = ? ORDER BY position`, id)
	if err != nil {
		return fmt.Errorf("query alarms: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			a    alarm.Alarm
			mask int
		)

		if err = rows.Scan(&a.TriggerTime, &mask); err != nil {
			return fmt.Errorf("scan alarm: %w", err)
		}

		a.Days = decodeDays(mask)
		snap.Alarms = append(snap.Alarms, a)
	}

	return rows.Err()
}

// encodeDays packs a weekday set into a bit mask, Sunday in bit 0.
func encodeDays(days alarm.Days) int {
	mask := 0

	for i, on := range days {
		if on {
			mask |= 1 << i
		}
	}

	return mask
}

func decodeDays(mask int) alarm.Days {
	var days alarm.Days

	for i := range days {
		days[i] = mask&(1<<i) != 0
	}

	return days
}
