package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/OmarJxH/tree-lister/internal/model"
)

// dbFileName is the SQLite database file name inside the data directory.
const dbFileName = "treelister.db"

// HistoryDB provides SQLite-based storage for scan history.
// It manages connection pooling and provides methods for recording and
// querying past scans.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// ScanRecord is one stored scan history row.
type ScanRecord struct {
	// ID is the database row identifier.
	ID int64

	// Target is the resolved absolute target directory.
	Target string

	// ScannedAt is when the scan was performed.
	ScannedAt time.Time

	// Format is the report format name used for the run.
	Format string

	// TotalItems, FileCount, and DirCount are the run's counters.
	TotalItems int
	FileCount  int
	DirCount   int

	// ReportPath is the full path of the written artifact.
	ReportPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent
	// read performance. This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a HistoryDB at the specified directory.
// If CreateIfNotExists is true, the directory and database file are
// created. If CreateIfNotExists is false and the database doesn't exist,
// an error is returned.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, dbFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating
	// new files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; a single connection avoids
	// write-lock contention between the save and any history query.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close() //nolint:errcheck // Best effort cleanup
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close() //nolint:errcheck // Best effort cleanup
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (hdb *HistoryDB) createTables() error {
	schema := `
	-- One row per completed scan run
	CREATE TABLE IF NOT EXISTS scans (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		target TEXT NOT NULL,
		scanned_at DATETIME NOT NULL,
		format TEXT NOT NULL,
		total_items INTEGER NOT NULL,
		file_count INTEGER NOT NULL,
		dir_count INTEGER NOT NULL,
		report_path TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_scans_target ON scans(target);
	CREATE INDEX IF NOT EXISTS idx_scans_scanned_at ON scans(scanned_at);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveScan records a completed scan and its artifact path.
// It returns the new row's ID.
func (hdb *HistoryDB) SaveScan(ctx context.Context, report *model.Report, reportPath string) (int64, error) {
	result, err := hdb.db.ExecContext(ctx, `
		INSERT INTO scans (target, scanned_at, format, total_items, file_count, dir_count, report_path)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		report.Target,
		report.GeneratedAt.UTC().Format(time.RFC3339),
		report.Format.String(),
		report.TotalItems,
		report.FileCount,
		report.DirCount,
		reportPath,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert scan record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get scan record ID: %w", err)
	}
	return id, nil
}

// ScanHistory returns all recorded scans for a target, newest first.
func (hdb *HistoryDB) ScanHistory(ctx context.Context, target string) ([]ScanRecord, error) {
	rows, err := hdb.db.QueryContext(ctx, `
		SELECT id, target, scanned_at, format, total_items, file_count, dir_count, report_path
		FROM scans
		WHERE target = ?
		ORDER BY scanned_at DESC, id DESC`,
		target,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query scan history: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only rows

	return scanRows(rows)
}

// LatestScan returns the most recent scan for a target, or nil if the
// target has never been scanned.
func (hdb *HistoryDB) LatestScan(ctx context.Context, target string) (*ScanRecord, error) {
	records, err := hdb.ScanHistory(ctx, target)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// ListTargets returns the distinct targets present in the history,
// ordered by most recently scanned.
func (hdb *HistoryDB) ListTargets(ctx context.Context) ([]string, error) {
	rows, err := hdb.db.QueryContext(ctx, `
		SELECT target
		FROM scans
		GROUP BY target
		ORDER BY MAX(scanned_at) DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query targets: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only rows

	var targets []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan target row: %w", err)
		}
		targets = append(targets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate target rows: %w", err)
	}
	return targets, nil
}

// scanRows converts SQL rows into ScanRecords.
func scanRows(rows *sql.Rows) ([]ScanRecord, error) {
	var records []ScanRecord
	for rows.Next() {
		var r ScanRecord
		var scannedAt string
		if err := rows.Scan(&r.ID, &r.Target, &scannedAt, &r.Format,
			&r.TotalItems, &r.FileCount, &r.DirCount, &r.ReportPath); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		r.ScannedAt = parseTimestamp(scannedAt)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history rows: %w", err)
	}
	return records, nil
}

// parseTimestamp parses a stored timestamp, returning the zero time on
// malformed values rather than failing the whole query.
func parseTimestamp(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t
	}
	return time.Time{}
}
