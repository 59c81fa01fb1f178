package datastore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// HistoryDB wraps the SQL database connection recording one row per monitor run.
type HistoryDB struct {
	db     *sql.DB
	logger zerolog.Logger
}

// CheckHistoryEntry represents a record in the check_history table.
type CheckHistoryEntry struct {
	ID             int64
	Monitor        string
	CheckStartTime time.Time
	CheckEndTime   sql.NullTime
	Status         string
	Added          int
	Removed        int
	Modified       int
	Notified       bool
	ErrorSummary   sql.NullString
}

// Run statuses stored in check_history.
const (
	StatusStarted   = "STARTED"
	StatusCompleted = "COMPLETED"
	StatusNoChanges = "NO_CHANGES"
	StatusFailed    = "FAILED"
)

// NewHistoryDB initializes a new HistoryDB connection and ensures the schema is set up.
func NewHistoryDB(dataSourceName string, logger zerolog.Logger) (*HistoryDB, error) {
	logger = logger.With().Str("component", "HistoryDB").Logger()
	logger.Info().Str("db_path", dataSourceName).Msg("Initializing run history database")

	dbDir := filepath.Dir(dataSourceName)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history database directory %s: %w", dbDir, err)
	}

	dbInstance, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("sql.Open failed for %s: %w", dataSourceName, err)
	}

	db := &HistoryDB{
		db:     dbInstance,
		logger: logger,
	}

	if err := db.InitSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (d *HistoryDB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// InitSchema creates the check_history table if it doesn't already exist.
func (d *HistoryDB) InitSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS check_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		monitor TEXT NOT NULL,
		check_start_time DATETIME NOT NULL,
		check_end_time DATETIME,
		status TEXT NOT NULL,
		added INTEGER DEFAULT 0,
		removed INTEGER DEFAULT 0,
		modified INTEGER DEFAULT 0,
		notified INTEGER DEFAULT 0,
		error_summary TEXT
	);
	`
	if _, err := d.db.Exec(query); err != nil {
		d.logger.Error().Err(err).Msg("Failed to initialize check_history schema")
		return err
	}
	return nil
}

// RecordCheckStart inserts a new record with status STARTED and returns its row ID.
func (d *HistoryDB) RecordCheckStart(monitor string, startTime time.Time) (int64, error) {
	query := `INSERT INTO check_history (monitor, check_start_time, status) VALUES (?, ?, ?)`
	result, err := d.db.Exec(query, monitor, startTime, StatusStarted)
	if err != nil {
		return 0, fmt.Errorf("failed to insert check start record: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID: %w", err)
	}
	d.logger.Debug().Int64("db_id", id).Str("monitor", monitor).Msg("Recorded check start")
	return id, nil
}

// UpdateCheckCompletion updates an existing check_history record with completion details.
func (d *HistoryDB) UpdateCheckCompletion(dbCheckID int64, endTime time.Time, status string, added, removed, modified int, notified bool, errorSummary string) error {
	query := `UPDATE check_history SET check_end_time = ?, status = ?, added = ?, removed = ?, modified = ?, notified = ?, error_summary = ? WHERE id = ?`
	_, err := d.db.Exec(query, endTime, status, added, removed, modified, notified,
		sql.NullString{String: errorSummary, Valid: errorSummary != ""}, dbCheckID)
	if err != nil {
		return fmt.Errorf("failed to update check completion for ID %d: %w", dbCheckID, err)
	}
	d.logger.Debug().Int64("db_id", dbCheckID).Str("status", status).Msg("Updated check completion")
	return nil
}

// GetLastCheckTime retrieves the start time of the most recent completed check
// for the given monitor. Returns sql.ErrNoRows when no completed check exists.
func (d *HistoryDB) GetLastCheckTime(monitor string) (*time.Time, error) {
	query := `SELECT check_start_time FROM check_history WHERE monitor = ? AND status IN (?, ?) ORDER BY check_start_time DESC LIMIT 1`
	var checkStartTime time.Time
	err := d.db.QueryRow(query, monitor, StatusCompleted, StatusNoChanges).Scan(&checkStartTime)
	if err != nil {
		if err == sql.ErrNoRows {
			d.logger.Debug().Str("monitor", monitor).Msg("No completed check found in history")
			return nil, err
		}
		return nil, fmt.Errorf("failed to query last check time: %w", err)
	}
	return &checkStartTime, nil
}
