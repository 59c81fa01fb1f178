package datastore

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *HistoryDB {
	t.Helper()
	db, err := NewHistoryDB(filepath.Join(t.TempDir(), "data", "history.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestHistoryDB_RecordAndComplete(t *testing.T) {
	db := newTestDB(t)

	start := time.Now().UTC().Truncate(time.Second)
	id, err := db.RecordCheckStart("furnidata", start)
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	err = db.UpdateCheckCompletion(id, start.Add(2*time.Second), StatusCompleted, 3, 1, 2, true, "")
	require.NoError(t, err)

	last, err := db.GetLastCheckTime("furnidata")
	require.NoError(t, err)
	assert.WithinDuration(t, start, *last, time.Second)
}

func TestHistoryDB_GetLastCheckTime_NoRows(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetLastCheckTime("variables")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestHistoryDB_FailedRunsExcludedFromLastCheck(t *testing.T) {
	db := newTestDB(t)

	start := time.Now().UTC()
	id, err := db.RecordCheckStart("flashtexts", start)
	require.NoError(t, err)
	require.NoError(t, db.UpdateCheckCompletion(id, start.Add(time.Second), StatusFailed, 0, 0, 0, false, "fetch failed"))

	_, err = db.GetLastCheckTime("flashtexts")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
