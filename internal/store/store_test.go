package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcjones/flightcircle-statistics/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	require.NotNil(t, db)

	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})
	return db
}

func testEvents(t *testing.T) []models.Event {
	t.Helper()

	start, err := time.Parse(models.TimestampLayout, "2024-01-05 10:00:00")
	require.NoError(t, err)

	return []models.Event{
		{
			Aircraft:  "N123AB",
			Location:  "KPAO",
			Start:     start,
			End:       start.Add(2 * time.Hour),
			Type:      models.EventReservation,
			TachTotal: 1.7,
			TachValid: true,
		},
		{
			Aircraft: "N456CD",
			Location: "KSQL",
			Start:    start.Add(24 * time.Hour),
			End:      start.Add(26 * time.Hour),
			Type:     models.EventMaintenance,
		},
	}
}

func TestOpen(t *testing.T) {
	db := setupTestDB(t)
	assert.NotNil(t, db)
}

func TestInsertBatchEmpty(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, db.InsertBatch(nil))
}

func TestInsertAndLoadRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	events := testEvents(t)

	require.NoError(t, db.InsertBatch(events))

	loaded, err := db.LoadEvents()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Insertion order survives the round trip; first-seen ordering of
	// aircraft and airports depends on it.
	assert.Equal(t, events, loaded)

	count, err := db.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestLoadEventsEmptyStore(t *testing.T) {
	db := setupTestDB(t)

	loaded, err := db.LoadEvents()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestReopenKeepsEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.InsertBatch(testEvents(t)))
	require.NoError(t, db.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	count, err := reopened.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
