package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := OpenHistory(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func TestHistory_RecordAssignsID(t *testing.T) {
	h := openTestHistory(t)

	rec := RunRecord{
		FilePath:  "/tmp/a.py",
		ExitCode:  0,
		Duration:  120 * time.Millisecond,
		StartedAt: time.Now(),
	}
	require.NoError(t, h.Record(&rec))
	assert.NotEmpty(t, rec.ID)
}

func TestHistory_RecentNewestFirst(t *testing.T) {
	h := openTestHistory(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		rec := RunRecord{
			FilePath:    "/tmp/a.py",
			ExitCode:    i,
			Duration:    time.Second,
			OutputBytes: int64(i * 10),
			StartedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, h.Record(&rec))
	}

	records, err := h.Recent(10)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, 2, records[0].ExitCode)
	assert.Equal(t, 0, records[2].ExitCode)
	assert.Equal(t, time.Second, records[0].Duration)
}

func TestHistory_RecentHonorsLimit(t *testing.T) {
	h := openTestHistory(t)

	for i := 0; i < 5; i++ {
		rec := RunRecord{FilePath: "/tmp/a.py", StartedAt: time.Now().Add(time.Duration(i) * time.Second)}
		require.NoError(t, h.Record(&rec))
	}

	records, err := h.Recent(2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestHistory_EmptyDatabase(t *testing.T) {
	h := openTestHistory(t)

	records, err := h.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
