package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biolink/internal/model"
)

func newTestCSVStore(t *testing.T) (*CSVStore, string) {
	path := filepath.Join(t.TempDir(), "tracking_data.csv")
	return NewCSVStore(path), path
}

func TestCSVStore_Init(t *testing.T) {
	store, path := newTestCSVStore(t)
	ctx := context.Background()

	require.NoError(t, store.Init(ctx))
	require.NoError(t, store.Init(ctx))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(model.FieldNames, ",")+"\n", string(data))

	t.Run("existing file keeps its rows", func(t *testing.T) {
		require.NoError(t, store.Append(ctx, newTestVisit(1)))

		reopened := NewCSVStore(path)
		require.NoError(t, reopened.Init(ctx))

		visits, err := reopened.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, visits, 1)
	})
}

func TestCSVStore_RoundTrip(t *testing.T) {
	store, _ := newTestCSVStore(t)
	ctx := context.Background()

	visit := &model.Visit{
		Timestamp: "2024-03-05 17:45:09",
		IPAddress: "203.0.113.9",
		Country:   "Korea, Republic of",
		City:      "Seoul",
		Browser:   `Mozilla/5.0 "quoted" agent, with commas`,
		Device:    model.DeviceTablet,
		Referrer:  "https://example.com/?q=a,b",
	}
	require.NoError(t, store.Append(ctx, visit))
	require.NoError(t, store.Append(ctx, newTestVisit(2)))

	visits, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, visits, 2)
	assert.Equal(t, visit.Fields(), visits[0].Fields())
	assert.Equal(t, newTestVisit(2).Fields(), visits[1].Fields())
}

func TestCSVStore_ConcurrentAppend(t *testing.T) {
	store, _ := newTestCSVStore(t)
	ctx := context.Background()

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, store.Append(ctx, newTestVisit(i)))
		}(i)
	}
	wg.Wait()

	visits, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, visits, n)
}

func TestCSVStore_SkipsMalformedRows(t *testing.T) {
	store, path := newTestCSVStore(t)
	ctx := context.Background()

	content := strings.Join(model.FieldNames, ",") + "\n" +
		"2024-01-01 10:00:00,8.8.8.8,United States,Mountain View,curl/8.0,Desktop,Direct\n" +
		"only,three,fields\n" +
		"2024-01-01 10:01:00,1.1.1.1,Australia,Sydney,curl/8.0,Mobile,Direct\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	visits, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, visits, 2)
	assert.Equal(t, "8.8.8.8", visits[0].IPAddress)
	assert.Equal(t, "1.1.1.1", visits[1].IPAddress)
}

func TestCSVStore_TornFinalRow(t *testing.T) {
	store, path := newTestCSVStore(t)
	ctx := context.Background()

	content := strings.Join(model.FieldNames, ",") + "\n" +
		"2024-01-01 10:00:00,8.8.8.8,United States,Mountain View,curl/8.0,Desktop,Direct\n" +
		"2024-01-01 10:01:00,1.1.1.1,Aus"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	require.NoError(t, store.Append(ctx, newTestVisit(3)))

	visits, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, visits, 2, "torn row is skipped, new row stays intact")
	assert.Equal(t, newTestVisit(3).Fields(), visits[1].Fields())
}

func TestCSVStore_Unavailable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	store := NewCSVStore(filepath.Join(blocker, "tracking_data.csv"))
	ctx := context.Background()

	assert.ErrorIs(t, store.Init(ctx), ErrStoreUnavailable)
	assert.ErrorIs(t, store.Append(ctx, newTestVisit(1)), ErrAppendFailed)

	_, err := store.ListAll(ctx)
	assert.ErrorIs(t, err, ErrListFailed)
	assert.NoError(t, store.Close())
}
