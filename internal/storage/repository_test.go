package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/municipress/flipbook/internal/config"
)

func testRepo(t *testing.T) *ConversionRepository {
	t.Helper()

	ctx := context.Background()
	db, err := Open(ctx, config.DatabaseConfig{
		Driver: "sqlite",
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "test.db")},
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, InitSchema(ctx, db))
	return NewConversionRepository(db)
}

func record(account, title string, pages int, status ConversionStatus, at time.Time) *ConversionRecord {
	return &ConversionRecord{
		Account:   account,
		Title:     title,
		PageCount: pages,
		Status:    status,
		CreatedAt: at,
	}
}

func TestRecordAssignsIDAndTimestamp(t *testing.T) {
	repo := testRepo(t)

	rec := &ConversionRecord{Account: "obec", Title: "Zpravodaj", PageCount: 12, Status: StatusSuccess}
	id, err := repo.Record(context.Background(), rec)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, rec.ID, id)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestListByAccountNewestFirst(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		_, err := repo.Record(ctx, record("obec", "Zpravodaj", 10+i, StatusSuccess, base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, err)
	}
	_, err := repo.Record(ctx, record("jiny", "Cizi", 5, StatusSuccess, base))
	require.NoError(t, err)

	records, err := repo.ListByAccount(ctx, "obec", 10)
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, 12, records[0].PageCount, "newest record first")
	assert.Equal(t, 10, records[2].PageCount)
	for _, r := range records {
		assert.Equal(t, "obec", r.Account)
	}
}

func TestListByAccountNoFilter(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := repo.Record(ctx, record("a", "T1", 1, StatusSuccess, now))
	require.NoError(t, err)
	_, err = repo.Record(ctx, record("b", "T2", 2, StatusError, now.Add(time.Minute)))
	require.NoError(t, err)

	records, err := repo.ListByAccount(ctx, "", 10)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestListByAccountLimit(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()

	for i := 0; i < 5; i++ {
		_, err := repo.Record(ctx, record("obec", "T", 1, StatusSuccess, now.Add(time.Duration(i)*time.Second)))
		require.NoError(t, err)
	}

	records, err := repo.ListByAccount(ctx, "obec", 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestStats(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := repo.Record(ctx, record("obec", "T1", 10, StatusSuccess, now))
	require.NoError(t, err)
	_, err = repo.Record(ctx, record("obec", "T2", 20, StatusSuccess, now))
	require.NoError(t, err)
	_, err = repo.Record(ctx, record("obec", "T3", 0, StatusError, now))
	require.NoError(t, err)
	_, err = repo.Record(ctx, record("jiny", "T4", 7, StatusSuccess, now))
	require.NoError(t, err)

	stats, err := repo.Stats(ctx, "obec")
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.Success)
	assert.Equal(t, int64(1), stats.Errors)
	assert.Equal(t, int64(30), stats.TotalPages)

	all, err := repo.Stats(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(4), all.Total)
	assert.Equal(t, int64(37), all.TotalPages)
}

func TestStatsEmptyTable(t *testing.T) {
	repo := testRepo(t)

	stats, err := repo.Stats(context.Background(), "")
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.TotalPages)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.DatabaseConfig{Driver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestInitSchemaIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, config.DatabaseConfig{
		Driver: "sqlite",
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "test.db")},
	})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, InitSchema(ctx, db))
	require.NoError(t, InitSchema(ctx, db))
}
