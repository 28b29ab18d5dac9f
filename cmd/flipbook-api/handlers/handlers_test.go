package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/municipress/flipbook/internal/config"
	"github.com/municipress/flipbook/internal/domain"
	"github.com/municipress/flipbook/internal/observability"
	"github.com/municipress/flipbook/internal/storage"
)

func testStorage(t *testing.T) *storage.ConversionRepository {
	t.Helper()

	ctx := context.Background()
	db, err := storage.Open(ctx, config.DatabaseConfig{
		Driver: "sqlite",
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "api.db")},
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, storage.InitSchema(ctx, db))

	return storage.NewConversionRepository(db)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(domain.InputError("no pdf", nil)))
	assert.Equal(t, http.StatusBadRequest, statusFor(domain.DecodeError("bad pdf", nil)))
	assert.Equal(t, http.StatusBadGateway, statusFor(domain.PackagingError("s3 down", nil)))
	assert.Equal(t, http.StatusInternalServerError, statusFor(domain.StorageError("db", nil)))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("plain")))
}

func TestHistoryList(t *testing.T) {
	repo := testStorage(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Record(ctx, &storage.ConversionRecord{
			Account: "obec", Title: "Zpravodaj", PageCount: 10 + i, Status: storage.StatusSuccess,
		})
		require.NoError(t, err)
	}

	h := NewHistoryHandler(observability.Nop(), repo)

	req := httptest.NewRequest(http.MethodGet, "/api/conversions?account=obec", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Conversions []storage.ConversionRecord `json:"conversions"`
		Count       int                        `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Count)
	require.Len(t, body.Conversions, 3)
	assert.Equal(t, "obec", body.Conversions[0].Account)
}

func TestHistoryListEmpty(t *testing.T) {
	h := NewHistoryHandler(observability.Nop(), testStorage(t))

	req := httptest.NewRequest(http.MethodGet, "/api/conversions", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"conversions":[]`)
}

func TestHistoryListRejectsBadLimit(t *testing.T) {
	h := NewHistoryHandler(observability.Nop(), testStorage(t))

	req := httptest.NewRequest(http.MethodGet, "/api/conversions?limit=abc", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHistoryStats(t *testing.T) {
	repo := testStorage(t)
	ctx := context.Background()

	_, err := repo.Record(ctx, &storage.ConversionRecord{Account: "obec", Title: "A", PageCount: 8, Status: storage.StatusSuccess})
	require.NoError(t, err)
	_, err = repo.Record(ctx, &storage.ConversionRecord{Account: "obec", Title: "B", Status: storage.StatusError, ErrorMessage: "bad pdf"})
	require.NoError(t, err)

	h := NewHistoryHandler(observability.Nop(), repo)

	req := httptest.NewRequest(http.MethodGet, "/api/stats?account=obec", nil)
	rec := httptest.NewRecorder()
	h.Stats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var stats storage.ConversionStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Success)
	assert.Equal(t, int64(1), stats.Errors)
	assert.Equal(t, int64(8), stats.TotalPages)
}

func TestConvertRejectsNonMultipart(t *testing.T) {
	h := NewConvertHandler(observability.Nop(), nil, nil, config.DefaultConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/convert", nil)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Convert(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "multipart/form-data")
}
