package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumapix/lumapix-client/internal/logger"
	"github.com/lumapix/lumapix-client/models"
)

func newSQLiteDB(t *testing.T) *DB {
	t.Helper()

	conn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{DB: conn, logger: logger.Nop()}
	require.NoError(t, db.Migrate())
	return db
}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{DB: conn, logger: logger.Nop()}, mock
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func testGalleries() []models.Gallery {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return []models.Gallery{
		{GalleryID: 1, Title: "Older", CreatedAt: base, UpdatedAt: base},
		{GalleryID: 2, Title: "Newer", Slug: "newer", Published: true, PhotoCount: 3,
			CreatedAt: base.Add(time.Hour), UpdatedAt: base.Add(time.Hour)},
	}
}

// ── Gallery cache ─────────────────────────────────────────────────────────────

func TestGalleryCache_ReplaceAndGet(t *testing.T) {
	repo := NewGalleryCacheRepository(newSQLiteDB(t), logger.Nop())
	ctx := testContext()

	require.NoError(t, repo.ReplaceGalleries(ctx, testGalleries()))

	got, err := repo.GetGalleries(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Newest first.
	assert.Equal(t, "Newer", got[0].Title)
	assert.True(t, got[0].Published)
	assert.Equal(t, 3, got[0].PhotoCount)
	assert.Equal(t, "Older", got[1].Title)
}

func TestGalleryCache_ReplaceOverwrites(t *testing.T) {
	repo := NewGalleryCacheRepository(newSQLiteDB(t), logger.Nop())
	ctx := testContext()

	require.NoError(t, repo.ReplaceGalleries(ctx, testGalleries()))
	require.NoError(t, repo.ReplaceGalleries(ctx, testGalleries()[:1]))

	got, err := repo.GetGalleries(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Older", got[0].Title)
}

func TestGalleryCache_DeleteGallery(t *testing.T) {
	repo := NewGalleryCacheRepository(newSQLiteDB(t), logger.Nop())
	ctx := testContext()

	require.NoError(t, repo.ReplaceGalleries(ctx, testGalleries()))
	require.NoError(t, repo.DeleteGallery(ctx, 2))

	got, err := repo.GetGalleries(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].GalleryID)
}

func TestGalleryCache_PhotosRoundTrip(t *testing.T) {
	repo := NewGalleryCacheRepository(newSQLiteDB(t), logger.Nop())
	ctx := testContext()

	require.NoError(t, repo.ReplaceGalleries(ctx, testGalleries()))

	photos := []models.Photo{
		{PhotoID: 11, FileName: "b.jpg", Position: 1, CreatedAt: time.Now().UTC()},
		{PhotoID: 10, FileName: "a.jpg", Position: 0, CreatedAt: time.Now().UTC()},
	}
	require.NoError(t, repo.ReplacePhotos(ctx, 1, photos))

	got, err := repo.GetPhotos(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Display order.
	assert.Equal(t, "a.jpg", got[0].FileName)
	assert.Equal(t, "b.jpg", got[1].FileName)
	assert.Equal(t, int64(1), got[0].GalleryID)
}

func TestGalleryCache_GetPhotosNotCached(t *testing.T) {
	repo := NewGalleryCacheRepository(newSQLiteDB(t), logger.Nop())

	_, err := repo.GetPhotos(testContext(), 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGalleryNotInCache)
}

func TestGalleryCache_CachedGalleryWithoutPhotos(t *testing.T) {
	repo := NewGalleryCacheRepository(newSQLiteDB(t), logger.Nop())
	ctx := testContext()

	require.NoError(t, repo.ReplaceGalleries(ctx, testGalleries()))

	got, err := repo.GetPhotos(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGalleryCache_ReplaceGalleriesBeginError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin().WillReturnError(assert.AnError)

	repo := NewGalleryCacheRepository(db, logger.Nop())
	err := repo.ReplaceGalleries(testContext(), testGalleries())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── Download ledger ───────────────────────────────────────────────────────────

func TestDownloads_RecordAndList(t *testing.T) {
	repo := NewDownloadRepository(newSQLiteDB(t), logger.Nop())
	ctx := testContext()

	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	older := models.DownloadEntry{
		EntryID: "entry-1", GalleryID: 5, PhotoID: 50, FileName: "a.jpg",
		Path: "/dl/a.jpg", SizeBytes: 100, DownloadedAt: base,
	}
	newer := models.DownloadEntry{
		EntryID: "entry-2", GalleryID: 5, PhotoID: 51, FileName: "b.jpg",
		Path: "/dl/b.jpg", SizeBytes: 200, DownloadedAt: base.Add(time.Minute),
	}

	require.NoError(t, repo.RecordDownload(ctx, older))
	require.NoError(t, repo.RecordDownload(ctx, newer))

	got, err := repo.ListDownloads(ctx, 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "entry-2", got[0].EntryID)
	assert.Equal(t, "/dl/a.jpg", got[1].Path)
}

func TestDownloads_ListScopedToGallery(t *testing.T) {
	repo := NewDownloadRepository(newSQLiteDB(t), logger.Nop())
	ctx := testContext()

	require.NoError(t, repo.RecordDownload(ctx, models.DownloadEntry{
		EntryID: "entry-1", GalleryID: 5, PhotoID: 50, FileName: "a.jpg",
		Path: "/dl/a.jpg", DownloadedAt: time.Now().UTC(),
	}))

	got, err := repo.ListDownloads(ctx, 6)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDownloads_RecordExecError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO downloads").WillReturnError(assert.AnError)

	repo := NewDownloadRepository(db, logger.Nop())
	err := repo.RecordDownload(testContext(), models.DownloadEntry{EntryID: "entry-1"})

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
