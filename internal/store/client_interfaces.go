// Package store is the local persistence layer of the client: an SQLite cache
// of the user's galleries for offline browsing, plus a ledger of photos saved
// to disk.
package store

import (
	"context"

	"github.com/lumapix/lumapix-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// GalleryCacheRepository mirrors the backend's gallery listing locally so the
// client can browse while offline. The cache is replace-on-fetch: every
// successful backend read overwrites the cached copy wholesale.
type GalleryCacheRepository interface {
	// ReplaceGalleries overwrites the cached gallery listing.
	ReplaceGalleries(ctx context.Context, galleries []models.Gallery) error

	// GetGalleries returns the cached gallery listing, newest first.
	GetGalleries(ctx context.Context) ([]models.Gallery, error)

	// DeleteGallery drops a single gallery (and its photos, via cascade) from
	// the cache.
	DeleteGallery(ctx context.Context, galleryID int64) error

	// ReplacePhotos overwrites the cached photo listing of one gallery.
	ReplacePhotos(ctx context.Context, galleryID int64, photos []models.Photo) error

	// GetPhotos returns the cached photos of a gallery in display order.
	// Returns [ErrGalleryNotInCache] if the gallery has never been cached.
	GetPhotos(ctx context.Context, galleryID int64) ([]models.Photo, error)
}

// DownloadRepository is the ledger of photos saved to the local disk.
type DownloadRepository interface {
	// RecordDownload appends one entry to the ledger.
	RecordDownload(ctx context.Context, entry models.DownloadEntry) error

	// ListDownloads returns the ledger entries for one gallery, newest first.
	ListDownloads(ctx context.Context, galleryID int64) ([]models.DownloadEntry, error)
}
