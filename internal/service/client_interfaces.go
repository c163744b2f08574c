// Package service is the application layer of the client: it composes the
// transport adapter, the session store, and the local cache into the
// operations the terminal UI calls.
package service

import (
	"context"
	"time"

	"github.com/lumapix/lumapix-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for account registration
// and session lifecycle.
type ClientAuthService interface {
	// Register creates a new account on the backend and installs the issued
	// session into the session store. Returns the created user record.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates with the backend and installs the issued session
	// into the session store. Returns the authenticated user record.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// Logout revokes the refresh token on the backend (best-effort) and
	// clears the local session. The local teardown happens even when the
	// backend call fails.
	Logout(ctx context.Context) error

	// Restore reports whether a persisted session was recovered at startup,
	// letting the UI skip the sign-in screen.
	Restore() bool
}

// ClientGalleryService defines the client-side contract for browsing and
// managing galleries. Read operations fall back to the local cache when the
// backend is unreachable; the offline return value tells the UI the data may
// be stale.
type ClientGalleryService interface {
	// Galleries lists the user's galleries, preferring the backend and
	// falling back to the cache when offline.
	Galleries(ctx context.Context) (galleries []models.Gallery, offline bool, err error)

	// Photos lists the photos of a gallery in display order, preferring the
	// backend and falling back to the cache when offline.
	Photos(ctx context.Context, galleryID int64) (photos []models.Photo, offline bool, err error)

	// Create creates a gallery on the backend.
	Create(ctx context.Context, req models.CreateGalleryRequest) (models.Gallery, error)

	// Update replaces a gallery's title and description on the backend.
	Update(ctx context.Context, galleryID int64, req models.UpdateGalleryRequest) (models.Gallery, error)

	// Delete removes a gallery on the backend and evicts it from the cache.
	Delete(ctx context.Context, galleryID int64) error

	// Publish makes a gallery publicly reachable and returns its share link.
	Publish(ctx context.Context, galleryID int64) (models.ShareLink, error)

	// Public fetches a published gallery by slug without authentication.
	Public(ctx context.Context, slug, accessCode string) (models.PublicGallery, error)
}

// ClientDownloadService defines the client-side contract for saving photos to
// the local disk and consulting the download ledger.
type ClientDownloadService interface {
	// DownloadPhoto fetches one photo's original file, writes it under the
	// downloads directory, and records it in the ledger.
	DownloadPhoto(ctx context.Context, photo models.Photo) (models.DownloadEntry, error)

	// DownloadGallery fetches all given photos of a gallery concurrently.
	// progress (may be nil) is invoked after every finished photo. A photo
	// that fails does not abort the batch; failures are collected in the
	// returned [models.BatchResult].
	DownloadGallery(ctx context.Context, gallery models.Gallery, photos []models.Photo, progress func(models.BatchProgress)) (models.BatchResult, error)

	// Downloads returns the ledger entries for one gallery, newest first.
	Downloads(ctx context.Context, galleryID int64) ([]models.DownloadEntry, error)
}

// ClientTokenJob keeps the access token fresh in the background so that
// interactive requests rarely hit a 401 at all.
type ClientTokenJob interface {
	// Start launches the background refresh loop. Every interval it checks
	// the access token's remaining lifetime and refreshes the session when
	// less than leeway remains. A previously running job is stopped first.
	Start(ctx context.Context, interval, leeway time.Duration)

	// Stop cancels the background loop and blocks until it has exited. Safe
	// to call when the job is not running.
	Stop()
}
