// Package adapter provides transport-layer abstractions for communicating with
// the Lumapix backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) that owns bearer-token handling: it attaches the
// Authorization header from the injected [session.Store], and on an expired
// access token transparently refreshes the session and retries the request
// exactly once. Concurrent requests that expire simultaneously share a single
// refresh call.
//
// Error values defined in errors.go are mapped from HTTP status codes and
// transport failures so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrNotFound] for 404,
// [ErrAuthFailed] for an unrecoverable 401, [ErrNetworkUnavailable] when no
// response was received at all).
package adapter

import (
	"context"

	"github.com/lumapix/lumapix-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the Lumapix
// backend. Implementations are responsible for serialisation, authentication
// header management, token refresh, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// Register creates a new account with the provided credentials and
	// profile name. Returns the issued session and user record. The caller is
	// responsible for installing the session into the store.
	Register(ctx context.Context, req models.RegisterRequest) (models.SessionResponse, error)

	// Login authenticates with email and password. Returns the issued session
	// and user record. The caller is responsible for installing the session
	// into the store.
	Login(ctx context.Context, creds models.Credentials) (models.SessionResponse, error)

	// Logout revokes the refresh token on the backend. Best-effort: the local
	// session teardown must not depend on this call succeeding.
	Logout(ctx context.Context) error

	// RefreshSession exchanges the stored refresh token for a new token pair
	// and writes it to the session store. Concurrent calls are coalesced into
	// a single backend request. Used by the proactive token refresh job; the
	// adapter also invokes it internally on an expired access token.
	RefreshSession(ctx context.Context) (models.Session, error)

	// GetGalleries lists all galleries owned by the authenticated user.
	GetGalleries(ctx context.Context) ([]models.Gallery, error)

	// GetGallery fetches a single gallery by ID.
	GetGallery(ctx context.Context, galleryID int64) (models.Gallery, error)

	// CreateGallery creates a new gallery and returns the stored record.
	CreateGallery(ctx context.Context, req models.CreateGalleryRequest) (models.Gallery, error)

	// UpdateGallery replaces the mutable fields of a gallery and returns the
	// updated record.
	UpdateGallery(ctx context.Context, galleryID int64, req models.UpdateGalleryRequest) (models.Gallery, error)

	// DeleteGallery removes a gallery and its photos on the backend.
	DeleteGallery(ctx context.Context, galleryID int64) error

	// PublishGallery makes a gallery publicly reachable and returns its share
	// link (slug, share URL, and access code if the gallery is protected).
	PublishGallery(ctx context.Context, galleryID int64) (models.ShareLink, error)

	// GetPhotos lists the photos of a gallery in display order.
	GetPhotos(ctx context.Context, galleryID int64) ([]models.Photo, error)

	// DownloadPhoto fetches the original file bytes of a photo.
	DownloadPhoto(ctx context.Context, photoID int64) ([]byte, error)

	// GetPublicGallery fetches a published gallery by its share slug without
	// authentication. accessCode may be empty for unprotected galleries.
	GetPublicGallery(ctx context.Context, slug, accessCode string) (models.PublicGallery, error)
}
