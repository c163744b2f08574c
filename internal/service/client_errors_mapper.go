package service

import (
	"errors"

	"github.com/lumapix/lumapix-client/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error with a message fit for the UI. Errors without a business
// meaning pass through unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrAuthFailed):
		return ErrSessionExpired
	case errors.Is(err, adapter.ErrNetworkUnavailable), errors.Is(err, adapter.ErrRequestTimeout):
		return ErrOffline
	case errors.Is(err, adapter.ErrConflict):
		return ErrEmailTaken
	case errors.Is(err, adapter.ErrNotFound):
		return ErrGalleryNotFound
	case errors.Is(err, adapter.ErrForbidden):
		return ErrWrongAccessCode
	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrWrongCredentials
	default:
		return err
	}
}

// isOffline reports whether err indicates the backend could not be reached at
// all, which is when the gallery service serves the local cache instead.
func isOffline(err error) bool {
	return errors.Is(err, adapter.ErrNetworkUnavailable) || errors.Is(err, adapter.ErrRequestTimeout)
}
