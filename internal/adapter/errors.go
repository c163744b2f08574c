package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrAuthFailed marks a terminal authentication failure: a 401 that could
	// not be recovered by a token refresh. The session has already been torn
	// down by the time this error is returned.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrNetworkUnavailable marks a request that produced no response at all.
	ErrNetworkUnavailable = errors.New("network unavailable")

	// ErrRequestTimeout marks a request cancelled by the client-side deadline.
	ErrRequestTimeout = errors.New("request timeout")
)
