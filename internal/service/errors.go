package service

import "errors"

// Business errors surfaced to the UI with human-readable messages.
var (
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrEmailTaken       = errors.New("an account with this email already exists")
	ErrSessionExpired   = errors.New("session expired, please sign in again")
	ErrOffline          = errors.New("server unreachable")
	ErrGalleryNotFound  = errors.New("gallery not found")
	ErrWrongAccessCode  = errors.New("wrong access code")
)
