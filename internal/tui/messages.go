package tui

import (
	"github.com/lumapix/lumapix-client/models"
)

type authDoneMsg struct {
	user models.User
	err  error
}

type galleriesLoadedMsg struct {
	galleries []models.Gallery
	offline   bool
	err       error
}

type photosLoadedMsg struct {
	gallery models.Gallery
	photos  []models.Photo
	offline bool
	err     error
}

type gallerySavedMsg struct {
	gallery models.Gallery
	err     error
}

type galleryDeletedMsg struct {
	err error
}

type publishedMsg struct {
	link models.ShareLink
	err  error
}

type photoDownloadedMsg struct {
	entry models.DownloadEntry
	err   error
}

type batchDownloadedMsg struct {
	result models.BatchResult
	err    error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
