package models

import "time"

// DownloadEntry is one row of the local download ledger: a photo that was
// saved to disk, when, and where.
type DownloadEntry struct {
	EntryID      string    `json:"entry_id"`
	GalleryID    int64     `json:"gallery_id"`
	PhotoID      int64     `json:"photo_id"`
	FileName     string    `json:"file_name"`
	Path         string    `json:"path"`
	SizeBytes    int64     `json:"size_bytes"`
	DownloadedAt time.Time `json:"downloaded_at"`
}

// BatchProgress reports the state of a running batch download after each
// finished photo.
type BatchProgress struct {
	GalleryID int64
	Done      int
	Failed    int
	Total     int
}

// BatchResult summarises a finished batch download. Failed holds one error
// per photo that could not be downloaded; the batch as a whole still counts
// as finished.
type BatchResult struct {
	GalleryID int64
	Completed int
	Failed    []error
	Dir       string
}
