package models

import "time"

// Gallery is a photo collection owned by the authenticated user. Published
// galleries additionally carry a public slug under which the gallery is
// reachable without authentication.
type Gallery struct {
	GalleryID    int64     `json:"gallery_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Slug         string    `json:"slug"`
	Published    bool      `json:"published"`
	PhotoCount   int       `json:"photo_count"`
	CoverPhotoID int64     `json:"cover_photo_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Photo is a single image inside a gallery. Position is the display order
// within the gallery and drives the viewer's navigation.
type Photo struct {
	PhotoID     int64     `json:"photo_id"`
	GalleryID   int64     `json:"gallery_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
}

// ShareLink is the public address of a published gallery. AccessCode is empty
// for galleries published without a code.
type ShareLink struct {
	Slug       string `json:"slug"`
	ShareURL   string `json:"share_url"`
	AccessCode string `json:"access_code"`
}

// PublicGallery is the unauthenticated viewer payload: the gallery metadata
// together with its full photo listing.
type PublicGallery struct {
	Gallery Gallery `json:"gallery"`
	Photos  []Photo `json:"photos"`
}
