package tui

import (
	"fmt"

	"github.com/lumapix/lumapix-client/models"
)

type viewerModel struct {
	gallery models.Gallery
	photos  []models.Photo
	idx     int
	status  string
}

// nextPhotoIndex and prevPhotoIndex wrap around: stepping right from the last
// photo lands on the first one and vice versa.
func nextPhotoIndex(idx, total int) int {
	if total <= 0 {
		return 0
	}
	return (idx + 1) % total
}

func prevPhotoIndex(idx, total int) int {
	if total <= 0 {
		return 0
	}
	return (idx - 1 + total) % total
}

func (m viewerModel) current() (models.Photo, bool) {
	if len(m.photos) == 0 || m.idx < 0 || m.idx >= len(m.photos) {
		return models.Photo{}, false
	}
	return m.photos[m.idx], true
}

func (m viewerModel) View() string {
	photo, ok := m.current()
	if !ok {
		return "No photo selected\n\n" + helpStyle.Render("esc back")
	}

	out := titleStyle.Render(fmt.Sprintf("%s · %d/%d", m.gallery.Title, m.idx+1, len(m.photos)))
	out += "\n\n"
	out += fmt.Sprintf("File:  %s\n", photo.FileName)
	out += fmt.Sprintf("Type:  %s\n", photo.ContentType)
	out += fmt.Sprintf("Size:  %s\n", humanSize(photo.SizeBytes))

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("←/→ prev/next  o save photo  esc back  q quit")
	return out
}
