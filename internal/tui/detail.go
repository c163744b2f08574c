package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/lumapix/lumapix-client/models"
)

type detailModel struct {
	gallery models.Gallery
	photos  []models.Photo
	idx     int
	loading bool
	offline bool
	busy    bool
	spinner spinner.Model
	status  string

	// shareURL is the full public address returned by the last publish; for
	// galleries published in an earlier run only the slug path is known.
	shareURL string
}

func (m detailModel) shareTarget() (string, bool) {
	if m.shareURL != "" {
		return m.shareURL, true
	}
	if m.gallery.Published && m.gallery.Slug != "" {
		return "/g/" + m.gallery.Slug, true
	}
	return "", false
}

func newDetailModel() detailModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return detailModel{spinner: s}
}

func (m detailModel) current() (models.Photo, bool) {
	if len(m.photos) == 0 || m.idx < 0 || m.idx >= len(m.photos) {
		return models.Photo{}, false
	}
	return m.photos[m.idx], true
}

func humanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

func (m detailModel) View() string {
	header := titleStyle.Render(m.gallery.Title)
	if m.offline {
		header += "  " + offlineStyle.Render(" OFFLINE ")
	}
	if m.busy {
		header += "  " + m.spinner.View()
	}
	out := header + "\n"

	if m.gallery.Description != "" {
		out += m.gallery.Description + "\n"
	}
	if m.gallery.Published {
		out += fmt.Sprintf("Published at /g/%s\n", m.gallery.Slug)
	}
	out += "\n"

	if m.loading {
		out += "Loading photos...\n"
	} else if len(m.photos) == 0 {
		out += "Gallery is empty\n"
	} else {
		for i, p := range m.photos {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s  %s\n", cursor, p.FileName, humanSize(p.SizeBytes))
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("enter view  o save photo  b save all  p publish  c copy link  esc back  q quit")
	return out
}
