package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/lumapix/lumapix-client/models"
)

type galleriesModel struct {
	items   []models.Gallery
	idx     int
	loading bool
	offline bool
	busy    bool
	spinner spinner.Model
	status  string
	lastErr error
}

func newGalleriesModel() galleriesModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return galleriesModel{spinner: s, loading: true}
}

func (m galleriesModel) current() (models.Gallery, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Gallery{}, false
	}
	return m.items[m.idx], true
}

func galleryBadge(g models.Gallery) string {
	if g.Published {
		return "[pub]"
	}
	return "[---]"
}

func (m galleriesModel) View() string {
	header := titleStyle.Render("Lumapix · Galleries")
	if m.offline {
		header += "  " + offlineStyle.Render(" OFFLINE ")
	}
	if m.busy {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	if m.loading {
		out += "Loading...\n"
	} else if len(m.items) == 0 {
		out += "No galleries yet. Press n to create one.\n"
	} else {
		for i, g := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s %s (%d photos)\n", cursor, galleryBadge(g), g.Title, g.PhotoCount)
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}
	if m.lastErr != nil {
		out += "\nError: " + m.lastErr.Error() + "\n"
	}

	out += "\n" + helpStyle.Render("enter open  n new  e edit  d delete  p publish  r reload  ctrl+l sign out  q quit")
	return out
}
