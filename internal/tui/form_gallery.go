package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type galleryFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	editing    bool
	galleryID  int64
}

func newGalleryFormModel() galleryFormModel {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 120
	title.Width = 40

	description := textinput.New()
	description.Placeholder = "description (optional)"
	description.CharLimit = 500
	description.Width = 40

	return galleryFormModel{inputs: []textinput.Model{title, description}}
}

func (m galleryFormModel) reset(editing bool, galleryID int64, title, description string) galleryFormModel {
	m.editing = editing
	m.galleryID = galleryID
	m.submitting = false
	m.focus = 0
	m.inputs[0].SetValue(title)
	m.inputs[1].SetValue(description)
	m.inputs[1].Blur()
	m.inputs[0].Focus()
	return m
}

func (m galleryFormModel) View() string {
	heading := "New gallery"
	if m.editing {
		heading = "Edit gallery"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n\n")
	b.WriteString("Title:       [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Description: [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\nSaving...\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter save  tab next field  esc cancel"))
	return b.String()
}

func focusNextForm(m galleryFormModel) galleryFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevForm(m galleryFormModel) galleryFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
