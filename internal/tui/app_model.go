package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lumapix/lumapix-client/internal/service"
	"github.com/lumapix/lumapix-client/models"
)

var ErrUserQuit = errors.New("user quit")

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenGalleries
	screenDetail
	screenViewer
	screenFormGallery
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	mode          appMode
	currentScreen screen

	welcome   welcomeModel
	login     loginModel
	register  registerModel
	galleries galleriesModel
	detail    detailModel
	viewer    viewerModel
	form      galleryFormModel

	err            error
	showError      bool
	errorOverlay   errorOverlayModel
	showConfirm    bool
	confirm        confirmModel
	pendingDelete  int64
	logout         bool
	sessionExpired bool
	resultUser     models.User
}

func newLoginAppModel(ctx context.Context, services *service.ClientServices) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		mode:          modeLogin,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		galleries:     newGalleriesModel(),
		detail:        newDetailModel(),
		form:          newGalleryFormModel(),
	}
}

func newMainAppModel(ctx context.Context, services *service.ClientServices) appModel {
	m := newLoginAppModel(ctx, services)
	m.mode = modeMain
	m.currentScreen = screenGalleries
	m.galleries.loading = true
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return m.cmdLoadGalleries()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == 0 {
					return m, nil
				}
				return m, m.cmdDeleteGallery(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = 0
			}
			return m, nil
		}
	case authDoneMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.resultUser = msg.user
		return m, tea.Quit
	case galleriesLoadedMsg:
		m.galleries.loading = false
		m.galleries.busy = false
		if msg.err != nil {
			return m.failOrExpire(msg.err)
		}
		m.galleries.items = msg.galleries
		m.galleries.offline = msg.offline
		m.galleries.lastErr = nil
		if m.galleries.idx >= len(m.galleries.items) {
			m.galleries.idx = len(m.galleries.items) - 1
		}
		if m.galleries.idx < 0 {
			m.galleries.idx = 0
		}
		return m, nil
	case photosLoadedMsg:
		m.detail.loading = false
		m.detail.busy = false
		if msg.err != nil {
			m.currentScreen = screenGalleries
			return m.failOrExpire(msg.err)
		}
		m.detail.gallery = msg.gallery
		m.detail.photos = msg.photos
		m.detail.offline = msg.offline
		if m.detail.idx >= len(m.detail.photos) {
			m.detail.idx = len(m.detail.photos) - 1
		}
		if m.detail.idx < 0 {
			m.detail.idx = 0
		}
		return m, nil
	case gallerySavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			return m.failOrExpire(msg.err)
		}
		m.currentScreen = screenGalleries
		m.galleries.loading = true
		return m, m.cmdLoadGalleries()
	case galleryDeletedMsg:
		if msg.err != nil {
			return m.failOrExpire(msg.err)
		}
		m.pendingDelete = 0
		m.currentScreen = screenGalleries
		m.galleries.status = "Gallery deleted"
		m.galleries.loading = true
		return m, tea.Batch(m.cmdLoadGalleries(), cmdClearStatus())
	case publishedMsg:
		m.galleries.busy = false
		m.detail.busy = false
		if msg.err != nil {
			return m.failOrExpire(msg.err)
		}
		m.detail.shareURL = msg.link.ShareURL
		m.detail.gallery.Published = true
		m.detail.gallery.Slug = msg.link.Slug
		status := "Published: " + msg.link.ShareURL
		if msg.link.AccessCode != "" {
			status += "  (access code " + msg.link.AccessCode + ")"
		}
		m.galleries.status = status
		m.detail.status = status
		return m, m.cmdLoadGalleries()
	case photoDownloadedMsg:
		m.detail.busy = false
		if msg.err != nil {
			return m.failOrExpire(msg.err)
		}
		m.detail.status = "Saved to " + msg.entry.Path
		m.viewer.status = "Saved to " + msg.entry.Path
		return m, cmdClearStatus()
	case batchDownloadedMsg:
		m.detail.busy = false
		if msg.err != nil {
			return m.failOrExpire(msg.err)
		}
		m.detail.status = fmt.Sprintf("%d photos saved to %s, %d failed",
			msg.result.Completed, msg.result.Dir, len(msg.result.Failed))
		return m, cmdClearStatus()
	case copiedMsg:
		m.detail.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.galleries.status = ""
		m.detail.status = ""
		m.viewer.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		if m.galleries.busy {
			m.galleries.spinner, cmd = m.galleries.spinner.Update(msg)
			return m, cmd
		}
		if m.detail.busy {
			m.detail.spinner, cmd = m.detail.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenGalleries:
		return m.updateGalleries(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenViewer:
		return m.updateViewer(msg)
	case screenFormGallery:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenGalleries:
		body = m.galleries.View()
	case screenDetail:
		body = m.detail.View()
	case screenViewer:
		body = m.viewer.View()
	case screenFormGallery:
		body = m.form.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.login.submitting = v
	m.register.submitting = v
	m.form.submitting = v
}

// failOrExpire routes an async error either into the error overlay or, when
// the session is gone, out of the main loop so the caller can rerun the login
// flow. An expired session never leaves the user stuck on a dead screen.
func (m appModel) failOrExpire(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, service.ErrSessionExpired) {
		m.sessionExpired = true
		return m, tea.Quit
	}
	m.showErrorf(err.Error())
	return m, nil
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNext(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrev(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.login.inputs[0].Value())
			pass := m.login.inputs[1].Value()
			if email == "" || pass == "" {
				m.showErrorf("Email and password are required")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(models.Credentials{Email: email, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = focusNextRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = focusPrevRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.register.inputs[0].Value())
			name := strings.TrimSpace(m.register.inputs[1].Value())
			pass := m.register.inputs[2].Value()
			repeat := m.register.inputs[3].Value()
			if email == "" || name == "" || pass == "" {
				m.showErrorf("Email, name and password are required")
				return m, nil
			}
			if pass != repeat {
				m.showErrorf("Passwords do not match")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(models.RegisterRequest{Email: email, Name: name, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateGalleries(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.galleries.idx > 0 {
			m.galleries.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.galleries.idx < len(m.galleries.items)-1 {
			m.galleries.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		gallery, ok := m.galleries.current()
		if !ok {
			return m, nil
		}
		m.detail = newDetailModel()
		m.detail.gallery = gallery
		m.detail.loading = true
		m.currentScreen = screenDetail
		return m, m.cmdLoadPhotos(gallery)
	case key.Matches(keyMsg, keys.create):
		m.form = m.form.reset(false, 0, "", "")
		m.currentScreen = screenFormGallery
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		gallery, ok := m.galleries.current()
		if !ok {
			return m, nil
		}
		m.form = m.form.reset(true, gallery.GalleryID, gallery.Title, gallery.Description)
		m.currentScreen = screenFormGallery
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		gallery, ok := m.galleries.current()
		if !ok {
			return m, nil
		}
		m.pendingDelete = gallery.GalleryID
		m.confirm.message = gallery.Title
		m.showConfirm = true
		return m, nil
	case key.Matches(keyMsg, keys.publish):
		gallery, ok := m.galleries.current()
		if !ok {
			return m, nil
		}
		m.galleries.busy = true
		return m, tea.Batch(m.galleries.spinner.Tick, m.cmdPublish(gallery.GalleryID))
	case key.Matches(keyMsg, keys.reload):
		if m.galleries.busy {
			return m, nil
		}
		m.galleries.busy = true
		return m, tea.Batch(m.galleries.spinner.Tick, m.cmdLoadGalleries())
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenGalleries
		return m, nil
	case key.Matches(keyMsg, keys.up):
		if m.detail.idx > 0 {
			m.detail.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.detail.idx < len(m.detail.photos)-1 {
			m.detail.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if _, ok := m.detail.current(); !ok {
			return m, nil
		}
		m.viewer = viewerModel{gallery: m.detail.gallery, photos: m.detail.photos, idx: m.detail.idx}
		m.currentScreen = screenViewer
		return m, nil
	case key.Matches(keyMsg, keys.download):
		photo, ok := m.detail.current()
		if !ok {
			return m, nil
		}
		m.detail.busy = true
		return m, tea.Batch(m.detail.spinner.Tick, m.cmdDownloadPhoto(photo))
	case key.Matches(keyMsg, keys.batch):
		if len(m.detail.photos) == 0 || m.detail.busy {
			return m, nil
		}
		m.detail.busy = true
		m.detail.status = "Downloading gallery..."
		return m, tea.Batch(m.detail.spinner.Tick, m.cmdDownloadGallery(m.detail.gallery, m.detail.photos))
	case key.Matches(keyMsg, keys.publish):
		m.detail.busy = true
		return m, tea.Batch(m.detail.spinner.Tick, m.cmdPublish(m.detail.gallery.GalleryID))
	case key.Matches(keyMsg, keys.copy):
		target, ok := m.detail.shareTarget()
		if !ok {
			m.detail.status = "Gallery is not published"
			return m, cmdClearStatus()
		}
		if err := clipboard.WriteAll(target); err != nil {
			m.showErrorf("Copy failed: " + err.Error())
			return m, nil
		}
		return m, func() tea.Msg { return copiedMsg{} }
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateViewer(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.detail.idx = m.viewer.idx
		m.currentScreen = screenDetail
		return m, nil
	case key.Matches(keyMsg, keys.right):
		m.viewer.idx = nextPhotoIndex(m.viewer.idx, len(m.viewer.photos))
	case key.Matches(keyMsg, keys.left):
		m.viewer.idx = prevPhotoIndex(m.viewer.idx, len(m.viewer.photos))
	case key.Matches(keyMsg, keys.download):
		photo, ok := m.viewer.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdDownloadPhoto(photo)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenGalleries
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = focusNextForm(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = focusPrevForm(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			title := strings.TrimSpace(m.form.inputs[0].Value())
			description := strings.TrimSpace(m.form.inputs[1].Value())
			if title == "" {
				m.showErrorf("Title is required")
				return m, nil
			}
			m.form.submitting = true
			if m.form.editing {
				return m, m.cmdUpdateGallery(m.form.galleryID, models.UpdateGalleryRequest{Title: title, Description: description})
			}
			return m, m.cmdCreateGallery(models.CreateGalleryRequest{Title: title, Description: description})
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) cmdLogin(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService

	return func() tea.Msg {
		user, err := auth.Login(ctx, creds)
		return authDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService

	return func() tea.Msg {
		user, err := auth.Register(ctx, req)
		return authDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdLoadGalleries() tea.Cmd {
	ctx := m.ctx
	svc := m.services.GalleryService

	return func() tea.Msg {
		galleries, offline, err := svc.Galleries(ctx)
		return galleriesLoadedMsg{galleries: galleries, offline: offline, err: err}
	}
}

func (m appModel) cmdLoadPhotos(gallery models.Gallery) tea.Cmd {
	ctx := m.ctx
	svc := m.services.GalleryService

	return func() tea.Msg {
		photos, offline, err := svc.Photos(ctx, gallery.GalleryID)
		return photosLoadedMsg{gallery: gallery, photos: photos, offline: offline, err: err}
	}
}

func (m appModel) cmdCreateGallery(req models.CreateGalleryRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.services.GalleryService

	return func() tea.Msg {
		gallery, err := svc.Create(ctx, req)
		return gallerySavedMsg{gallery: gallery, err: err}
	}
}

func (m appModel) cmdUpdateGallery(galleryID int64, req models.UpdateGalleryRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.services.GalleryService

	return func() tea.Msg {
		gallery, err := svc.Update(ctx, galleryID, req)
		return gallerySavedMsg{gallery: gallery, err: err}
	}
}

func (m appModel) cmdDeleteGallery(galleryID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.GalleryService

	return func() tea.Msg {
		return galleryDeletedMsg{err: svc.Delete(ctx, galleryID)}
	}
}

func (m appModel) cmdPublish(galleryID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.GalleryService

	return func() tea.Msg {
		link, err := svc.Publish(ctx, galleryID)
		return publishedMsg{link: link, err: err}
	}
}

func (m appModel) cmdDownloadPhoto(photo models.Photo) tea.Cmd {
	ctx := m.ctx
	svc := m.services.DownloadService

	return func() tea.Msg {
		entry, err := svc.DownloadPhoto(ctx, photo)
		return photoDownloadedMsg{entry: entry, err: err}
	}
}

func (m appModel) cmdDownloadGallery(gallery models.Gallery, photos []models.Photo) tea.Cmd {
	ctx := m.ctx
	svc := m.services.DownloadService

	return func() tea.Msg {
		result, err := svc.DownloadGallery(ctx, gallery, photos, nil)
		return batchDownloadedMsg{result: result, err: err}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
