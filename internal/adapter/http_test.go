package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumapix/lumapix-client/internal/config"
	"github.com/lumapix/lumapix-client/internal/logger"
	"github.com/lumapix/lumapix-client/internal/session"
	"github.com/lumapix/lumapix-client/models"
)

// recordingStore wraps a real store and counts the mutating calls so tests
// can assert how often the adapter writes to it.
type recordingStore struct {
	session.Store

	mu      sync.Mutex
	updates int
	logouts int
}

func newRecordingStore(active *models.Session) *recordingStore {
	s := &recordingStore{Store: session.NewMemoryStore()}
	if active != nil {
		s.Store.Login(*active)
	}
	return s
}

func (s *recordingStore) UpdateTokens(ses models.Session) {
	s.mu.Lock()
	s.updates++
	s.mu.Unlock()
	s.Store.UpdateTokens(ses)
}

func (s *recordingStore) Logout() {
	s.mu.Lock()
	s.logouts++
	s.mu.Unlock()
	s.Store.Logout()
}

func (s *recordingStore) counts() (updates, logouts int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updates, s.logouts
}

func newTestAdapter(t *testing.T, serverURL string, store session.Store, opts ...Option) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{BaseURL: serverURL}, store, logger.Nop(), opts...)
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func activeSession() models.Session {
	return models.Session{AccessToken: "stale-access", RefreshToken: "refresh-1", TokenType: "Bearer"}
}

func refreshedTokens() models.SessionResponse {
	return models.SessionResponse{AccessToken: "new-access", RefreshToken: "refresh-2", TokenType: "Bearer"}
}

// ── Register / Login ─────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice@example.com", req.Email)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.SessionResponse{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			TokenType:    "Bearer",
			User:         models.User{UserID: 1, Email: req.Email, Name: req.Name},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, session.NewMemoryStore())
	got, err := a.Register(context.Background(), models.RegisterRequest{Email: "alice@example.com", Name: "Alice", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "access-1", got.AccessToken)
	assert.Equal(t, int64(1), got.User.UserID)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("email already registered"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, session.NewMemoryStore())
	_, err := a.Register(context.Background(), models.RegisterRequest{Email: "alice@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.SessionResponse{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			User:         models.User{UserID: 7, Email: "alice@example.com"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, session.NewMemoryStore())
	got, err := a.Login(context.Background(), models.Credentials{Email: "alice@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "access-1", got.AccessToken)
	assert.Equal(t, int64(7), got.User.UserID)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid email/password"))
	}))
	defer srv.Close()

	store := newRecordingStore(nil)
	a := newTestAdapter(t, srv.URL, store)
	_, err := a.Login(context.Background(), models.Credentials{Email: "alice@example.com", Password: "bad"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// A failed login is not an expired session: no teardown happens.
	_, logouts := store.counts()
	assert.Zero(t, logouts)
}

// ── Authorization header ─────────────────────────────────────────────────────

func TestAuthedRequest_ExactBearerHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	store := session.NewMemoryStore()
	store.Login(models.Session{AccessToken: "test-access", TokenType: "Bearer"})

	a := newTestAdapter(t, srv.URL, store)
	_, err := a.GetGalleries(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer test-access", gotAuth)
}

func TestAuthedRequest_NoSessionNoHeader(t *testing.T) {
	var hasAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, session.NewMemoryStore())
	_, err := a.GetGalleries(context.Background())

	require.NoError(t, err)
	assert.False(t, hasAuth)
}

// ── Refresh and retry ────────────────────────────────────────────────────────

func TestDo_RefreshOnceAndRetry(t *testing.T) {
	var refreshCalls, galleryCalls int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh":
			atomic.AddInt32(&refreshCalls, 1)

			var req models.RefreshRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "refresh-1", req.RefreshToken)

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(refreshedTokens())
		case "/galleries":
			atomic.AddInt32(&galleryCalls, 1)

			if r.Header.Get("Authorization") != "Bearer new-access" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode([]models.Gallery{{GalleryID: 1, Title: "Trip"}})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	active := activeSession()
	store := newRecordingStore(&active)
	a := newTestAdapter(t, srv.URL, store)

	galleries, err := a.GetGalleries(context.Background())

	require.NoError(t, err)
	require.Len(t, galleries, 1)
	assert.Equal(t, "Trip", galleries[0].Title)

	// Exactly one refresh, exactly one retry of the original request.
	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshCalls))
	assert.Equal(t, int32(2), atomic.LoadInt32(&galleryCalls))

	// The store received the rotated pair exactly once.
	updates, logouts := store.counts()
	assert.Equal(t, 1, updates)
	assert.Zero(t, logouts)

	current, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, "new-access", current.AccessToken)
	assert.Equal(t, "refresh-2", current.RefreshToken)
}

func TestDo_SecondUnauthorizedIsTerminal(t *testing.T) {
	var refreshCalls int32
	var authFailed bool

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh":
			atomic.AddInt32(&refreshCalls, 1)
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(refreshedTokens())
		default:
			// 401 regardless of token: the retry fails too.
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	active := activeSession()
	store := newRecordingStore(&active)
	a := newTestAdapter(t, srv.URL, store, WithAuthFailureHandler(func() { authFailed = true }))

	_, err := a.GetGalleries(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthFailed)
	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshCalls), "no second refresh for the same request")

	_, logouts := store.counts()
	assert.Equal(t, 1, logouts)
	assert.True(t, authFailed)

	_, ok := store.Current()
	assert.False(t, ok)
}

func TestDo_NoRefreshTokenLogsOutWithoutRefreshCall(t *testing.T) {
	var refreshCalls int32
	var authFailed bool

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			atomic.AddInt32(&refreshCalls, 1)
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := newRecordingStore(&models.Session{AccessToken: "stale-access", TokenType: "Bearer"})
	a := newTestAdapter(t, srv.URL, store, WithAuthFailureHandler(func() { authFailed = true }))

	_, err := a.GetGalleries(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthFailed)
	assert.Zero(t, atomic.LoadInt32(&refreshCalls))

	_, logouts := store.counts()
	assert.Equal(t, 1, logouts)
	assert.True(t, authFailed)
}

func TestDo_RefreshFailureTearsDownSession(t *testing.T) {
	var authFailed bool

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("refresh token revoked"))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	active := activeSession()
	store := newRecordingStore(&active)
	a := newTestAdapter(t, srv.URL, store, WithAuthFailureHandler(func() { authFailed = true }))

	_, err := a.GetGalleries(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthFailed)

	updates, logouts := store.counts()
	assert.Zero(t, updates)
	assert.Equal(t, 1, logouts)
	assert.True(t, authFailed)
}

func TestDo_ConcurrentExpiriesShareOneRefresh(t *testing.T) {
	var refreshCalls int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh":
			atomic.AddInt32(&refreshCalls, 1)
			time.Sleep(50 * time.Millisecond) // widen the coalescing window
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(refreshedTokens())
		case "/galleries":
			if r.Header.Get("Authorization") != "Bearer new-access" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("[]"))
		}
	}))
	defer srv.Close()

	active := activeSession()
	store := newRecordingStore(&active)
	a := newTestAdapter(t, srv.URL, store)

	const parallel = 5
	errs := make(chan error, parallel)
	for i := 0; i < parallel; i++ {
		go func() {
			_, err := a.GetGalleries(context.Background())
			errs <- err
		}()
	}
	for i := 0; i < parallel; i++ {
		assert.NoError(t, <-errs)
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshCalls))

	updates, _ := store.counts()
	assert.Equal(t, 1, updates)
}

// ── Transport failures ───────────────────────────────────────────────────────

func TestDo_NetworkFailureNeverRetried(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		conn, _, err := w.(http.Hijacker).Hijack()
		require.NoError(t, err)
		_ = conn.Close()
	}))
	defer srv.Close()

	active := activeSession()
	store := newRecordingStore(&active)
	a := newTestAdapter(t, srv.URL, store)

	_, err := a.GetGalleries(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetworkUnavailable)
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))

	// The session survives a network failure.
	_, ok := store.Current()
	assert.True(t, ok)
}

func TestDo_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	store := session.NewMemoryStore()
	store.Login(activeSession())

	a, err := NewHTTPServerAdapter(
		config.ClientAdapter{BaseURL: srv.URL, RequestTimeout: 50 * time.Millisecond},
		store, logger.Nop(),
	)
	require.NoError(t, err)

	_, err = a.GetGalleries(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestTimeout)
}

// ── Domain operations ────────────────────────────────────────────────────────

func TestPublishGallery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/galleries/42/publish", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ShareLink{
			Slug:       "summer-trip",
			ShareURL:   "https://lumapix.example/public/galleries/summer-trip",
			AccessCode: "1234",
		})
	}))
	defer srv.Close()

	store := session.NewMemoryStore()
	store.Login(activeSession())

	a := newTestAdapter(t, srv.URL, store)
	link, err := a.PublishGallery(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, "summer-trip", link.Slug)
	assert.Equal(t, "1234", link.AccessCode)
}

func TestGetPhotos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/galleries/7/photos", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Photo{
			{PhotoID: 1, GalleryID: 7, FileName: "a.jpg", Position: 0},
			{PhotoID: 2, GalleryID: 7, FileName: "b.jpg", Position: 1},
		})
	}))
	defer srv.Close()

	store := session.NewMemoryStore()
	store.Login(activeSession())

	a := newTestAdapter(t, srv.URL, store)
	photos, err := a.GetPhotos(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Equal(t, "a.jpg", photos[0].FileName)
}

func TestDownloadPhoto(t *testing.T) {
	raw := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/photos/9/original", r.URL.Path)
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(raw)
	}))
	defer srv.Close()

	store := session.NewMemoryStore()
	store.Login(activeSession())

	a := newTestAdapter(t, srv.URL, store)
	got, err := a.DownloadPhoto(context.Background(), 9)

	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestGetPublicGallery_AccessCodeHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/public/galleries/summer-trip", r.URL.Path)
		assert.Equal(t, "1234", r.Header.Get("X-Gallery-Access-Code"))
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.PublicGallery{
			Gallery: models.Gallery{Title: "Summer Trip", Slug: "summer-trip"},
			Photos:  []models.Photo{{PhotoID: 1, FileName: "a.jpg"}},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, session.NewMemoryStore())
	got, err := a.GetPublicGallery(context.Background(), "summer-trip", "1234")

	require.NoError(t, err)
	assert.Equal(t, "Summer Trip", got.Gallery.Title)
	require.Len(t, got.Photos, 1)
}

func TestGetPublicGallery_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("wrong access code"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, session.NewMemoryStore())
	_, err := a.GetPublicGallery(context.Background(), "summer-trip", "9999")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

// ── RefreshSession ───────────────────────────────────────────────────────────

func TestRefreshSession_NoSession(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1", session.NewMemoryStore())

	_, err := a.RefreshSession(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRefreshSession_RotatesTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/refresh", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(refreshedTokens())
	}))
	defer srv.Close()

	active := activeSession()
	store := newRecordingStore(&active)
	a := newTestAdapter(t, srv.URL, store)

	got, err := a.RefreshSession(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "new-access", got.AccessToken)

	updates, _ := store.counts()
	assert.Equal(t, 1, updates)
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain host", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "https kept", raw: "https://api.lumapix.example", want: "https://api.lumapix.example"},
		{name: "trailing slash trimmed", raw: "http://example.com/", want: "http://example.com"},
		{name: "whitespace trimmed", raw: "  http://example.com  ", want: "http://example.com"},
		{name: "empty", raw: "", wantErr: true},
		{name: "scheme only", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
