package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/singleflight"

	"github.com/lumapix/lumapix-client/internal/config"
	"github.com/lumapix/lumapix-client/internal/logger"
	"github.com/lumapix/lumapix-client/internal/session"
	"github.com/lumapix/lumapix-client/internal/utils"
	"github.com/lumapix/lumapix-client/models"
)

type httpServerAdapter struct {
	client   *utils.HTTPClient
	sessions session.Store

	// onAuthFailure is invoked after the session has been torn down because
	// of an unrecoverable 401. The UI registers a handler to bring the user
	// back to the sign-in screen.
	onAuthFailure func()

	// refresh coalesces concurrent refresh attempts into one backend call.
	refresh singleflight.Group

	logger *logger.Logger
}

// Option configures optional behaviour of the HTTP adapter.
type Option func(*httpServerAdapter)

// WithAuthFailureHandler registers fn to run whenever the adapter tears down
// the session after an unrecoverable authentication failure. fn may be called
// from any goroutine issuing requests.
func WithAuthFailureHandler(fn func()) Option {
	return func(h *httpServerAdapter) {
		h.onAuthFailure = fn
	}
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying HTTP client with the
// resolved base URL and request timeout. The session store supplies the
// bearer token for authenticated requests and receives the replacement token
// pair after a refresh.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, sessions session.Store, logger *logger.Logger, opts ...Option) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	h := &httpServerAdapter{client: client, sessions: sessions, logger: logger}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register implements [ServerAdapter]. It POSTs the registration payload to
// POST /auth/register and decodes the issued session. No retry cycle applies:
// the request is unauthenticated by definition.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.SessionResponse, error) {
	var sr models.SessionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&sr).
		Post("/auth/register")
	if err != nil {
		return models.SessionResponse{}, mapTransportError(fmt.Errorf("register request: %w", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionResponse{}, err
	}

	return sr, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /auth/login and decodes the issued session. No retry cycle applies.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.SessionResponse, error) {
	var sr models.SessionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&sr).
		Post("/auth/login")
	if err != nil {
		return models.SessionResponse{}, mapTransportError(fmt.Errorf("login request: %w", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionResponse{}, err
	}

	return sr, nil
}

// Logout implements [ServerAdapter]. It POSTs the stored refresh token to
// POST /auth/logout so the backend can revoke it. The call deliberately skips
// the refresh-and-retry cycle: a 401 during logout is not worth recovering.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	current, ok := h.sessions.Current()
	if !ok {
		return nil
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", current.Authorization()).
		SetBody(models.RefreshRequest{RefreshToken: current.RefreshToken}).
		Post("/auth/logout")
	if err != nil {
		return mapTransportError(fmt.Errorf("logout request: %w", err))
	}

	return mapHTTPError(resp)
}

// RefreshSession implements [ServerAdapter].
func (h *httpServerAdapter) RefreshSession(ctx context.Context) (models.Session, error) {
	current, ok := h.sessions.Current()
	if !ok || current.RefreshToken == "" {
		return models.Session{}, fmt.Errorf("%w: no refresh token available", ErrUnauthorized)
	}

	return h.refreshSession(ctx, current.AccessToken)
}

// GetGalleries implements [ServerAdapter]. GET /galleries.
func (h *httpServerAdapter) GetGalleries(ctx context.Context) ([]models.Gallery, error) {
	resp, err := h.do(ctx, func(ctx context.Context, s models.Session) (*resty.Response, error) {
		return h.authedRequest(ctx, s).Get("/galleries")
	})
	if err != nil {
		return nil, err
	}

	var galleries []models.Gallery
	if err = json.Unmarshal(resp.Body(), &galleries); err != nil {
		return nil, fmt.Errorf("decode galleries response: %w", err)
	}
	return galleries, nil
}

// GetGallery implements [ServerAdapter]. GET /galleries/{id}.
func (h *httpServerAdapter) GetGallery(ctx context.Context, galleryID int64) (models.Gallery, error) {
	resp, err := h.do(ctx, func(ctx context.Context, s models.Session) (*resty.Response, error) {
		return h.authedRequest(ctx, s).Get("/galleries/" + strconv.FormatInt(galleryID, 10))
	})
	if err != nil {
		return models.Gallery{}, err
	}

	var gallery models.Gallery
	if err = json.Unmarshal(resp.Body(), &gallery); err != nil {
		return models.Gallery{}, fmt.Errorf("decode gallery response: %w", err)
	}
	return gallery, nil
}

// CreateGallery implements [ServerAdapter]. POST /galleries.
func (h *httpServerAdapter) CreateGallery(ctx context.Context, req models.CreateGalleryRequest) (models.Gallery, error) {
	resp, err := h.do(ctx, func(ctx context.Context, s models.Session) (*resty.Response, error) {
		return h.authedRequest(ctx, s).
			SetHeader("Content-Type", "application/json").
			SetBody(req).
			Post("/galleries")
	})
	if err != nil {
		return models.Gallery{}, err
	}

	var gallery models.Gallery
	if err = json.Unmarshal(resp.Body(), &gallery); err != nil {
		return models.Gallery{}, fmt.Errorf("decode create gallery response: %w", err)
	}
	return gallery, nil
}

// UpdateGallery implements [ServerAdapter]. PUT /galleries/{id}.
func (h *httpServerAdapter) UpdateGallery(ctx context.Context, galleryID int64, req models.UpdateGalleryRequest) (models.Gallery, error) {
	resp, err := h.do(ctx, func(ctx context.Context, s models.Session) (*resty.Response, error) {
		return h.authedRequest(ctx, s).
			SetHeader("Content-Type", "application/json").
			SetBody(req).
			Put("/galleries/" + strconv.FormatInt(galleryID, 10))
	})
	if err != nil {
		return models.Gallery{}, err
	}

	var gallery models.Gallery
	if err = json.Unmarshal(resp.Body(), &gallery); err != nil {
		return models.Gallery{}, fmt.Errorf("decode update gallery response: %w", err)
	}
	return gallery, nil
}

// DeleteGallery implements [ServerAdapter]. DELETE /galleries/{id}.
func (h *httpServerAdapter) DeleteGallery(ctx context.Context, galleryID int64) error {
	_, err := h.do(ctx, func(ctx context.Context, s models.Session) (*resty.Response, error) {
		return h.authedRequest(ctx, s).Delete("/galleries/" + strconv.FormatInt(galleryID, 10))
	})
	return err
}

// PublishGallery implements [ServerAdapter]. POST /galleries/{id}/publish.
func (h *httpServerAdapter) PublishGallery(ctx context.Context, galleryID int64) (models.ShareLink, error) {
	resp, err := h.do(ctx, func(ctx context.Context, s models.Session) (*resty.Response, error) {
		return h.authedRequest(ctx, s).Post("/galleries/" + strconv.FormatInt(galleryID, 10) + "/publish")
	})
	if err != nil {
		return models.ShareLink{}, err
	}

	var link models.ShareLink
	if err = json.Unmarshal(resp.Body(), &link); err != nil {
		return models.ShareLink{}, fmt.Errorf("decode publish response: %w", err)
	}
	return link, nil
}

// GetPhotos implements [ServerAdapter]. GET /galleries/{id}/photos.
func (h *httpServerAdapter) GetPhotos(ctx context.Context, galleryID int64) ([]models.Photo, error) {
	resp, err := h.do(ctx, func(ctx context.Context, s models.Session) (*resty.Response, error) {
		return h.authedRequest(ctx, s).Get("/galleries/" + strconv.FormatInt(galleryID, 10) + "/photos")
	})
	if err != nil {
		return nil, err
	}

	var photos []models.Photo
	if err = json.Unmarshal(resp.Body(), &photos); err != nil {
		return nil, fmt.Errorf("decode photos response: %w", err)
	}
	return photos, nil
}

// DownloadPhoto implements [ServerAdapter]. GET /photos/{id}/original.
// Returns the raw file bytes.
func (h *httpServerAdapter) DownloadPhoto(ctx context.Context, photoID int64) ([]byte, error) {
	resp, err := h.do(ctx, func(ctx context.Context, s models.Session) (*resty.Response, error) {
		return h.authedRequest(ctx, s).Get("/photos/" + strconv.FormatInt(photoID, 10) + "/original")
	})
	if err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// GetPublicGallery implements [ServerAdapter]. GET /public/galleries/{slug}.
// The endpoint is unauthenticated; a non-empty accessCode travels in the
// X-Gallery-Access-Code header. No retry cycle applies.
func (h *httpServerAdapter) GetPublicGallery(ctx context.Context, slug, accessCode string) (models.PublicGallery, error) {
	req := h.client.R().SetContext(ctx)
	if accessCode != "" {
		req.SetHeader("X-Gallery-Access-Code", accessCode)
	}

	resp, err := req.Get("/public/galleries/" + url.PathEscape(slug))
	if err != nil {
		return models.PublicGallery{}, mapTransportError(fmt.Errorf("public gallery request: %w", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicGallery{}, err
	}

	var gallery models.PublicGallery
	if err = json.Unmarshal(resp.Body(), &gallery); err != nil {
		return models.PublicGallery{}, fmt.Errorf("decode public gallery response: %w", err)
	}
	return gallery, nil
}

// sendFunc issues one attempt of an authenticated request under the given
// session and returns the raw response.
type sendFunc func(ctx context.Context, session models.Session) (*resty.Response, error)

// do runs an authenticated request with the refresh-and-retry cycle.
//
// The first attempt uses the current session. On a 401 with a refresh token
// present, the adapter refreshes the session (coalesced across concurrent
// requests) and re-issues the request exactly once with the new token. A 401
// on the retry, a refresh failure, or a missing refresh token tears down the
// session and returns [ErrAuthFailed] wrapping the cause. A transport-level
// failure (no response) is never retried.
func (h *httpServerAdapter) do(ctx context.Context, send sendFunc) (*resty.Response, error) {
	current, _ := h.sessions.Current()

	resp, err := send(ctx, current)
	if err != nil {
		return nil, mapTransportError(err)
	}
	if resp.StatusCode() != http.StatusUnauthorized {
		return resp, mapHTTPError(resp)
	}

	if current.RefreshToken == "" {
		return nil, h.failAuth(mapHTTPError(resp))
	}

	refreshed, err := h.refreshSession(ctx, current.AccessToken)
	if err != nil {
		return nil, h.failAuth(err)
	}

	retryResp, err := send(ctx, refreshed)
	if err != nil {
		return nil, mapTransportError(err)
	}
	if retryResp.StatusCode() == http.StatusUnauthorized {
		// Second consecutive 401: terminal, no further refresh.
		return nil, h.failAuth(mapHTTPError(retryResp))
	}

	return retryResp, mapHTTPError(retryResp)
}

// refreshSession exchanges the refresh token for a new pair and writes it to
// the session store exactly once. All concurrent callers share one in-flight
// backend call; a caller that arrives after a refresh already completed
// reuses the fresh session instead of refreshing again, which is what
// staleAccessToken is compared against.
func (h *httpServerAdapter) refreshSession(ctx context.Context, staleAccessToken string) (models.Session, error) {
	v, err, _ := h.refresh.Do("refresh", func() (any, error) {
		current, ok := h.sessions.Current()
		if !ok || current.RefreshToken == "" {
			return models.Session{}, fmt.Errorf("%w: no refresh token available", ErrUnauthorized)
		}
		if current.AccessToken != "" && current.AccessToken != staleAccessToken {
			// Another request already rotated the tokens.
			return current, nil
		}

		var sr models.SessionResponse
		resp, err := h.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(models.RefreshRequest{RefreshToken: current.RefreshToken}).
			SetResult(&sr).
			Post("/auth/refresh")
		if err != nil {
			return models.Session{}, mapTransportError(fmt.Errorf("refresh request: %w", err))
		}
		if err = mapHTTPError(resp); err != nil {
			return models.Session{}, err
		}

		refreshed := sr.Session()
		h.sessions.UpdateTokens(refreshed)
		h.logger.Debug().Msg("session tokens rotated")

		return refreshed, nil
	})
	if err != nil {
		return models.Session{}, err
	}

	return v.(models.Session), nil
}

// failAuth tears down the session after an unrecoverable authentication
// failure and notifies the registered handler. Returns [ErrAuthFailed]
// wrapping cause.
func (h *httpServerAdapter) failAuth(cause error) error {
	h.sessions.Logout()
	h.logger.Warn().Err(cause).Msg("session torn down after authentication failure")

	if h.onAuthFailure != nil {
		h.onAuthFailure()
	}

	return fmt.Errorf("%w: %s", ErrAuthFailed, cause)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, session models.Session) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if session.AccessToken != "" {
		req.SetHeader("Authorization", session.Authorization())
	}
	return req
}
