package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lumapix/lumapix-client/internal/adapter"
	"github.com/lumapix/lumapix-client/internal/logger"
	"github.com/lumapix/lumapix-client/internal/mock"
	"github.com/lumapix/lumapix-client/internal/session"
	"github.com/lumapix/lumapix-client/models"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (ClientAuthService, *mock.MockServerAdapter, session.Store) {
	t.Helper()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	sessions := session.NewMemoryStore()

	return NewClientAuthService(mockAdapter, sessions, logger.Nop()), mockAdapter, sessions
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_InstallsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.RegisterRequest{Email: "anna@example.com", Name: "Anna", Password: "secret"}
	mockAdapter.EXPECT().Register(ctx, req).Return(models.SessionResponse{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		TokenType:    "Bearer",
		User:         models.User{UserID: 7, Email: "anna@example.com", Name: "Anna"},
	}, nil)

	user, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)

	current, ok := sessions.Current()
	require.True(t, ok, "register must install the issued session")
	assert.Equal(t, "access-1", current.AccessToken)
	assert.Equal(t, "refresh-1", current.RefreshToken)
}

func TestClientAuthService_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Register(ctx, gomock.Any()).Return(models.SessionResponse{}, adapter.ErrConflict)

	_, err := svc.Register(ctx, models.RegisterRequest{Email: "taken@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, ok := sessions.Current()
	assert.False(t, ok, "no session must be installed on failure")
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_InstallsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	creds := models.Credentials{Email: "anna@example.com", Password: "secret"}
	mockAdapter.EXPECT().Login(ctx, creds).Return(models.SessionResponse{
		AccessToken:  "access-2",
		RefreshToken: "refresh-2",
		TokenType:    "Bearer",
		User:         models.User{UserID: 7},
	}, nil)

	user, err := svc.Login(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)

	current, ok := sessions.Current()
	require.True(t, ok)
	assert.Equal(t, "access-2", current.AccessToken)
}

func TestClientAuthService_Login_WrongCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.SessionResponse{}, adapter.ErrUnauthorized)

	_, err := svc.Login(ctx, models.Credentials{Email: "anna@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestClientAuthService_Logout_ClearsLocalSessionEvenWhenServerFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	sessions.Login(models.Session{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer"})
	mockAdapter.EXPECT().Logout(ctx).Return(errors.New("backend is down"))

	err := svc.Logout(ctx)
	require.NoError(t, err, "local sign-out must not depend on the backend")

	_, ok := sessions.Current()
	assert.False(t, ok)
}

// ── Restore ──────────────────────────────────────────────────────────────────

func TestClientAuthService_Restore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, sessions := newTestAuthSvc(t, ctrl)

	assert.False(t, svc.Restore())

	sessions.Login(models.Session{AccessToken: "access", TokenType: "Bearer"})
	assert.True(t, svc.Restore())
}
