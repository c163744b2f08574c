package service

import (
	"context"

	"github.com/lumapix/lumapix-client/internal/adapter"
	"github.com/lumapix/lumapix-client/internal/logger"
	"github.com/lumapix/lumapix-client/internal/session"
	"github.com/lumapix/lumapix-client/models"
)

type clientAuthService struct {
	serverAdapter adapter.ServerAdapter
	sessions      session.Store
	logger        *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, sessions session.Store, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		serverAdapter: serverAdapter,
		sessions:      sessions,
		logger:        logger,
	}
}

// Register implements [ClientAuthService].
func (s *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	resp, err := s.serverAdapter.Register(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("func", "clientAuthService.Register").Msg("registration failed")
		return models.User{}, mapAdapterError(err)
	}

	s.sessions.Login(resp.Session())
	s.logger.Info().Int64("user_id", resp.User.UserID).Msg("account registered")

	return resp.User, nil
}

// Login implements [ClientAuthService].
func (s *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	resp, err := s.serverAdapter.Login(ctx, creds)
	if err != nil {
		s.logger.Err(err).Str("func", "clientAuthService.Login").Msg("login failed")
		return models.User{}, mapAdapterError(err)
	}

	s.sessions.Login(resp.Session())
	s.logger.Info().Int64("user_id", resp.User.UserID).Msg("signed in")

	return resp.User, nil
}

// Logout implements [ClientAuthService]. The local session is cleared even
// when the backend revocation fails: the user asked to sign out, and a dead
// backend must not prevent that.
func (s *clientAuthService) Logout(ctx context.Context) error {
	err := s.serverAdapter.Logout(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("server-side logout failed, clearing local session anyway")
	}

	s.sessions.Logout()
	return nil
}

// Restore implements [ClientAuthService].
func (s *clientAuthService) Restore() bool {
	_, ok := s.sessions.Current()
	return ok
}
