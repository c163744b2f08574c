package service

import (
	"context"
	"sync"
	"time"

	"github.com/lumapix/lumapix-client/internal/adapter"
	"github.com/lumapix/lumapix-client/internal/logger"
	"github.com/lumapix/lumapix-client/internal/session"
)

const (
	defaultTokenRefreshInterval = 30 * time.Second
	defaultTokenRefreshLeeway   = time.Minute
)

type clientTokenJob struct {
	serverAdapter adapter.ServerAdapter
	sessions      session.Store
	logger        *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientTokenJob creates a clientTokenJob that proactively rotates the
// access token before it expires, so interactive requests rarely run into a
// 401 at all. The job is idle until Start is called.
func NewClientTokenJob(serverAdapter adapter.ServerAdapter, sessions session.Store, logger *logger.Logger) ClientTokenJob {
	return &clientTokenJob{
		serverAdapter: serverAdapter,
		sessions:      sessions,
		logger:        logger,
	}
}

// Start implements [ClientTokenJob]. It stops any previously running job,
// then launches a background goroutine that every interval checks the access
// token's remaining lifetime and refreshes the session when less than leeway
// remains. Non-positive durations fall back to defaults. The goroutine exits
// when ctx is cancelled or Stop is called.
func (j *clientTokenJob) Start(ctx context.Context, interval, leeway time.Duration) {
	if interval <= 0 {
		interval = defaultTokenRefreshInterval
	}
	if leeway <= 0 {
		leeway = defaultTokenRefreshLeeway
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refreshIfExpiring(jobCtx, leeway)
			}
		}
	}()
}

// Stop implements [ClientTokenJob]. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *clientTokenJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientTokenJob) refreshIfExpiring(ctx context.Context, leeway time.Duration) {
	current, ok := j.sessions.Current()
	if !ok || current.RefreshToken == "" {
		return
	}

	exp, err := current.AccessTokenExpiresAt()
	if err == nil && time.Until(exp) > leeway {
		return
	}
	// An unparsable expiry claim also lands here: refreshing is the safe
	// reaction to a token we cannot reason about.

	if _, err = j.serverAdapter.RefreshSession(ctx); err != nil {
		j.logger.Warn().Err(err).Msg("proactive token refresh failed")
		return
	}

	j.logger.Debug().Msg("access token proactively refreshed")
}
