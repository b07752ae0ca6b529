package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/volunteerhub/api/internal/service"
)

// TokenCleanup periodically removes expired refresh tokens so the token
// table does not grow without bound.
type TokenCleanup struct {
	tokenRepo service.TokenRepository
	interval  time.Duration
	stopCh    chan struct{}
	wg        sync.WaitGroup
	running   bool
	mu        sync.Mutex
}

// NewTokenCleanup creates a new token cleanup job
func NewTokenCleanup(tokenRepo service.TokenRepository, interval time.Duration) *TokenCleanup {
	if interval == 0 {
		interval = time.Hour
	}
	return &TokenCleanup{
		tokenRepo: tokenRepo,
		interval:  interval,
		stopCh:    make(chan struct{}),
	}
}

// Start begins the cleanup job
func (j *TokenCleanup) Start() {
	j.mu.Lock()
	if j.running {
		j.mu.Unlock()
		return
	}
	j.running = true
	j.mu.Unlock()

	j.wg.Add(1)
	go j.run()
	slog.Info("token cleanup job started", slog.Duration("interval", j.interval))
}

// Stop gracefully stops the cleanup job
func (j *TokenCleanup) Stop() {
	j.mu.Lock()
	if !j.running {
		j.mu.Unlock()
		return
	}
	j.running = false
	j.mu.Unlock()

	close(j.stopCh)
	j.wg.Wait()
	slog.Info("token cleanup job stopped")
}

// IsRunning returns whether the job is running
func (j *TokenCleanup) IsRunning() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.running
}

func (j *TokenCleanup) run() {
	defer j.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			if err := j.RunOnce(ctx); err != nil {
				slog.Error("token cleanup failed", slog.String("error", err.Error()))
			}
			cancel()
		case <-j.stopCh:
			return
		}
	}
}

// RunOnce performs a single cleanup pass
func (j *TokenCleanup) RunOnce(ctx context.Context) error {
	return j.tokenRepo.DeleteExpiredTokens(ctx)
}
