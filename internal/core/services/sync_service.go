package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/TourOpsHQ/inbound_ops_backend/internal/apperrors"
	"github.com/TourOpsHQ/inbound_ops_backend/internal/core/domain"
	portsrepo "github.com/TourOpsHQ/inbound_ops_backend/internal/core/ports/repositories"
)

// SyncOptions tunes the synchronization controller.
type SyncOptions struct {
	// DebounceDuration is the idle window after the last mutation before a
	// write-back is issued.
	DebounceDuration time.Duration
	// LoadMaxAttempts bounds initial load retries.
	LoadMaxAttempts int
	// LoadRetryBaseDelay is the first retry delay; subsequent delays double.
	LoadRetryBaseDelay time.Duration
}

func (o *SyncOptions) applyDefaults() {
	if o.DebounceDuration <= 0 {
		o.DebounceDuration = time.Second
	}
	if o.LoadMaxAttempts <= 0 {
		o.LoadMaxAttempts = 4
	}
	if o.LoadRetryBaseDelay <= 0 {
		o.LoadRetryBaseDelay = 500 * time.Millisecond
	}
}

// SyncService keeps the in-memory working document consistent with the
// persisted copy under a rapid stream of whole-document mutations. It owns
// the document exclusively: editors read snapshots and propose replacements,
// never mutate in place.
//
// Write-back discipline: mutations restart a debounce timer, so only the
// newest document of a burst is persisted. At most one gateway save is in
// flight at any time; a debounce window that closes while a save is in
// flight marks the controller dirty, and the in-flight save is immediately
// followed by one more covering the latest state. The persisted version
// counter only ever advances, so a slow stale save can never regress the
// stored copy.
type SyncService struct {
	repo   portsrepo.RequestRepositoryFacade
	logger *slog.Logger
	opts   SyncOptions

	mu           sync.Mutex
	saveDone     *sync.Cond
	appState     domain.AppState
	syncState    domain.SyncState
	request      *domain.InboundRequest
	version      uint64
	savedVersion uint64
	lastSavedAt  *time.Time
	timer        *time.Timer
	saving       bool
	dirty        bool
	closed       bool
}

// NewSyncService creates the synchronization controller in the LOADING state.
func NewSyncService(repo portsrepo.RequestRepositoryFacade, logger *slog.Logger, opts SyncOptions) *SyncService {
	opts.applyDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	s := &SyncService{
		repo:      repo,
		logger:    logger,
		opts:      opts,
		appState:  domain.AppLoading,
		syncState: domain.SyncSaved,
	}
	s.saveDone = sync.NewCond(&s.mu)
	return s
}

// Initialize loads the working document from the gateway with bounded
// exponential backoff. Idempotent once READY.
func (s *SyncService) Initialize(ctx context.Context) error {
	s.mu.Lock()
	if s.appState == domain.AppReady {
		s.mu.Unlock()
		return nil
	}
	s.appState = domain.AppLoading
	s.mu.Unlock()

	var lastErr error
	for attempt := 1; attempt <= s.opts.LoadMaxAttempts; attempt++ {
		request, err := s.repo.LoadRequest(ctx)
		if err == nil {
			request.Normalize()
			s.mu.Lock()
			s.request = request
			s.version = 1
			s.savedVersion = 1
			s.appState = domain.AppReady
			s.syncState = domain.SyncSaved
			s.mu.Unlock()
			s.logger.Info("working document loaded",
				slog.String("request_number", request.RequestNumber),
				slog.Int("attempt", attempt))
			return nil
		}
		lastErr = err
		s.logger.Warn("document load attempt failed",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()))

		if attempt == s.opts.LoadMaxAttempts {
			break
		}
		delay := s.opts.LoadRetryBaseDelay * time.Duration(1<<(attempt-1))
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			lastErr = ctx.Err()
			attempt = s.opts.LoadMaxAttempts
		}
	}

	s.mu.Lock()
	s.appState = domain.AppError
	s.mu.Unlock()
	return fmt.Errorf("%w: %s", apperrors.ErrLoadFailure, lastErr)
}

// RetryLoad re-runs the initial load after a load failure.
func (s *SyncService) RetryLoad(ctx context.Context) error {
	return s.Initialize(ctx)
}

// Document returns a snapshot of the current working document.
func (s *SyncService) Document() (*domain.InboundRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.appState != domain.AppReady {
		return nil, apperrors.ErrNotReady
	}
	return s.request.Clone(), nil
}

// Apply replaces the working document immediately and synchronously: the
// editor-visible copy is always the latest mutation regardless of pending or
// in-flight saves. The debounce timer restarts against the new document.
func (s *SyncService) Apply(ctx context.Context, request domain.InboundRequest) (domain.SyncStatus, error) {
	request.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.appState != domain.AppReady {
		return s.statusLocked(), apperrors.ErrNotReady
	}
	if s.closed {
		return s.statusLocked(), fmt.Errorf("synchronization controller is closed")
	}
	s.request = request.Clone()
	s.version++
	s.syncState = domain.SyncSaving
	s.scheduleLocked(s.opts.DebounceDuration)
	return s.statusLocked(), nil
}

// RetrySave schedules an immediate write-back attempt when unsaved changes
// exist. Used by the manual retry hook after a save failure.
func (s *SyncService) RetrySave(ctx context.Context) (domain.SyncStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.appState != domain.AppReady {
		return s.statusLocked(), apperrors.ErrNotReady
	}
	if s.savedVersion == s.version && s.syncState == domain.SyncSaved {
		return s.statusLocked(), nil
	}
	s.syncState = domain.SyncSaving
	s.scheduleLocked(0)
	return s.statusLocked(), nil
}

// Status reports the current load/sync snapshot.
func (s *SyncService) Status() domain.SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

// Close cancels the pending debounce timer, waits for an in-flight save and
// issues one final synchronous save if unsaved changes remain. Data loss on
// shutdown is bounded to a save the gateway rejects.
func (s *SyncService) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	for s.saving {
		s.saveDone.Wait()
	}
	needsFinal := s.appState == domain.AppReady && s.version > s.savedVersion
	var snapshot *domain.InboundRequest
	var version uint64
	if needsFinal {
		snapshot = s.request.Clone()
		version = s.version
	}
	s.mu.Unlock()

	if !needsFinal {
		return
	}
	if err := s.repo.SaveRequest(context.Background(), *snapshot); err != nil {
		s.logger.Error("final write-back on close failed", slog.String("error", err.Error()))
		return
	}
	s.mu.Lock()
	if version > s.savedVersion {
		s.savedVersion = version
		now := time.Now()
		s.lastSavedAt = &now
		if s.savedVersion == s.version {
			s.syncState = domain.SyncSaved
		}
	}
	s.mu.Unlock()
}

// scheduleLocked (re)starts the debounce timer. Callers hold s.mu.
func (s *SyncService) scheduleLocked(d time.Duration) {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(d, s.flush)
}

// flush runs on the timer goroutine when a debounce window closes. It issues
// at most one gateway save at a time and chains one follow-up save when a
// window closed mid-flight.
func (s *SyncService) flush() {
	s.mu.Lock()
	s.timer = nil
	if s.closed {
		s.mu.Unlock()
		return
	}
	if s.saving {
		// Hold this window back; the in-flight save chains a follow-up.
		s.dirty = true
		s.mu.Unlock()
		return
	}
	s.saving = true
	for {
		version := s.version
		snapshot := s.request.Clone()
		s.mu.Unlock()

		// Detached context: a save outlives the mutation that scheduled it
		// and is never cancelled once issued.
		err := s.repo.SaveRequest(context.Background(), *snapshot)

		s.mu.Lock()
		if err != nil {
			s.logger.Warn("write-back failed",
				slog.Uint64("version", version),
				slog.String("error", err.Error()))
			if s.version == version && s.timer == nil {
				s.syncState = domain.SyncError
			}
		} else {
			if version > s.savedVersion {
				s.savedVersion = version
				now := time.Now()
				s.lastSavedAt = &now
			}
			if s.savedVersion == s.version && s.timer == nil && !s.dirty {
				s.syncState = domain.SyncSaved
			}
		}
		if s.dirty {
			s.dirty = false
			continue
		}
		s.saving = false
		s.saveDone.Broadcast()
		s.mu.Unlock()
		return
	}
}

func (s *SyncService) statusLocked() domain.SyncStatus {
	status := domain.SyncStatus{
		AppState:     s.appState,
		SyncState:    s.syncState,
		Version:      s.version,
		SavedVersion: s.savedVersion,
	}
	if s.lastSavedAt != nil {
		t := *s.lastSavedAt
		status.LastSavedAt = &t
	}
	return status
}
