package reminder

import (
	"context"
	"sync"
	"time"

	"github.com/eventra/eventra/internal/utils"
	"github.com/eventra/eventra/pkg/event"
	log "github.com/sirupsen/logrus"
)

// EventLister is the read path the scheduler snapshots on each run.
type EventLister interface {
	ListByStatus(ctx context.Context, status event.Status) ([]event.Event, error)
}

// NoticePublisher delivers notices to connected clients. Broadcast goes to
// everyone; Send goes to exactly one client and no-ops if it is gone.
type NoticePublisher interface {
	BroadcastNotice(notice Notice)
	SendNotice(clientID string, notice Notice)
}

// Scheduler periodically rescans approved events and emits reminder notices
// for those crossing a day threshold. It keeps no record of what was already
// sent: every tick recomputes from scratch, so consumers must tolerate
// repeated identical notices.
type Scheduler struct {
	store     EventLister
	publisher NoticePublisher
	clock     utils.Clock
	interval  time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped chan struct{}
}

func NewScheduler(store EventLister, publisher NoticePublisher, interval time.Duration) *Scheduler {
	return &Scheduler{
		store:     store,
		publisher: publisher,
		clock:     &utils.SystemClock{},
		interval:  interval,
	}
}

// Start launches the tick loop. Calling Start on a running scheduler is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.stopped = make(chan struct{})

	go s.run(ctx)
	log.Infof("Reminder scheduler started with %s interval", s.interval)
}

// Stop cancels the tick loop and waits for it to exit. Idempotent.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	stopped := s.stopped
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-stopped
	log.Info("Reminder scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.stopped)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick performs one snapshot-then-compute pass and broadcasts the resulting
// notices. A storage failure skips the tick; the next tick retries naturally.
func (s *Scheduler) Tick(ctx context.Context) {
	notices, err := s.computeCurrent(ctx)
	if err != nil {
		log.Errorf("reminder tick skipped: %v", err)
		return
	}
	for _, notice := range notices {
		s.publisher.BroadcastNotice(notice)
	}
	if len(notices) > 0 {
		log.Debugf("Broadcast %d event reminder(s)", len(notices))
	}
}

// RunFor recomputes reminders immediately and delivers them to a single
// client, without waiting for the next tick.
func (s *Scheduler) RunFor(ctx context.Context, clientID string) {
	notices, err := s.computeCurrent(ctx)
	if err != nil {
		log.Errorf("on-demand reminder check failed for client %s: %v", clientID, err)
		return
	}
	for _, notice := range notices {
		s.publisher.SendNotice(clientID, notice)
	}
	log.Debugf("Sent %d event reminder(s) to client %s", len(notices), clientID)
}

func (s *Scheduler) computeCurrent(ctx context.Context) ([]Notice, error) {
	events, err := s.store.ListByStatus(ctx, event.StatusApproved)
	if err != nil {
		return nil, err
	}
	return ComputeNotices(events, s.clock.Now()), nil
}
