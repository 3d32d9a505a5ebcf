// Package simulator emulates other participants' activity so the wall
// feels alive without a real transport.
package simulator

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"eventwall/internal/feed"
	"eventwall/internal/models"
	"eventwall/internal/notifications"
	"eventwall/internal/observability"
)

// TrialSource decides, per post per tick, whether a synthetic like
// lands. It is injectable so tests can force or suppress events.
type TrialSource func() bool

// Bernoulli returns a seeded trial source succeeding with probability p.
func Bernoulli(p float64, seed int64) TrialSource {
	rng := rand.New(rand.NewSource(seed))
	return func() bool {
		return rng.Float64() < p
	}
}

// Simulator applies synthetic like increments to the feed on a fixed
// cadence and forwards each one as a notification. It holds live
// references to the stores, never snapshots.
type Simulator struct {
	mu      sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}

	feed     *feed.Store
	center   *notifications.Center
	interval time.Duration
	trial    TrialSource
	active   func() bool
	logger   *observability.StoreLogger
}

// New creates a simulator over the given stores. active gates ticking
// on session state; nil means always active.
func New(feedStore *feed.Store, center *notifications.Center, interval time.Duration, trial TrialSource, active func() bool) *Simulator {
	return &Simulator{
		feed:     feedStore,
		center:   center,
		interval: interval,
		trial:    trial,
		active:   active,
		logger:   observability.NewStoreLogger("simulator"),
	}
}

// Start launches the tick loop. Starting a running simulator is an
// error.
func (s *Simulator) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return models.NewValidationError("Simulator already running")
	}
	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go s.loop(ctx, s.stop, s.done)
	return nil
}

// Stop halts the simulator and waits for the loop to exit. After Stop
// returns, no further mutation can occur: the loop is gone and Tick
// refuses to run.
func (s *Simulator) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stop)
	done := s.done
	s.mu.Unlock()

	<-done
}

// Running reports whether the simulator is started.
func (s *Simulator) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Simulator) loop(ctx context.Context, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick runs one simulation pass: an independent trial per post, each
// success applying a synthetic like and pushing a notification. It is a
// no-op on a stopped simulator or while the session gate is inactive.
// The mutex is held for the whole pass, so a Tick racing a concurrent
// Stop either finishes before Stop returns or sees running=false and
// does nothing.
func (s *Simulator) Tick(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	if s.active != nil && !s.active() {
		return
	}

	observability.SimulatorTicks.Inc()

	for _, id := range s.feed.PostIDs() {
		if !s.trial() {
			continue
		}
		post, err := s.feed.Boost(id)
		if err != nil {
			s.logger.LogWarn("tick", err)
			continue
		}
		observability.SyntheticLikes.Inc()
		s.center.Push(ctx, models.NotificationLike,
			fmt.Sprintf("Someone liked %s's post", post.Author.Name))
	}
}
