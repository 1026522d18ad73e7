package ai

import (
	"math/rand"
	"sync"
	"time"

	"github.com/harrypdev/caravan-card-game/game/engine"
)

// Scheduler arms a single delayed "think" timer for the computer opponent.
// Every Schedule or Invalidate bumps a generation counter; a timer that fires
// with a stale generation must be ignored by the callback. At most one timer
// is outstanding at a time.
type Scheduler struct {
	mu    sync.Mutex
	rng   *rand.Rand
	gen   uint64
	timer *time.Timer
	fire  func(gen uint64, expectedMoves int)
}

// NewScheduler creates a scheduler that invokes fire after each think delay.
// fire runs on the timer goroutine and receives the generation the timer was
// armed with plus the move count observed at arming time; it must drop the
// move when either no longer matches.
func NewScheduler(fire func(gen uint64, expectedMoves int)) *Scheduler {
	return &Scheduler{
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		fire: fire,
	}
}

// Schedule arms the think timer with a delay drawn from the profile's range,
// replacing any outstanding timer. expectedMoves is the state's move count at
// scheduling time.
func (s *Scheduler) Schedule(cfg *engine.RulesConfig, expectedMoves int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++

	delay := s.thinkDelay(cfg)
	gen := s.gen
	s.timer = time.AfterFunc(delay, func() {
		s.fire(gen, expectedMoves)
	})
}

// Invalidate cancels any outstanding timer and stales its generation, so a
// timer that already fired but has not run yet becomes a no-op.
func (s *Scheduler) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}

// Current returns the live generation. A callback compares its own generation
// against this before acting.
func (s *Scheduler) Current() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

func (s *Scheduler) thinkDelay(cfg *engine.RulesConfig) time.Duration {
	min, max := engine.DefaultRulesConfig().ThinkDelayMinMS, engine.DefaultRulesConfig().ThinkDelayMaxMS
	if cfg != nil {
		min, max = cfg.ThinkDelayMinMS, cfg.ThinkDelayMaxMS
	}
	ms := min
	if max > min {
		ms = min + s.rng.Intn(max-min)
	}
	return time.Duration(ms) * time.Millisecond
}
