// Package schedule runs periodic background work on gocron. Every job is
// identified by a Token so the screen that started it can cancel it when the
// screen goes away.
package schedule

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"

	"pony/internal/clock"
)

var ErrShutdown = errors.New("scheduler is shut down")

// Token identifies a scheduled job
type Token struct {
	id uuid.UUID
}

// IsZero reports whether the token refers to no job
func (t Token) IsZero() bool {
	return t.id == uuid.Nil
}

// String is the job id, used to tell jobs with the same name apart in logs
func (t Token) String() string {
	return t.id.String()
}

// Scheduler wraps a gocron scheduler and tracks the jobs it started
type Scheduler struct {
	sched gocron.Scheduler

	mu     sync.Mutex
	jobs   map[uuid.UUID]string
	closed bool
}

// New creates a stopped scheduler driven by c
func New(c clock.Clock) (*Scheduler, error) {
	sched, err := gocron.NewScheduler(gocron.WithClock(c))
	if err != nil {
		return nil, fmt.Errorf("creating scheduler: %w", err)
	}
	return &Scheduler{sched: sched, jobs: make(map[uuid.UUID]string)}, nil
}

// Every runs fn every d until the returned token is cancelled. A run that
// is still going when the next one is due is skipped.
func (s *Scheduler) Every(name string, d time.Duration, fn func()) (Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return Token{}, ErrShutdown
	}

	job, err := s.sched.NewJob(
		gocron.DurationJob(d),
		gocron.NewTask(fn),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return Token{}, fmt.Errorf("scheduling %s: %w", name, err)
	}

	token := Token{id: job.ID()}
	s.jobs[token.id] = name
	log.Printf("Scheduled %s (%s) every %s", name, token, d)
	return token, nil
}

// Cancel stops a job. Cancelling an unknown or already cancelled token is a
// no-op.
func (s *Scheduler) Cancel(t Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, ok := s.jobs[t.id]
	if !ok || s.closed {
		return nil
	}
	delete(s.jobs, t.id)
	if err := s.sched.RemoveJob(t.id); err != nil && !errors.Is(err, gocron.ErrJobNotFound) {
		return fmt.Errorf("cancelling %s: %w", name, err)
	}
	log.Printf("Cancelled %s (%s)", name, t)
	return nil
}

// Active returns the names of the jobs still scheduled
func (s *Scheduler) Active() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.jobs))
	for _, name := range s.jobs {
		names = append(names, name)
	}
	return names
}

// Start begins running jobs
func (s *Scheduler) Start() {
	s.sched.Start()
}

// Shutdown stops every job. The scheduler cannot be reused.
func (s *Scheduler) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	clear(s.jobs)
	return s.sched.Shutdown()
}
