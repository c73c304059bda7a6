package infrastructure

import (
	"sync"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/esigns/signbot/internal/modules/privateroom/application/ports"
)

// Ensure TimerScheduler implements ports.Scheduler.
var _ ports.Scheduler = (*TimerScheduler)(nil)

type stopper interface {
	Stop() bool
}

type task struct {
	timer stopper
}

// TimerScheduler runs keyed tasks on timers.
type TimerScheduler struct {
	mu      sync.Mutex
	tasks   map[snowflake.ID]*task
	stopped bool

	afterFunc func(d time.Duration, f func()) stopper
}

// NewTimerScheduler creates a new TimerScheduler.
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{
		tasks: make(map[snowflake.ID]*task),
		afterFunc: func(d time.Duration, f func()) stopper {
			return time.AfterFunc(d, f)
		},
	}
}

// Schedule runs fn after d, replacing any task pending under key.
// It does nothing once the scheduler is stopped.
func (s *TimerScheduler) Schedule(key snowflake.ID, d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	if old, ok := s.tasks[key]; ok {
		old.timer.Stop()
	}

	t := &task{}
	s.tasks[key] = t
	t.timer = s.afterFunc(d, func() {
		s.mu.Lock()
		if s.tasks[key] != t {
			s.mu.Unlock()
			return
		}
		delete(s.tasks, key)
		s.mu.Unlock()

		fn()
	})
}

// Cancel cancels the task under key and reports whether one was pending.
func (s *TimerScheduler) Cancel(key snowflake.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[key]
	if !ok {
		return false
	}
	t.timer.Stop()
	delete(s.tasks, key)
	return true
}

// Pending returns the number of pending tasks.
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Stop cancels every pending task.
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for key, t := range s.tasks {
		t.timer.Stop()
		delete(s.tasks, key)
	}
}
