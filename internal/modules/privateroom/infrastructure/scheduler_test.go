package infrastructure

import (
	"testing"
	"time"
)

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func newFakeScheduler() (*TimerScheduler, *[]*fakeTimer) {
	timers := &[]*fakeTimer{}
	s := NewTimerScheduler()
	s.afterFunc = func(d time.Duration, f func()) stopper {
		t := &fakeTimer{d: d, f: f}
		*timers = append(*timers, t)
		return t
	}
	return s, timers
}

func TestTimerScheduler_RunsTask(t *testing.T) {
	s, timers := newFakeScheduler()

	ran := 0
	s.Schedule(1, 30*time.Minute, func() { ran++ })

	if len(*timers) != 1 || (*timers)[0].d != 30*time.Minute {
		t.Fatalf("expected one 30m timer, got %+v", *timers)
	}
	(*timers)[0].f()

	if ran != 1 {
		t.Errorf("expected task to run once, ran %d times", ran)
	}
	if s.Pending() != 0 {
		t.Errorf("expected no pending tasks, got %d", s.Pending())
	}
}

func TestTimerScheduler_Cancel(t *testing.T) {
	s, timers := newFakeScheduler()

	ran := false
	s.Schedule(1, time.Minute, func() { ran = true })

	if !s.Cancel(1) {
		t.Fatal("expected pending task to be cancelled")
	}
	if !(*timers)[0].stopped {
		t.Error("expected timer to be stopped")
	}
	if s.Cancel(1) {
		t.Error("expected second cancel to report nothing pending")
	}

	// A timer that fires after cancellation must not run the task.
	(*timers)[0].f()
	if ran {
		t.Error("expected cancelled task not to run")
	}
}

func TestTimerScheduler_ScheduleReplaces(t *testing.T) {
	s, timers := newFakeScheduler()

	var ran []string
	s.Schedule(1, time.Minute, func() { ran = append(ran, "first") })
	s.Schedule(1, time.Minute, func() { ran = append(ran, "second") })

	if !(*timers)[0].stopped {
		t.Error("expected replaced timer to be stopped")
	}
	(*timers)[0].f()
	(*timers)[1].f()

	if len(ran) != 1 || ran[0] != "second" {
		t.Errorf("expected only the replacement to run, got %v", ran)
	}
}

func TestTimerScheduler_Stop(t *testing.T) {
	s, timers := newFakeScheduler()

	s.Schedule(1, time.Minute, func() {})
	s.Schedule(2, time.Minute, func() {})
	s.Stop()

	for i, tm := range *timers {
		if !tm.stopped {
			t.Errorf("expected timer %d to be stopped", i)
		}
	}
	if s.Pending() != 0 {
		t.Errorf("expected no pending tasks, got %d", s.Pending())
	}

	s.Schedule(3, time.Minute, func() {})
	if len(*timers) != 2 {
		t.Error("expected schedule after stop to be ignored")
	}
}
