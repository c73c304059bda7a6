package infrastructure

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeStatusSetter struct {
	mu      sync.Mutex
	updates []string
	notify  chan struct{}
}

func (f *fakeStatusSetter) UpdateGameStatus(_ int, name string) error {
	f.mu.Lock()
	f.updates = append(f.updates, name)
	f.mu.Unlock()
	select {
	case f.notify <- struct{}{}:
	default:
	}
	return nil
}

func (f *fakeStatusSetter) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.updates)
}

type fakeStatusSource struct {
	text string
	err  error
}

func (f fakeStatusSource) StatusText(context.Context) (string, error) {
	return f.text, f.err
}

func TestPresenceUpdater_UpdatesImmediatelyAndOnTick(t *testing.T) {
	setter := &fakeStatusSetter{notify: make(chan struct{}, 1)}
	p := NewPresenceUpdater(setter, fakeStatusSource{text: "status"}, 10*time.Millisecond)

	p.Start(context.Background())
	defer p.Stop()

	for range 2 {
		select {
		case <-setter.notify:
		case <-time.After(2 * time.Second):
			t.Fatal("expected presence update")
		}
	}

	setter.mu.Lock()
	defer setter.mu.Unlock()
	if setter.updates[0] != "status" {
		t.Errorf("expected status text, got %q", setter.updates[0])
	}
}

func TestPresenceUpdater_StartIsIdempotent(t *testing.T) {
	setter := &fakeStatusSetter{notify: make(chan struct{}, 1)}
	p := NewPresenceUpdater(setter, fakeStatusSource{text: "status"}, time.Hour)

	p.Start(context.Background())
	p.Start(context.Background())

	select {
	case <-setter.notify:
	case <-time.After(2 * time.Second):
		t.Fatal("expected initial update")
	}
	p.Stop()

	if got := setter.count(); got != 1 {
		t.Errorf("expected a single loop to run, got %d updates", got)
	}
}

func TestPresenceUpdater_SourceErrorSkipsUpdate(t *testing.T) {
	setter := &fakeStatusSetter{notify: make(chan struct{}, 1)}
	p := NewPresenceUpdater(setter, fakeStatusSource{err: errors.New("db locked")}, time.Hour)

	p.Start(context.Background())
	p.Stop()

	if got := setter.count(); got != 0 {
		t.Errorf("expected no updates, got %d", got)
	}
}

func TestPresenceUpdater_StopWithoutStart(t *testing.T) {
	p := NewPresenceUpdater(&fakeStatusSetter{}, fakeStatusSource{}, time.Second)
	p.Stop()
}
