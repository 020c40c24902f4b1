package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spirewatch/spire-companion/internal/gamedata"
	"github.com/spirewatch/spire-companion/internal/run"
)

func writeState(t *testing.T, path string, st *run.State) {
	t.Helper()
	if err := st.SaveFile(path); err != nil {
		t.Fatalf("Failed to write state file: %v", err)
	}
}

func TestWatcherValidation(t *testing.T) {
	if _, err := New("", func(*run.State) {}); err == nil {
		t.Error("expected an error for an empty path")
	}
	if _, err := New("state.json", nil); err == nil {
		t.Error("expected an error for a nil callback")
	}
}

func TestWatcherInitialLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.json")

	st := run.NewState(gamedata.Ironclad, 80)
	st.Deck = run.StarterDeck(gamedata.Ironclad)
	writeState(t, path, st)

	states := make(chan *run.State, 1)
	w, err := New(path, func(s *run.State) {
		select {
		case states <- s:
		default:
		}
	}, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = w.Run(ctx)
		close(done)
	}()

	select {
	case got := <-states:
		if got.ID != st.ID {
			t.Errorf("loaded run %s, want %s", got.ID, st.ID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the initial load")
	}

	cancel()
	<-done
}

func TestWatcherPicksUpRewrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.json")

	st := run.NewState(gamedata.Ironclad, 80)
	writeState(t, path, st)

	states := make(chan *run.State, 4)
	w, err := New(path, func(s *run.State) { states <- s }, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	// Drain the initial load.
	select {
	case <-states:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the initial load")
	}

	st.Floor = 7
	writeState(t, path, st)

	deadline := time.After(3 * time.Second)
	for {
		select {
		case got := <-states:
			if got.Floor == 7 {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for the rewrite to be observed")
		}
	}
}

func TestWatcherReportsParseErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("Failed to seed bad file: %v", err)
	}

	errs := make(chan error, 1)
	w, err := New(path, func(*run.State) {}, WithErrorHandler(func(e error) {
		select {
		case errs <- e:
		default:
		}
	}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	select {
	case <-errs:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the parse error")
	}
}
