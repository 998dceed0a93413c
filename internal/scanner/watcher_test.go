package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitForResult(t *testing.T, results <-chan Result) Result {
	t.Helper()
	select {
	case result, ok := <-results:
		if !ok {
			t.Fatal("results channel closed early")
		}
		return result
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for scan result")
		return Result{}
	}
}

func TestWatcherEmitsBaselineAndRescansOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "listings.csv")
	if err := os.WriteFile(path, []byte("Madrid,strong\n"), 0644); err != nil {
		t.Fatalf("write listing: %v", err)
	}

	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("create watcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("start watcher: %v", err)
	}
	defer w.Close()

	baseline := waitForResult(t, w.Results())
	if baseline.Weak || !baseline.Known {
		t.Fatalf("unexpected baseline: %+v", baseline)
	}

	// Let the debounce window pass before the first change.
	time.Sleep(150 * time.Millisecond)

	if err := os.WriteFile(path, []byte("Madrid,strong\nLas Vegas,weak\n"), 0644); err != nil {
		t.Fatalf("update listing: %v", err)
	}

	updated := waitForResult(t, w.Results())
	if !updated.Weak || !updated.Known {
		t.Fatalf("unexpected rescan result: %+v", updated)
	}
}

func TestWatcherReportsUnknownAfterListingRemoval(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "listings.csv")
	if err := os.WriteFile(path, []byte("Madrid,strong\n"), 0644); err != nil {
		t.Fatalf("write listing: %v", err)
	}

	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("create watcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("start watcher: %v", err)
	}
	defer w.Close()

	waitForResult(t, w.Results())
	time.Sleep(150 * time.Millisecond)

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove listing: %v", err)
	}

	gone := waitForResult(t, w.Results())
	if gone.Known {
		t.Fatalf("removed listing still reported known: %+v", gone)
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "listings.csv")
	if err := os.WriteFile(path, []byte("Madrid,strong\n"), 0644); err != nil {
		t.Fatalf("write listing: %v", err)
	}

	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("create watcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("start watcher: %v", err)
	}
	defer w.Close()

	waitForResult(t, w.Results())
	time.Sleep(150 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("weak\n"), 0644); err != nil {
		t.Fatalf("write unrelated file: %v", err)
	}

	select {
	case result, ok := <-w.Results():
		if ok {
			t.Fatalf("unrelated file triggered a rescan: %+v", result)
		}
	case <-time.After(300 * time.Millisecond):
		// No rescan; expected.
	}
}
