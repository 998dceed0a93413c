package scanner

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Result is one scan outcome delivered by a Watcher.
type Result struct {
	Weak  bool
	Known bool
}

// Watcher re-scans the listing file whenever it changes on disk and delivers
// each outcome on a channel. It watches the file's directory rather than the
// file itself so create-after-delete (the common editor save pattern) keeps
// working.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	lastSeen time.Time
	results  chan Result
	logger   *zap.Logger
	running  bool
	done     chan struct{}
}

// NewWatcher builds a Watcher for the listing at path on the real
// filesystem.
func NewWatcher(path string, logger *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		watcher:  fsw,
		path:     filepath.Clean(path),
		debounce: 100 * time.Millisecond,
		results:  make(chan Result, 1),
		logger:   logger,
		done:     make(chan struct{}),
	}, nil
}

// Results delivers one Result per (debounced) change to the listing. The
// channel is closed when the watcher stops.
func (w *Watcher) Results() <-chan Result {
	return w.results
}

// Start begins watching and performs one immediate scan so consumers always
// get a baseline result. Non-blocking; the watch loop runs until ctx ends or
// Close is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}
	w.logger.Info("watching listing", zap.String("path", w.path))

	go w.run(ctx)
	return nil
}

// Close stops the watch loop and waits for it to drain.
func (w *Watcher) Close() error {
	w.mu.Lock()
	started := w.running
	w.mu.Unlock()

	err := w.watcher.Close()
	if started {
		<-w.done
	}
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)
	defer close(w.results)

	w.emit(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) {
				continue
			}
			if !w.shouldEmit() {
				continue
			}
			w.emit(ctx)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", zap.Error(err))
		}
	}
}

// shouldEmit debounces rapid save sequences.
func (w *Watcher) shouldEmit() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	now := time.Now()
	if now.Sub(w.lastSeen) < w.debounce {
		return false
	}
	w.lastSeen = now
	return true
}

func (w *Watcher) emit(ctx context.Context) {
	dir, file := filepath.Split(w.path)
	if dir == "" {
		dir = "."
	}
	weak, known := New(os.DirFS(filepath.Clean(dir)), file, WithLogger(w.logger)).Scan()
	select {
	case w.results <- Result{Weak: weak, Known: known}:
	case <-ctx.Done():
	}
}
