package guides

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/noticedesk/noticedesk.uk/internal/platform/timeouts"
)

// Watcher hot-reloads a guide directory override while the server runs.
type Watcher struct {
	library  *Library
	dir      string
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewWatcher creates a watcher that reloads library from dir on edits.
func NewWatcher(library *Library, dir string) (*Watcher, error) {
	dir = strings.TrimSpace(dir)
	if library == nil {
		return nil, fmt.Errorf("guide library is required")
	}
	if dir == "" {
		return nil, fmt.Errorf("guides directory is required")
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create guides watcher: %w", err)
	}
	if err := fsWatcher.Add(dir); err != nil {
		_ = fsWatcher.Close()
		return nil, fmt.Errorf("watch guides dir %s: %w", dir, err)
	}

	return &Watcher{
		library:  library,
		dir:      dir,
		watcher:  fsWatcher,
		debounce: timeouts.GuideReload,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching in a goroutine. It is non-blocking.
func (w *Watcher) Start(ctx context.Context) {
	if w == nil {
		return
	}
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	log.Printf("guides watching dir=%s", w.dir)
	go w.run(ctx)
}

// Stop stops the watcher and waits for the loop to exit.
func (w *Watcher) Stop() {
	if w == nil {
		return
	}
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	if err := w.watcher.Close(); err != nil {
		log.Printf("guides watcher close failed err=%v", err)
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	// Rapid editor save bursts settle for one debounce window before a
	// single reload.
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !relevantEvent(event) {
				continue
			}
			pending = time.After(w.debounce)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("guides watch error err=%v", err)
		case <-pending:
			pending = nil
			if err := w.library.LoadDir(w.dir); err != nil {
				log.Printf("guides reload failed dir=%s err=%v", w.dir, err)
				continue
			}
			log.Printf("guides reloaded dir=%s count=%d", w.dir, len(w.library.All()))
		}
	}
}

func relevantEvent(event fsnotify.Event) bool {
	if !strings.HasSuffix(event.Name, ".md") {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}
