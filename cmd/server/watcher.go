package main

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/graphdl/taskparse"
)

// lexiconWatcher watches a lexicon overlay directory and swaps a freshly
// loaded parser into the service once its files settle after a change.
type lexiconWatcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	dir      string
	svc      *service
	pending  map[string]time.Time
	debounce time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

func newLexiconWatcher(dir string, svc *service) (*lexiconWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &lexiconWatcher{
		watcher:  fsw,
		dir:      dir,
		svc:      svc,
		pending:  make(map[string]time.Time),
		debounce: 500 * time.Millisecond, // debounce rapid saves
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. Non-blocking; the event loop runs in a goroutine.
func (lw *lexiconWatcher) Start(ctx context.Context) error {
	lw.mu.Lock()
	if lw.running {
		lw.mu.Unlock()
		return nil
	}
	lw.running = true
	lw.mu.Unlock()

	if err := lw.watcher.Add(lw.dir); err != nil {
		return err
	}
	logger.Info("watching lexicon directory", zap.String("dir", lw.dir))
	go lw.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to drain.
func (lw *lexiconWatcher) Stop() {
	lw.mu.Lock()
	if !lw.running {
		lw.mu.Unlock()
		return
	}
	lw.running = false
	lw.mu.Unlock()

	close(lw.stopCh)
	<-lw.doneCh
	if err := lw.watcher.Close(); err != nil {
		logger.Error("close watcher", zap.Error(err))
	}
}

func (lw *lexiconWatcher) run(ctx context.Context) {
	defer close(lw.doneCh)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-lw.stopCh:
			return
		case event, ok := <-lw.watcher.Events:
			if !ok {
				return
			}
			lw.handleEvent(event)
		case err, ok := <-lw.watcher.Errors:
			if !ok {
				return
			}
			logger.Error("lexicon watcher", zap.Error(err))
		case <-ticker.C:
			lw.settle()
		}
	}
}

// handleEvent records lexicon file changes for debounced processing.
func (lw *lexiconWatcher) handleEvent(event fsnotify.Event) {
	ext := strings.ToLower(filepath.Ext(event.Name))
	if ext != ".tsv" && ext != ".txt" {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}
	lw.mu.Lock()
	lw.pending[event.Name] = time.Now()
	lw.mu.Unlock()
}

// settle reloads once after every recorded change sits past the debounce
// window. A single reload covers any number of edited files.
func (lw *lexiconWatcher) settle() {
	lw.mu.Lock()
	now := time.Now()
	ready := len(lw.pending) > 0
	for _, at := range lw.pending {
		if now.Sub(at) < lw.debounce {
			ready = false
			break
		}
	}
	if ready {
		lw.pending = make(map[string]time.Time)
	}
	lw.mu.Unlock()

	if ready {
		lw.reload()
	}
}

func (lw *lexiconWatcher) reload() {
	p, err := taskparse.NewFromDir(lw.dir)
	if err != nil {
		// Keep serving with the previous lexicon.
		logger.Error("reload lexicon", zap.String("dir", lw.dir), zap.Error(err))
		return
	}
	lw.svc.swap(p)
	logger.Info("lexicon reloaded", zap.Any("sizes", p.Lexicon().Size()))
}
