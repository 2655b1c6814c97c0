package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const debounceDelay = 500 * time.Millisecond

// Watcher reloads the configuration file on change and swaps it into a Store.
// It is meant for development; production deployments restart instead.
type Watcher struct {
	path      string
	store     *Store
	logger    *zap.Logger
	watcher   *fsnotify.Watcher
	callbacks []func(*Config)
	mu        sync.RWMutex
	stopCh    chan struct{}
	done      chan struct{}
	stopOnce  sync.Once
}

// NewWatcher starts watching path. The parent directory is watched so that
// editors which replace the file on save are still noticed.
func NewWatcher(path string, store *Store, logger *zap.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	w := &Watcher{
		path:    filepath.Clean(path),
		store:   store,
		logger:  logger,
		watcher: fsWatcher,
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.watchLoop()

	logger.Info("Configuration hot reloading enabled", zap.String("file", path))
	return w, nil
}

// OnChange registers a callback run after each successful reload.
func (w *Watcher) OnChange(callback func(*Config)) {
	w.mu.Lock()
	w.callbacks = append(w.callbacks, callback)
	w.mu.Unlock()
}

// Stop ends the watch loop and waits for it to exit.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		<-w.done
	})
}

func (w *Watcher) watchLoop() {
	defer close(w.done)
	defer w.watcher.Close()

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path || !isConfigFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("Configuration file changed",
				zap.String("file", event.Name),
				zap.String("operation", event.Op.String()),
			)
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, w.reload)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("File watcher error", zap.Error(err))

		case <-w.stopCh:
			w.logger.Info("Stopping configuration watcher")
			return
		}
	}
}

func (w *Watcher) reload() {
	next, err := LoadFile(w.path)
	if err != nil {
		// Keep serving the last good configuration.
		w.logger.Error("Invalid configuration after reload", zap.Error(err))
		return
	}

	prev := w.store.Swap(next)
	w.logChanges(prev, next)

	w.mu.RLock()
	callbacks := make([]func(*Config), len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	for i, cb := range callbacks {
		func() {
			defer func() {
				if r := recover(); r != nil {
					w.logger.Error("Callback panicked", zap.Int("callback_index", i), zap.Any("panic", r))
				}
			}()
			cb(next)
		}()
	}

	w.logger.Info("Configuration reloaded", zap.Int("callbacks_notified", len(callbacks)))
}

func (w *Watcher) logChanges(prev, next *Config) {
	if prev == nil {
		return
	}
	changes := make([]string, 0)
	if prev.LogLevel != next.LogLevel {
		changes = append(changes, fmt.Sprintf("log_level: %s -> %s", prev.LogLevel, next.LogLevel))
	}
	if prev.AI.Provider != next.AI.Provider {
		changes = append(changes, fmt.Sprintf("ai.provider: %s -> %s", prev.AI.Provider, next.AI.Provider))
	}
	for plan, limits := range next.Plans {
		if prev.Plans[plan] != limits {
			changes = append(changes, fmt.Sprintf("plans.%s: %+v -> %+v", plan, prev.Plans[plan], limits))
		}
	}
	if len(changes) > 0 {
		w.logger.Info("Configuration changes detected", zap.Strings("changes", changes))
	}
}
