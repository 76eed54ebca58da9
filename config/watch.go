package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long the watcher waits after the last file event before reloading.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a configuration file whenever it changes on disk.
// The newest successfully loaded configuration is delivered on Updates; a reader that falls
// behind only ever sees the latest one. Load failures are delivered on Errors.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	logger   *zap.Logger

	Updates chan *Config
	Errors  chan error

	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher starts watching path. The file's directory is watched rather than the file so
// that editors which replace the file on save are handled.
//
// Parameters:
//   - path: the configuration file to watch
//   - logger: logger for reload events (nil disables logging)
//
// Returns:
//   - *Watcher: the running watcher
//   - error: error if the watch cannot be established
func NewWatcher(path string, logger *zap.Logger) (*Watcher, error) {
	return newWatcher(path, logger, DefaultDebounce)
}

func newWatcher(path string, logger *zap.Logger, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path %s: %w", path, err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		watcher:  fw,
		path:     abs,
		debounce: debounce,
		logger:   logger.Named("config").With(zap.String("path", abs)),
		Updates:  make(chan *Config, 1),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. Safe to call multiple times.
//
// Returns:
//   - error: error from closing the underlying file watcher
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Updates)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(w.debounce)
		case <-timer.C:
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.publishError(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.logger.Warn("Config reload failed", zap.Error(err))
		w.publishError(err)
		return
	}

	// keep only the newest config if the reader has not caught up
	select {
	case w.Updates <- cfg:
	default:
		select {
		case <-w.Updates:
		default:
		}
		select {
		case w.Updates <- cfg:
		case <-w.closeCh:
			return
		}
	}
	w.logger.Info("Config reloaded")
}

func (w *Watcher) publishError(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
