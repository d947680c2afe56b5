package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/robfig/cron/v3"
)

// Watcher watches résumé files for changes and triggers revalidation.
// It debounces file events to prevent revalidation storms from editors
// that write in bursts, and can additionally run cron-scheduled sweeps.
type Watcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	config   *Config
	debounce *Debouncer

	// State
	mu      sync.RWMutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// Config contains configuration for the watcher.
type Config struct {
	// Path is the file or directory to watch
	Path string

	// DebounceInterval is the time to wait before triggering revalidation
	// after detecting file changes (default: 100ms)
	DebounceInterval time.Duration

	// Extensions is the list of file extensions to watch (e.g., ".yaml", ".yml")
	Extensions []string

	// Schedule is an optional cron expression for periodic sweeps of the
	// watched path, in addition to event-driven revalidation
	Schedule string

	// SkipHidden controls whether to skip hidden files
	SkipHidden bool
}

// DefaultConfig returns the default watcher configuration for a path.
func DefaultConfig(path string) *Config {
	return &Config{
		Path:             path,
		DebounceInterval: 100 * time.Millisecond,
		Extensions:       []string{".yaml", ".yml"},
		SkipHidden:       true,
	}
}

// New creates a new watcher.
func New(config *Config, logger *slog.Logger) (*Watcher, error) {
	if config == nil || config.Path == "" {
		return nil, fmt.Errorf("watch path cannot be empty")
	}
	if config.DebounceInterval <= 0 {
		config.DebounceInterval = 100 * time.Millisecond
	}
	if len(config.Extensions) == 0 {
		config.Extensions = []string{".yaml", ".yml"}
	}

	if logger == nil {
		logger = slog.Default()
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		watcher: fsWatcher,
		logger:  logger,
		config:  config,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// Watch starts watching for file changes and invokes onChange with the path
// of each changed file. Scheduled sweeps invoke onChange with the watched
// root path. This is a blocking operation that runs until the context is
// cancelled or Stop is called.
func (w *Watcher) Watch(ctx context.Context, onChange func(path string)) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	// The callback is only known here, so the debouncer is built per watch
	// session rather than at construction.
	w.debounce = NewDebouncer(w.config.DebounceInterval, func(path string) {
		w.logger.Info("Revalidating after change", "path", path)
		onChange(path)
	})
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(w.doneCh)
	}()

	if err := w.addPath(w.config.Path); err != nil {
		return fmt.Errorf("failed to watch path: %w", err)
	}

	// Optional scheduled sweeps
	var scheduler *cron.Cron
	if w.config.Schedule != "" {
		scheduler = cron.New()
		_, err := scheduler.AddFunc(w.config.Schedule, func() {
			w.logger.Info("Scheduled revalidation sweep", "path", w.config.Path)
			onChange(w.config.Path)
		})
		if err != nil {
			return fmt.Errorf("invalid watch schedule %q: %w", w.config.Schedule, err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	w.logger.Info("Watcher started",
		"path", w.config.Path,
		"debounce_ms", w.config.DebounceInterval.Milliseconds(),
		"schedule", w.config.Schedule,
	)

	// Event processing loop
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Watcher stopped (context cancelled)")
			return nil

		case <-w.stopCh:
			w.logger.Info("Watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if !w.shouldProcessEvent(event) {
				continue
			}

			w.logger.Debug("File event detected",
				"path", event.Name,
				"op", event.Op.String(),
			)

			w.debounce.Trigger(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}

			w.logger.Error("Watcher error", "error", err)
			// Continue watching despite errors
		}
	}
}

// Stop stops the watcher and releases the underlying file descriptors.
// Stopping a watcher that never started still closes them.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	running := w.running
	debounce := w.debounce
	w.mu.Unlock()

	if running {
		close(w.stopCh)
		<-w.doneCh
	}

	if debounce != nil {
		debounce.Stop()
	}

	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}
	return nil
}

// addPath adds a file or directory to the watcher.
func (w *Watcher) addPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return w.addDirectory(path)
	}
	return w.watcher.Add(path)
}

// addDirectory adds a directory and all subdirectories to the watcher.
func (w *Watcher) addDirectory(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if w.config.SkipHidden && strings.HasPrefix(filepath.Base(path), ".") && path != dir {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			if err := w.watcher.Add(path); err != nil {
				return fmt.Errorf("failed to watch directory %q: %w", path, err)
			}
			w.logger.Debug("Watching directory", "path", path)
		}

		return nil
	})
}

// shouldProcessEvent determines if an event should trigger revalidation.
func (w *Watcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op&fsnotify.Chmod == fsnotify.Chmod {
		return false
	}

	ext := strings.ToLower(filepath.Ext(event.Name))
	if !w.hasValidExtension(ext) {
		return false
	}

	if w.config.SkipHidden && strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}

	return true
}

// hasValidExtension checks if a file extension should be watched.
func (w *Watcher) hasValidExtension(ext string) bool {
	for _, validExt := range w.config.Extensions {
		if ext == strings.ToLower(validExt) {
			return true
		}
	}
	return false
}
