package jobs

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/teranos/jobs/errors"
	"github.com/teranos/jobs/logger"
	"go.uber.org/zap"
)

// DefaultDebouncePeriod collapses the burst of events a single save produces
const DefaultDebouncePeriod = 200 * time.Millisecond

// ChangeCallback receives the result of re-reading the jobs file.
// records is nil whenever err is set.
type ChangeCallback func(records []Job, err error)

// Watcher re-reads a jobs file whenever it changes on disk
type Watcher struct {
	path           string
	watcher        *fsnotify.Watcher
	callbacks      []ChangeCallback
	mu             sync.RWMutex
	debouncePeriod time.Duration
	logger         *zap.SugaredLogger
}

// NewWatcher creates a watcher for the jobs file at path.
//
// The parent directory is watched rather than the file itself so that
// editors which save by rename-and-replace keep triggering reloads.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", path)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, errors.WrapRead(err, filepath.Dir(abs))
	}

	return &Watcher{
		path:           abs,
		watcher:        fsw,
		debouncePeriod: DefaultDebouncePeriod,
		logger:         logger.ComponentLogger("jobs.watch"),
	}, nil
}

// Path returns the absolute path being watched
func (w *Watcher) Path() string {
	return w.path
}

// SetDebouncePeriod overrides DefaultDebouncePeriod. Call before Run.
func (w *Watcher) SetDebouncePeriod(d time.Duration) {
	w.debouncePeriod = d
}

// OnChange registers a callback to be called after each reload
func (w *Watcher) OnChange(callback ChangeCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Run watches until ctx is done, then releases the underlying watcher.
// Callbacks run on the caller's goroutine, one reload at a time.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending fsnotify.Op
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debugw("Watcher stopped", logger.FieldPath, w.path)
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}

			pending |= event.Op
			if timer == nil {
				timer = time.NewTimer(w.debouncePeriod)
			} else {
				timer.Stop()
				timer.Reset(w.debouncePeriod)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			w.logger.Infow("Jobs file changed", logger.FieldPath, w.path, "op", pending.String())
			pending = 0
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warnw("Watcher error", logger.FieldError, err)
		}
	}
}

// relevant reports whether event touches the watched file
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// reload re-reads the file and calls all callbacks
func (w *Watcher) reload() {
	records, err := Read(w.path)
	if err != nil {
		w.logger.Warnw("Jobs reload failed", logger.FieldPath, w.path, logger.FieldError, err)
	}

	w.mu.RLock()
	callbacks := make([]ChangeCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	for _, callback := range callbacks {
		callback(records, err)
	}
}
