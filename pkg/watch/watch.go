// Package watch re-runs a handler when card or host config files change.
//
// Directories holding the files are watched rather than the files, so
// editors that save by renaming a temp file over the original are seen.
// Bursts of events are collapsed into one handler call per debounce
// window.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/cardrender/pkg/errors"
	"github.com/arthur-debert/cardrender/pkg/logging"
)

// DefaultDebounce is the quiet period before the handler runs
const DefaultDebounce = 150 * time.Millisecond

// Handler receives the files that changed, sorted. A returned error is
// logged and watching continues.
type Handler func(ctx context.Context, changed []string) error

// Watcher watches a fixed set of files
type Watcher struct {
	files    map[string]bool
	dirs     []string
	handler  Handler
	debounce time.Duration
	logger   zerolog.Logger
}

// Option configures a Watcher
type Option func(*Watcher)

// WithDebounce sets the quiet period; non-positive values are ignored
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// New creates a watcher for files. Every file must exist.
func New(files []string, handler Handler, opts ...Option) (*Watcher, error) {
	if len(files) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no files to watch")
	}
	if handler == nil {
		return nil, errors.New(errors.ErrInvalidInput, "watch handler is nil")
	}

	w := &Watcher{
		files:    make(map[string]bool, len(files)),
		handler:  handler,
		debounce: DefaultDebounce,
		logger:   logging.GetLogger("watch"),
	}
	for _, opt := range opts {
		opt(w)
	}

	seenDirs := map[string]bool{}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "resolving %s", f)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrNotFound, "watching %s", f)
		}
		if info.IsDir() {
			return nil, errors.Newf(errors.ErrInvalidInput, "%s is a directory", f)
		}
		w.files[abs] = true
		if dir := filepath.Dir(abs); !seenDirs[dir] {
			seenDirs[dir] = true
			w.dirs = append(w.dirs, dir)
		}
	}
	sort.Strings(w.dirs)
	return w, nil
}

// Files returns the watched files, absolute and sorted
func (w *Watcher) Files() []string {
	out := make([]string, 0, len(w.files))
	for f := range w.files {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Run watches until ctx is done. It returns nil on cancellation and an
// error only when the watcher itself fails.
func (w *Watcher) Run(ctx context.Context) error {
	defer logging.LogOperationStart(w.logger, "Watch")()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "creating file watcher")
	}
	defer func() {
		if err := fsw.Close(); err != nil {
			w.logger.Debug().Err(err).Msg("Closing file watcher")
		}
	}()

	for _, dir := range w.dirs {
		if err := fsw.Add(dir); err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "watching %s", dir)
		}
		w.logger.Debug().Str("dir", dir).Msg("Watching directory")
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	pending := map[string]bool{}
	for {
		select {
		case <-ctx.Done():
			w.logger.Debug().Msg("Watch cancelled")
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Trace().Str("file", event.Name).Str("op", event.Op.String()).Msg("File event")
			if len(pending) == 0 {
				timer.Reset(w.debounce)
			}
			pending[filepath.Clean(event.Name)] = true

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("File watcher error")

		case <-timer.C:
			changed := make([]string, 0, len(pending))
			for f := range pending {
				changed = append(changed, f)
			}
			sort.Strings(changed)
			pending = map[string]bool{}

			w.logger.Debug().Strs("files", changed).Msg("Files changed")
			if err := w.handler(ctx, changed); err != nil {
				w.logger.Warn().Err(err).Msg("Watch handler failed")
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !w.files[filepath.Clean(event.Name)] {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}
