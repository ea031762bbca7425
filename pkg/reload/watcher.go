// Package reload rebuilds the published resolver when configuration files
// change on disk.
package reload

import (
	"context"
	"path/filepath"
	"time"

	"github.com/arthur-debert/lintlayer/pkg/errors"
	"github.com/arthur-debert/lintlayer/pkg/logging"
	"github.com/arthur-debert/lintlayer/pkg/resolver"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce collapses the burst of events editors emit for one save
const DefaultDebounce = 300 * time.Millisecond

// Result reports the outcome of one reload attempt
type Result struct {
	Resolver *resolver.Resolver
	Err      error
}

// Watcher watches configuration files and republishes the resolver
type Watcher struct {
	holder   *resolver.Holder
	build    resolver.Builder
	files    map[string]bool
	dirs     []string
	debounce time.Duration
	notify   func(Result)
	logger   zerolog.Logger
}

// Option configures a Watcher
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithNotify registers a callback run after every reload attempt
func WithNotify(fn func(Result)) Option {
	return func(w *Watcher) {
		w.notify = fn
	}
}

// New creates a Watcher for the given configuration files. Parent
// directories are watched so editors that replace files on save are seen.
func New(holder *resolver.Holder, build resolver.Builder, files []string, opts ...Option) (*Watcher, error) {
	if holder == nil || build == nil {
		return nil, errors.New(errors.ErrInvalidInput, "watcher needs a holder and a builder")
	}
	if len(files) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no configuration files to watch")
	}

	w := &Watcher{
		holder:   holder,
		build:    build,
		files:    make(map[string]bool, len(files)),
		debounce: DefaultDebounce,
		logger:   logging.GetLogger("reload"),
	}
	seenDirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidPath, "cannot resolve %s", f).
				WithDetail("path", f)
		}
		w.files[abs] = true
		dir := filepath.Dir(abs)
		if !seenDirs[dir] {
			seenDirs[dir] = true
			w.dirs = append(w.dirs, dir)
		}
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run watches until ctx is cancelled. Failed reloads are logged and the
// current resolver stays published.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "create watcher")
	}
	defer func() {
		_ = fsw.Close()
	}()

	for _, dir := range w.dirs {
		if err := fsw.Add(dir); err != nil {
			return errors.Wrapf(err, errors.ErrConfigLoad, "watch %s", dir).
				WithDetail("path", dir)
		}
	}

	w.logger.Info().
		Int("files", len(w.files)).
		Dur("debounce", w.debounce).
		Msg("Watching configuration")

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("Configuration watcher stopped")
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug().
				Str("file", event.Name).
				Str("op", event.Op.String()).
				Msg("Configuration file changed")
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("Configuration watcher error")
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return w.files[abs]
}

func (w *Watcher) reload() {
	next, err := w.holder.Reload(w.build)
	if err != nil {
		w.logger.Error().Err(err).Msg("Reload failed, keeping previous configuration")
	} else {
		w.logger.Info().
			Strs("overrides", next.OverrideIDs()).
			Msg("Configuration reloaded")
	}
	if w.notify != nil {
		w.notify(Result{Resolver: next, Err: err})
	}
}
