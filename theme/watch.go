package theme

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/gogpu/vrender"
)

// Watcher reloads a theme file whenever it changes on disk.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	updates chan *Theme
	errs    chan error
}

// NewWatcher watches the theme file at path. The containing directory is
// watched so that editors replacing the file are noticed too.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, "theme: watch")
	}
	if _, err := FormatFromPath(abs); err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "theme: create file watcher")
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, errors.Wrapf(err, "theme: watch %s", filepath.Dir(abs))
	}
	return &Watcher{
		path:    abs,
		fsw:     fsw,
		updates: make(chan *Theme, 1),
		errs:    make(chan error, 1),
	}, nil
}

// Updates delivers every successfully reloaded theme.
func (w *Watcher) Updates() <-chan *Theme { return w.updates }

// Errors delivers reload and watch errors. Errors are dropped while the
// previous one is unread.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Run watches until ctx is cancelled or the underlying watcher fails. It
// closes the Updates and Errors channels on return and must be called
// only once.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.errs)
	defer close(w.updates)
	defer w.fsw.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&fsnotify.Write != fsnotify.Write && event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			t, err := Load(w.path)
			if err != nil {
				w.report(err)
				continue
			}
			vrender.Logger().Debug("theme: reloaded", "path", w.path, "name", t.Name)
			select {
			case w.updates <- t:
			case <-ctx.Done():
				return ctx.Err()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.report(errors.Wrap(err, "theme: watch"))
		}
	}
}

func (w *Watcher) report(err error) {
	select {
	case w.errs <- err:
	default:
		vrender.Logger().Warn("theme: dropped watcher error", "err", err)
	}
}
