// Package watch reports changes to a grid document on disk.
package watch

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dimanech/aria-grid/internal/domain"
)

// Event says the watched file changed (or the watcher hit an error, in which
// case Err is set and a reload is still worth trying).
type Event struct {
	Path string
	Err  error
}

// DefaultDelay coalesces bursts of writes (editors often write, truncate and
// rename in quick succession).
const DefaultDelay = 100 * time.Millisecond

type options struct {
	delay time.Duration
	log   *slog.Logger
}

type Option func(*options)

func WithDelay(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.delay = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// File streams change events for path until ctx is cancelled, then closes the
// channel. The parent directory is watched so atomic-rename saves are seen.
func File(ctx context.Context, path string, opts ...Option) (<-chan Event, error) {
	o := options{delay: DefaultDelay, log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
	for _, fn := range opts {
		fn(&o)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &domain.OpError{Op: "watch.file", Kind: domain.KindExecution, Path: path, Err: err}
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &domain.OpError{Op: "watch.file", Kind: domain.KindExecution, Path: abs, Err: err}
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, &domain.OpError{Op: "watch.file", Kind: domain.KindNotFound, Path: abs, Err: err}
	}

	events := make(chan Event, 1)

	var (
		sendMu sync.Mutex
		closed bool
	)
	send := func(ev Event) {
		sendMu.Lock()
		defer sendMu.Unlock()
		if closed {
			return
		}
		select {
		case events <- ev:
		default:
			// a reload is already pending
		}
	}

	go func() {
		defer func() {
			sendMu.Lock()
			closed = true
			close(events)
			sendMu.Unlock()
		}()
		defer func() {
			if err := w.Close(); err != nil {
				o.log.Warn("watch.close_failed", "path", abs, "error", err)
			}
		}()

		d := newDebouncer(o.delay)
		defer d.stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				o.log.Warn("watch.error", "path", abs, "error", err)
				d.trigger(func() { send(Event{Path: abs, Err: err}) })
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
					continue
				}
				o.log.Debug("watch.event", "path", abs, "op", ev.Op.String())
				d.trigger(func() { send(Event{Path: abs}) })
			}
		}
	}()

	return events, nil
}

// debouncer runs the latest callback once delay has passed without another
// trigger.
type debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay}
}

func (d *debouncer) trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
