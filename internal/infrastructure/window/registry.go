// Package window keeps one live app window per label on top of a port.WindowHost.
package window

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/bnema/webdeck/internal/application/port"
	"github.com/bnema/webdeck/internal/logging"
)

// Registry implements port.WindowManager as a keyed lookup-or-create table.
type Registry struct {
	host port.WindowHost

	mu      sync.Mutex
	windows map[string]port.AppWindow
	group   singleflight.Group
}

var _ port.WindowManager = (*Registry)(nil)

// NewRegistry creates a registry creating windows through host.
func NewRegistry(host port.WindowHost) *Registry {
	return &Registry{
		host:    host,
		windows: make(map[string]port.AppWindow),
	}
}

// Open focuses the live window registered under spec.Label, navigating it
// to spec.URL when it shows something else. Without a live window a new one
// is created. Concurrent calls for one label share a single creation.
func (r *Registry) Open(ctx context.Context, spec port.WindowSpec) (port.AppWindow, error) {
	if spec.Label == "" {
		return nil, errors.New("window label is required")
	}
	spec = spec.WithDefaults()

	v, err, shared := r.group.Do(spec.Label, func() (any, error) {
		return r.openLocked(ctx, spec)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logging.FromContext(ctx).Debug().Str("label", spec.Label).Msg("joined in-flight window open")
	}
	return v.(port.AppWindow), nil
}

func (r *Registry) openLocked(ctx context.Context, spec port.WindowSpec) (port.AppWindow, error) {
	log := logging.FromContext(ctx)

	if w, ok := r.Lookup(spec.Label); ok {
		if err := r.reuse(ctx, w, spec); err == nil {
			log.Debug().Str("label", spec.Label).Msg("focused existing window")
			return w, nil
		} else if !errors.Is(err, port.ErrWindowClosed) {
			return nil, err
		}
		r.drop(spec.Label, w)
	}

	w, err := r.host.Create(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("failed to create window %s: %w", spec.Label, err)
	}

	r.mu.Lock()
	r.windows[spec.Label] = w
	r.mu.Unlock()

	go r.watch(spec.Label, w)

	log.Info().Str("label", spec.Label).Str("url", spec.URL).Msg("window opened")
	return w, nil
}

func (r *Registry) reuse(ctx context.Context, w port.AppWindow, spec port.WindowSpec) error {
	if spec.URL != "" && w.URL() != spec.URL {
		if err := w.NavigateTo(spec.URL); err != nil {
			if errors.Is(err, port.ErrWindowClosed) {
				return err
			}
			logging.FromContext(ctx).Debug().Err(err).Str("label", spec.Label).Msg("navigate on reuse failed")
		}
	}
	return w.Focus()
}

// watch drops the entry once the window is gone.
func (r *Registry) watch(label string, w port.AppWindow) {
	<-w.Done()
	r.drop(label, w)
}

func (r *Registry) drop(label string, w port.AppWindow) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.windows[label] == w {
		delete(r.windows, label)
	}
}

// Lookup returns the live window for label.
func (r *Registry) Lookup(label string) (port.AppWindow, bool) {
	r.mu.Lock()
	w, ok := r.windows[label]
	r.mu.Unlock()
	if !ok {
		return nil, false
	}

	select {
	case <-w.Done():
		r.drop(label, w)
		return nil, false
	default:
		return w, true
	}
}

// Labels returns the labels of registered windows, sorted.
func (r *Registry) Labels() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	labels := make([]string, 0, len(r.windows))
	for label := range r.windows {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// CloseAll closes every registered window.
func (r *Registry) CloseAll() error {
	r.mu.Lock()
	windows := make([]port.AppWindow, 0, len(r.windows))
	for _, w := range r.windows {
		windows = append(windows, w)
	}
	r.mu.Unlock()

	var errs []error
	for _, w := range windows {
		if err := w.Close(); err != nil && !errors.Is(err, port.ErrWindowClosed) {
			errs = append(errs, fmt.Errorf("close %s: %w", w.Label(), err))
		}
	}
	return errors.Join(errs...)
}
