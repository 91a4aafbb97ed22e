package theme

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/themekit/internal/color"
	"github.com/opencode-ai/themekit/internal/metrics"
)

// Registry errors.
var (
	ErrUnknownTheme         = errors.New("unknown theme")
	ErrNoActiveTheme        = errors.New("no theme set")
	ErrEmptyRegistry        = errors.New("no themes registered")
	ErrUnknownAttribute     = errors.New("unknown theme attribute")
	ErrReentrantThemeChange = errors.New("theme change requested while observers are being notified")
)

// Observer is called after the active theme changes.
type Observer func() error

// ObserverID identifies a registered observer for later removal.
type ObserverID string

type observerEntry struct {
	id ObserverID
	fn Observer
}

// Registry owns the set of themes, the base theme, the active theme and the
// change observers. Create one per application and pass it to whatever needs
// it. All methods are safe for concurrent use; observers run on the goroutine
// that changed the theme, without the registry lock held.
type Registry struct {
	mu        sync.Mutex
	base      *Theme
	themes    map[string]*Theme
	order     []string
	active    *Theme
	observers []observerEntry
	notifying bool

	strict  bool
	logger  zerolog.Logger
	metrics *metrics.Registry
}

// NewRegistry creates an empty registry.
func NewRegistry(logger zerolog.Logger, opts ...Option) *Registry {
	r := &Registry{
		themes: make(map[string]*Theme),
		logger: logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetBase replaces the base attributes used for themes added afterwards.
// Themes already added are not changed.
func (r *Registry) SetBase(attrs Attributes) {
	base := New(BaseThemeName, attrs, nil)

	r.mu.Lock()
	r.base = base
	r.mu.Unlock()

	r.logger.Debug().Int("attributes", base.Len()).Msg("base theme set")
}

// Base returns the current base theme, if any.
func (r *Registry) Base() (*Theme, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.base, r.base != nil
}

// AddTheme stores a theme built from attrs over the current base. A theme
// with the same name is replaced and keeps its position in ThemeNames. If the
// replaced theme was active, the new one becomes active without notifying
// observers.
func (r *Registry) AddTheme(name string, attrs Attributes) *Theme {
	r.mu.Lock()
	defer r.mu.Unlock()

	var base *Attributes
	if r.base != nil {
		base = &r.base.attrs
	}
	t := New(name, attrs, base)

	if _, exists := r.themes[name]; !exists {
		r.order = append(r.order, name)
	} else {
		r.logger.Debug().Str("theme", name).Msg("replacing theme")
	}
	r.themes[name] = t

	if r.active != nil && r.active.name == name {
		r.active = t
	}

	return t
}

// Theme returns the theme registered under name.
func (r *Registry) Theme(name string) (*Theme, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.themes[name]
	return t, ok
}

// ThemeNames returns theme names in insertion order.
func (r *Registry) ThemeNames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// ActiveTheme returns the active theme.
func (r *Registry) ActiveTheme() (*Theme, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active == nil {
		return nil, ErrNoActiveTheme
	}
	return r.active, nil
}

// SetTheme makes name the active theme and notifies every observer in
// registration order before returning. On ErrUnknownTheme the active theme is
// left unchanged. The first observer error stops notification and is
// returned; the new theme stays active.
func (r *Registry) SetTheme(name string) error {
	return r.activate(func() (*Theme, error) {
		t, ok := r.themes[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
		}
		return t, nil
	})
}

// NextTheme activates the theme following the active one in insertion order,
// wrapping around after the last.
func (r *Registry) NextTheme() error {
	return r.activate(func() (*Theme, error) {
		if len(r.order) == 0 {
			return nil, ErrEmptyRegistry
		}
		if r.active == nil {
			return nil, ErrNoActiveTheme
		}
		idx := 0
		for i, name := range r.order {
			if name == r.active.name {
				idx = i
				break
			}
		}
		return r.themes[r.order[(idx+1)%len(r.order)]], nil
	})
}

// activate switches to the theme chosen by pick (called with the lock held)
// and notifies observers.
func (r *Registry) activate(pick func() (*Theme, error)) error {
	r.mu.Lock()
	if r.notifying {
		r.mu.Unlock()
		return ErrReentrantThemeChange
	}
	t, err := pick()
	if err != nil {
		r.mu.Unlock()
		return err
	}
	previous := r.active
	r.active = t
	r.notifying = true
	observers := make([]observerEntry, len(r.observers))
	copy(observers, r.observers)
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.notifying = false
		r.mu.Unlock()
	}()

	event := r.logger.Info().Str("theme", t.name).Int("observers", len(observers))
	if previous != nil {
		event = event.Str("previous", previous.name)
	}
	event.Msg("theme changed")
	r.metrics.ThemeChanged(t.name)

	for _, obs := range observers {
		if !r.hasObserver(obs.id) {
			continue
		}
		err := obs.fn()
		r.metrics.ObserverNotified(err)
		if err != nil {
			r.logger.Error().Err(err).Str("observer", string(obs.id)).Str("theme", t.name).Msg("observer failed")
			return fmt.Errorf("notify observer %s: %w", obs.id, err)
		}
	}

	return nil
}

// AddObserver registers fn to be called after every theme change.
func (r *Registry) AddObserver(fn Observer) ObserverID {
	id := ObserverID(uuid.NewString())

	r.mu.Lock()
	r.observers = append(r.observers, observerEntry{id: id, fn: fn})
	r.mu.Unlock()

	return id
}

// RemoveObserver unregisters the observer with id. It reports whether the
// observer was registered. An observer removed during notification is not
// called afterwards.
func (r *Registry) RemoveObserver(id ObserverID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, obs := range r.observers {
		if obs.id == id {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			return true
		}
	}
	return false
}

// ObserverCount returns the number of registered observers.
func (r *Registry) ObserverCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.observers)
}

func (r *Registry) hasObserver(id ObserverID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, obs := range r.observers {
		if obs.id == id {
			return true
		}
	}
	return false
}

// ResolveAttribute returns the active theme's value for key, darkened by
// *modifier when modifier is non-nil. Undefined keys resolve to #000000
// unless the registry is strict.
func (r *Registry) ResolveAttribute(key string, modifier *int) (string, error) {
	r.mu.Lock()
	active, strict := r.active, r.strict
	r.mu.Unlock()

	if active == nil {
		return "", ErrNoActiveTheme
	}

	value, ok := active.Lookup(key)
	if !ok {
		if strict {
			return "", fmt.Errorf("%w: %q in theme %q", ErrUnknownAttribute, key, active.name)
		}
		r.logger.Warn().Str("key", key).Str("theme", active.name).Msg("undefined theme attribute, using fallback color")
		r.metrics.AttributeFallback(active.name)
		value = color.Black
	}

	if modifier != nil {
		return r.Darken(value, *modifier)
	}
	return value, nil
}

// Darken darkens c by factor parts per thousand.
func (r *Registry) Darken(c string, factor int) (string, error) {
	return color.Darken(c, factor)
}
