// Package metrics exposes Prometheus counters for theme registry activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "themekit"

// Registry holds the counters updated by a theme registry. A nil *Registry is
// valid and records nothing.
type Registry struct {
	themeChanges   *prometheus.CounterVec
	notifications  prometheus.Counter
	observerErrors prometheus.Counter
	fallbacks      *prometheus.CounterVec
}

// NewRegistry creates the counters and registers them with reg.
func NewRegistry(reg prometheus.Registerer) *Registry {
	m := &Registry{
		themeChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "theme_changes_total",
			Help:      "Number of times the active theme was set, by theme name.",
		}, []string{"theme"}),
		notifications: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "observer_notifications_total",
			Help:      "Number of observer callbacks invoked after a theme change.",
		}),
		observerErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "observer_errors_total",
			Help:      "Number of observer callbacks that returned an error.",
		}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attribute_fallbacks_total",
			Help:      "Number of lookups of undefined attributes answered with the fallback color, by theme name.",
		}, []string{"theme"}),
	}

	if reg != nil {
		reg.MustRegister(m.themeChanges, m.notifications, m.observerErrors, m.fallbacks)
	}
	return m
}

// ThemeChanged records a successful theme switch.
func (m *Registry) ThemeChanged(theme string) {
	if m == nil {
		return
	}
	m.themeChanges.WithLabelValues(theme).Inc()
}

// ObserverNotified records one observer invocation.
func (m *Registry) ObserverNotified(err error) {
	if m == nil {
		return
	}
	m.notifications.Inc()
	if err != nil {
		m.observerErrors.Inc()
	}
}

// AttributeFallback records a lookup of an undefined attribute. Keys come
// from templates, so only the theme is used as a label.
func (m *Registry) AttributeFallback(theme string) {
	if m == nil {
		return
	}
	m.fallbacks.WithLabelValues(theme).Inc()
}
