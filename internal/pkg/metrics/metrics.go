package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the process counters for order registration and
// observer notification activity.
type Registry struct {
	reg *prometheus.Registry

	OrdersRegistered     prometheus.Counter
	OrdersRemoved        prometheus.Counter
	NotificationsSent    prometheus.Counter
	NotificationFailures prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	registered := prometheus.NewCounter(prometheus.CounterOpts{Name: "orders_registered_total"})
	removed := prometheus.NewCounter(prometheus.CounterOpts{Name: "orders_removed_total"})
	sent := prometheus.NewCounter(prometheus.CounterOpts{Name: "notifications_sent_total"})
	failed := prometheus.NewCounter(prometheus.CounterOpts{Name: "notification_failures_total"})

	r.MustRegister(registered, removed, sent, failed)
	return &Registry{
		reg:                  r,
		OrdersRegistered:     registered,
		OrdersRemoved:        removed,
		NotificationsSent:    sent,
		NotificationFailures: failed,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
