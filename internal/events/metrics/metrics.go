package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the events domain.
type Metrics struct {
	Created prometheus.Counter
	Updated prometheus.Counter
	Deleted prometheus.Counter
	Listed  prometheus.Counter
}

// New registers the events counters on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Created: factory.NewCounter(prometheus.CounterOpts{
			Name: "insightdeck_events_created_total",
			Help: "Total number of insight events created.",
		}),
		Updated: factory.NewCounter(prometheus.CounterOpts{
			Name: "insightdeck_events_updated_total",
			Help: "Total number of insight events updated.",
		}),
		Deleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "insightdeck_events_deleted_total",
			Help: "Total number of insight events deleted.",
		}),
		Listed: factory.NewCounter(prometheus.CounterOpts{
			Name: "insightdeck_events_list_queries_total",
			Help: "Total number of event list queries served.",
		}),
	}
}
