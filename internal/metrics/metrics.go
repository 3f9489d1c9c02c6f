package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tool-rental-backend/internal/repository"
)

const unknownTool = "unknown"

// Checkouts counts checkout attempts by tool and outcome.
type Checkouts struct {
	registry *prometheus.Registry
	total    *prometheus.CounterVec
	catalog  repository.ToolCatalog
}

// NewCheckouts registers the checkout counter on a fresh registry. Tool codes
// missing from catalog are reported as "unknown" to keep label cardinality
// bounded.
func NewCheckouts(catalog repository.ToolCatalog) *Checkouts {
	reg := prometheus.NewRegistry()
	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tool_rental",
		Name:      "checkouts_total",
		Help:      "Checkout attempts by tool code and outcome.",
	}, []string{"tool_code", "outcome"})
	reg.MustRegister(total)

	return &Checkouts{registry: reg, total: total, catalog: catalog}
}

// ObserveCheckout increments the counter for one checkout.
func (c *Checkouts) ObserveCheckout(toolCode, outcome string) {
	if _, ok := c.catalog.Lookup(toolCode); !ok {
		toolCode = unknownTool
	}
	c.total.WithLabelValues(toolCode, outcome).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (c *Checkouts) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Counter exposes the underlying vector for tests and dashboards.
func (c *Checkouts) Counter() *prometheus.CounterVec {
	return c.total
}
