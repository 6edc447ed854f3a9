package casperfront

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsPath = "/metrics"

// Metrics holds the Prometheus collectors of one App. Each App owns its
// registry so several apps can live in one process.
type Metrics struct {
	registry   *prometheus.Registry
	subscribes *prometheus.CounterVec
}

func newMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		subscribes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "casperfront",
			Name:      "subscriptions_total",
			Help:      "Subscribe form submissions by result.",
		}, []string{"result"}),
	}
	m.registry.MustRegister(m.subscribes)
	return m
}

// subscribe counts one subscribe attempt; result is ok, invalid or limited.
func (m *Metrics) subscribe(result string) {
	if m == nil {
		return
	}
	m.subscribes.WithLabelValues(result).Inc()
}

func (m *Metrics) middleware() echo.MiddlewareFunc {
	return echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "casperfront",
		Registerer: m.registry,
		Skipper: func(c echo.Context) bool {
			return c.Path() == metricsPath
		},
	})
}

func (m *Metrics) handler() echo.HandlerFunc {
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: m.registry,
	})
}
