// Package metrics exposes the inventory state and request counts to
// Prometheus.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"liyu1981.xyz/battery-tracking-service/pkg/common"
	"liyu1981.xyz/battery-tracking-service/pkg/models"
)

// BatterySource is what the inventory collector reads on every scrape.
type BatterySource interface {
	List() ([]models.Battery, error)
}

type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal *prometheus.CounterVec
}

func New(source BatterySource) (*Metrics, error) {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "battery_http_requests_total",
				Help: "Total number of HTTP requests by route and status code",
			},
			[]string{"route", "code"},
		),
	}

	if err := registry.Register(m.httpRequestsTotal); err != nil {
		return nil, err
	}
	if source != nil {
		if err := registry.Register(newInventoryCollector(source)); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveRequest(route string, code int) {
	m.httpRequestsTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

func (m *Metrics) Handler() http.Handler {
	errorLog, err := zap.NewStdLogAt(common.GetLoggerWith(common.LoggerNameMetrics), zapcore.ErrorLevel)
	if err != nil {
		errorLog = zap.NewStdLog(common.GetLoggerWith(common.LoggerNameMetrics))
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		ErrorLog:      errorLog,
		ErrorHandling: promhttp.HTTPErrorOnError,
	})
}
