// Package metrics expone contadores Prometheus de la generación de reportes.
// Todos los métodos aceptan receptor nil para que el caso de uso funcione sin métricas.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sales_analytics"

// ReportMetrics registra generación, exportación y tamaño de corpus de los reportes.
type ReportMetrics struct {
	generated       *prometheus.CounterVec
	duration        prometheus.Histogram
	salesConsidered prometheus.Histogram
	exports         *prometheus.CounterVec
	gatherer        prometheus.Gatherer
}

// NewReportMetrics registra las métricas en reg. Con reg nil devuelve una instancia inerte.
func NewReportMetrics(reg *prometheus.Registry) *ReportMetrics {
	if reg == nil {
		return &ReportMetrics{}
	}
	generated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_generated_total",
		Help:      "Reportes generados, por resultado.",
	}, []string{"outcome"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "report_generation_seconds",
		Help:      "Duración de la agregación de un reporte.",
		Buckets:   prometheus.DefBuckets,
	})
	salesConsidered := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "report_sales_considered",
		Help:      "Ventas del corpus evaluadas por reporte.",
		Buckets:   prometheus.ExponentialBuckets(10, 4, 8),
	})
	exports := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_exports_total",
		Help:      "Exportaciones de reportes, por formato.",
	}, []string{"format"})
	reg.MustRegister(generated, duration, salesConsidered, exports)
	return &ReportMetrics{
		generated:       generated,
		duration:        duration,
		salesConsidered: salesConsidered,
		exports:         exports,
		gatherer:        reg,
	}
}

// ObserveGeneration registra una generación exitosa.
func (m *ReportMetrics) ObserveGeneration(elapsed time.Duration, salesCount int) {
	if m == nil || m.generated == nil {
		return
	}
	m.generated.WithLabelValues("success").Inc()
	m.duration.Observe(elapsed.Seconds())
	m.salesConsidered.Observe(float64(salesCount))
}

// IncFailure registra una generación fallida.
func (m *ReportMetrics) IncFailure() {
	if m == nil || m.generated == nil {
		return
	}
	m.generated.WithLabelValues("failure").Inc()
}

// IncExport registra una exportación en el formato dado.
func (m *ReportMetrics) IncExport(format string) {
	if m == nil || m.exports == nil {
		return
	}
	if format == "" {
		format = "unknown"
	}
	m.exports.WithLabelValues(format).Inc()
}

// Handler expone el registro en formato de texto Prometheus.
func (m *ReportMetrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
