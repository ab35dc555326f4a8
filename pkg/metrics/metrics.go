package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
// Все методы безопасны для nil-получателя: при выключенных метриках ничего не записывается
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration    *prometheus.HistogramVec
	dbOpenConnections  prometheus.Gauge
	dbInUseConnections prometheus.Gauge
	dbIdleConnections  prometheus.Gauge
	dbWaitCount        prometheus.Gauge

	bookingsCreated   prometheus.Counter
	bookingsCancelled *prometheus.CounterVec
	refundAmountYen   prometheus.Counter
	slotsGenerated    *prometheus.CounterVec
	slotConflicts     prometheus.Counter
	bookingsCompleted prometheus.Counter
}

// New создает метрики и регистрирует их в стандартном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry создает метрики в указанном реестре (используется в тестах)
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	f := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		dbQueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		dbOpenConnections: f.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: labels,
		}),
		dbInUseConnections: f.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: labels,
		}),
		dbIdleConnections: f.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: labels,
		}),
		dbWaitCount: f.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}),

		bookingsCreated: f.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Number of created court bookings",
			ConstLabels: labels,
		}),
		bookingsCancelled: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_cancelled_total",
			Help:        "Number of cancelled court bookings",
			ConstLabels: labels,
		}, []string{"status", "refund_percentage"}),
		refundAmountYen: f.NewCounter(prometheus.CounterOpts{
			Name:        "refund_amount_yen_total",
			Help:        "Total refunded amount in yen",
			ConstLabels: labels,
		}),
		slotsGenerated: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "slots_generated_total",
			Help:        "Number of generated time slots",
			ConstLabels: labels,
		}, []string{"available"}),
		slotConflicts: f.NewCounter(prometheus.CounterOpts{
			Name:        "slot_conflicts_total",
			Help:        "Number of booking attempts rejected because the slot was taken",
			ConstLabels: labels,
		}),
		bookingsCompleted: f.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_completed_total",
			Help:        "Number of bookings marked as completed by the scheduler",
			ConstLabels: labels,
		}),
	}
}

// RecordHTTPRequest записывает результат HTTP запроса
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordDBQuery записывает длительность запроса к БД
func (m *Metrics) RecordDBQuery(operation string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBStats обновляет метрики пула соединений
func (m *Metrics) SetDBStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbOpenConnections.Set(float64(stats.OpenConnections))
	m.dbInUseConnections.Set(float64(stats.InUse))
	m.dbIdleConnections.Set(float64(stats.Idle))
	m.dbWaitCount.Set(float64(stats.WaitCount))
}

func (m *Metrics) IncBookingCreated() {
	if m == nil {
		return
	}
	m.bookingsCreated.Inc()
}

// IncBookingCancelled учитывает отмену и сумму возврата
func (m *Metrics) IncBookingCancelled(status string, refundPercentage int, refundAmount int64) {
	if m == nil {
		return
	}
	m.bookingsCancelled.WithLabelValues(status, strconv.Itoa(refundPercentage)).Inc()
	m.refundAmountYen.Add(float64(refundAmount))
}

// AddSlotsGenerated учитывает сгенерированные слоты
func (m *Metrics) AddSlotsGenerated(available, unavailable int) {
	if m == nil {
		return
	}
	m.slotsGenerated.WithLabelValues("true").Add(float64(available))
	m.slotsGenerated.WithLabelValues("false").Add(float64(unavailable))
}

func (m *Metrics) IncSlotConflict() {
	if m == nil {
		return
	}
	m.slotConflicts.Inc()
}

func (m *Metrics) AddBookingsCompleted(n int64) {
	if m == nil {
		return
	}
	m.bookingsCompleted.Add(float64(n))
}
