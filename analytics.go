package ready

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Decode results as reported in the result label.
const (
	ResultOK                = "ok"
	ResultMissingField      = "missing_field"
	ResultTypeMismatch      = "type_mismatch"
	ResultNoMatchingVariant = "no_matching_variant"
	ResultNotReady          = "not_ready"
	ResultInvalid           = "invalid"
)

// Metrics tracks decode outcomes.
type Metrics struct {
	DecodeTotal    *prometheus.CounterVec
	DecodeDuration *prometheus.HistogramVec
	Guilds         *prometheus.GaugeVec
}

// NewMetrics registers the decode collectors on registerer. A nil registerer
// creates collectors that are not registered anywhere.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		DecodeTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sandwich_ready_decode_total",
				Help: "Total number of ready payloads decoded, split by schema and result",
			},
			[]string{"schema", "result"},
		),
		DecodeDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sandwich_ready_decode_duration_seconds",
				Help:    "Time taken to decode a ready payload",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"schema"},
		),
		Guilds: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sandwich_ready_guilds",
				Help: "Number of guilds in the last decoded ready payload",
			},
			[]string{"schema"},
		),
	}
}

// Observe records the outcome of one decode.
func (m *Metrics) Observe(version SchemaVersion, started time.Time, payload Payload, err error) {
	if m == nil {
		return
	}

	m.DecodeTotal.WithLabelValues(version.String(), Result(err)).Inc()
	m.DecodeDuration.WithLabelValues(version.String()).Observe(time.Since(started).Seconds())

	if err == nil {
		m.Guilds.WithLabelValues(version.String()).Set(float64(payload.GuildCount()))
	}
}

// Result maps a decode error to its result label.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, ErrMissingField):
		return ResultMissingField
	case errors.Is(err, ErrNoMatchingVariant):
		return ResultNoMatchingVariant
	case errors.Is(err, ErrTypeMismatch):
		return ResultTypeMismatch
	case errors.Is(err, ErrNotReadyEvent):
		return ResultNotReady
	default:
		return ResultInvalid
	}
}
