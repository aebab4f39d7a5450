package xdr

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// CodecMetrics tracks Prometheus metrics for encode/decode operations.
//
// All metrics use the "nfswire_xdr_" prefix. Methods handle a nil receiver
// gracefully, so metrics cost nothing until EnableMetrics is called; a
// library consumer that never calls it gets a pure computational codec.
type CodecMetrics struct {
	// Encodes counts encode operations by registered type and result.
	// Labels: type, result=[success, failure]
	Encodes *prometheus.CounterVec

	// Decodes counts decode operations by registered type and result.
	// Labels: type, result=[success, failure]
	Decodes *prometheus.CounterVec

	// DecodeFailures counts decode failures by registered type and error
	// class.
	// Labels: type, reason=[truncated, invalid_value,
	//                       unknown_discriminant, malformed, other]
	DecodeFailures *prometheus.CounterVec
}

var (
	// metricsOnce ensures codec metrics are registered exactly once.
	metricsOnce sync.Once
	// metricsInstance holds the singleton metrics instance, nil until
	// EnableMetrics.
	metricsInstance *CodecMetrics
)

// EnableMetrics creates and registers codec metrics.
//
// If registerer is nil, prometheus.DefaultRegisterer is used. The function
// is idempotent: repeated calls return the same instance.
func EnableMetrics(registerer prometheus.Registerer) *CodecMetrics {
	metricsOnce.Do(func() {
		if registerer == nil {
			registerer = prometheus.DefaultRegisterer
		}

		m := &CodecMetrics{
			Encodes: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "nfswire_xdr_encodes_total",
				Help: "XDR encode operations by type and result.",
			}, []string{"type", "result"}),
			Decodes: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "nfswire_xdr_decodes_total",
				Help: "XDR decode operations by type and result.",
			}, []string{"type", "result"}),
			DecodeFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "nfswire_xdr_decode_failures_total",
				Help: "XDR decode failures by type and error class.",
			}, []string{"type", "reason"}),
		}

		registerer.MustRegister(m.Encodes, m.Decodes, m.DecodeFailures)
		metricsInstance = m
	})
	return metricsInstance
}

// codecMetrics returns the singleton, which may be nil (no-op).
func codecMetrics() *CodecMetrics {
	return metricsInstance
}

func (m *CodecMetrics) observeEncode(typeName string, err error) {
	if m == nil {
		return
	}
	m.Encodes.WithLabelValues(typeName, resultLabel(err)).Inc()
}

func (m *CodecMetrics) observeDecode(typeName string, err error) {
	if m == nil {
		return
	}
	m.Decodes.WithLabelValues(typeName, resultLabel(err)).Inc()
	if err != nil {
		m.DecodeFailures.WithLabelValues(typeName, decodeReason(err)).Inc()
	}
}

func resultLabel(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}

// decodeReason maps a decode error to its taxonomy class label.
func decodeReason(err error) string {
	switch {
	case errors.Is(err, ErrTruncated):
		return "truncated"
	case errors.Is(err, ErrInvalidValue):
		return "invalid_value"
	case errors.Is(err, ErrUnknownDiscriminant):
		return "unknown_discriminant"
	case errors.Is(err, ErrMalformed):
		return "malformed"
	default:
		return "other"
	}
}
