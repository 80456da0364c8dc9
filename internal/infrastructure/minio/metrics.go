package minio

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	opPut    = "put"
	opRemove = "remove"
	opSign   = "sign"
	opList   = "list"
)

// Observer captures telemetry for object-store operations.
type Observer interface {
	RecordPut(duration time.Duration, sizeBytes int, err error)
	RecordOperation(operation string, duration time.Duration, err error)
}

type PrometheusObserver struct {
	duration      *prometheus.HistogramVec
	errors        *prometheus.CounterVec
	uploadedBytes prometheus.Counter
}

// NewPrometheusObserver registers the blob gateway metrics on reg. Collectors
// already registered by an earlier call are reused.
func NewPrometheusObserver(namespace string, reg prometheus.Registerer) (*PrometheusObserver, error) {
	if namespace == "" {
		namespace = "photoshare"
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "blob",
		Name:      "operation_duration_seconds",
		Help:      "Latency of object store operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
	errs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "blob",
		Name:      "operation_errors_total",
		Help:      "Count of failed object store operations.",
	}, []string{"operation"})
	uploaded := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "blob",
		Name:      "uploaded_bytes_total",
		Help:      "Bytes successfully written to the object store.",
	})

	o := &PrometheusObserver{}
	var err error
	if o.duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	if o.errors, err = register(reg, errs); err != nil {
		return nil, err
	}
	if o.uploadedBytes, err = register(reg, uploaded); err != nil {
		return nil, err
	}

	return o, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing, nil
		}
	}

	var zero T

	return zero, fmt.Errorf("register blob metric: %w", err)
}

func (o *PrometheusObserver) RecordPut(duration time.Duration, sizeBytes int, err error) {
	o.RecordOperation(opPut, duration, err)
	if err == nil {
		o.uploadedBytes.Add(float64(sizeBytes))
	}
}

func (o *PrometheusObserver) RecordOperation(operation string, duration time.Duration, err error) {
	o.duration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		o.errors.WithLabelValues(operation).Inc()
	}
}

type NopObserver struct{}

func (NopObserver) RecordPut(time.Duration, int, error) {}

func (NopObserver) RecordOperation(string, time.Duration, error) {}

func observerOrNop(o Observer) Observer {
	if o == nil {
		return NopObserver{}
	}

	return o
}
