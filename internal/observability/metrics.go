package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	operationCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "assistant_gateway",
		Subsystem: "router",
		Name:      "operations_total",
		Help:      "Number of invocations handled, grouped by operation and outcome.",
	}, []string{"operation", "outcome"})

	modelFallbackCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "assistant_gateway",
		Subsystem: "model",
		Name:      "fallback_attempts_total",
		Help:      "Number of times the conversational call shape was attempted after the primary shape failed.",
	})

	storeErrorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "assistant_gateway",
		Subsystem: "store",
		Name:      "errors_total",
		Help:      "Number of legacy store failures per collection.",
	}, []string{"collection"})
)

func init() {
	prometheus.MustRegister(operationCounter, modelFallbackCounter, storeErrorCounter)
}

// RecordOperation counts one handled invocation.
func RecordOperation(operation, outcome string) {
	operationCounter.WithLabelValues(operation, outcome).Inc()
}

// RecordModelFallback counts one primary-to-fallback transition.
func RecordModelFallback() {
	modelFallbackCounter.Inc()
}

// RecordStoreError counts one store failure for the given collection.
func RecordStoreError(collection string) {
	storeErrorCounter.WithLabelValues(collection).Inc()
}
