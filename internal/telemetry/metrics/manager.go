package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter
	CounterSessionsStarted     prometheus.Counter
	CounterSorenessPrompts     *prometheus.CounterVec
	CounterVolumeAdjustments   *prometheus.CounterVec
	CounterDaysCompleted       prometheus.Counter
	CounterCyclesCompleted     prometheus.Counter

	// gauges
	GaugeRequests       prometheus.Gauge
	GaugeLifeSignal     prometheus.Gauge
	GaugeActiveSessions prometheus.Gauge

	// histograms
	HistogramRequestDuration           *prometheus.HistogramVec
	HistogramDayInitializationDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("backend", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("backend", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimitedRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited requests",
	})
	counterSessionsStarted := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "day_sessions_started",
		Help:      "The total number of started training day sessions",
	})
	counterSorenessPrompts := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "soreness_prompts",
		Help:      "The total number of soreness prompts by outcome",
	}, []string{"outcome"})
	counterVolumeAdjustments := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "volume_adjustments",
		Help:      "The total number of muscle group volume adjustments by outcome",
	}, []string{"outcome"})
	counterDaysCompleted := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "days_completed",
		Help:      "The total number of completed training days",
	})
	counterCyclesCompleted := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "cycles_completed",
		Help:      "The total number of completed mesocycles",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})
	gaugeActiveSessions := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "active_day_sessions",
		Help:      "Number of training day sessions currently held in memory",
	})

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})
	histogramDayInitializationDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "day_initialization_duration_seconds",
		Help:      "Duration of a training day initialization, soreness prompts included",
		Buckets:   []float64{.01, .1, 1, 5, 15, 30, 60, 120, 300, 600},
	})

	return &Manager{
		CounterRequests:                    counterRequests,
		CounterHandleRequestPanic:          counterHandleRequestPanic,
		CounterRateLimitedRequests:         counterRateLimitedRequests,
		CounterSessionsStarted:             counterSessionsStarted,
		CounterSorenessPrompts:             counterSorenessPrompts,
		CounterVolumeAdjustments:           counterVolumeAdjustments,
		CounterDaysCompleted:               counterDaysCompleted,
		CounterCyclesCompleted:             counterCyclesCompleted,
		GaugeRequests:                      gaugeRequests,
		GaugeLifeSignal:                    gaugeLifeSignal,
		GaugeActiveSessions:                gaugeActiveSessions,
		HistogramRequestDuration:           histogramRequestDuration,
		HistogramDayInitializationDuration: histogramDayInitializationDuration,
	}
}
