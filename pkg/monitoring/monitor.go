package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	SessionsRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "coaching_sessions_recorded_total",
			Help: "Total number of learning sessions recorded",
		},
	)

	AchievementsAwarded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coaching_achievements_awarded_total",
			Help: "Total number of achievements awarded",
		},
		[]string{"type"},
	)

	ChallengesCompleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coaching_challenges_completed_total",
			Help: "Total number of challenges completed",
		},
		[]string{"type"},
	)

	AnalysisRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coaching_analysis_requests_total",
			Help: "Total number of external analysis calls",
		},
		[]string{"outcome"},
	)

	AnalysisDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "coaching_analysis_duration_seconds",
			Help:    "Duration of external analysis calls",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10},
		},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(SessionsRecorded)
	prometheus.MustRegister(AchievementsAwarded)
	prometheus.MustRegister(ChallengesCompleted)
	prometheus.MustRegister(AnalysisRequests)
	prometheus.MustRegister(AnalysisDuration)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
