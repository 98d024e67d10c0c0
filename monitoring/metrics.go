// Package monitoring exposes prometheus metrics for the intake server:
// submission outcomes, email delivery results and HTTP request timings.
package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "submissions_total",
		Help: "Form submissions by kind and outcome.",
	}, []string{"kind", "outcome"})

	emailSendsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "email_sends_total",
		Help: "Notification email attempts by kind, recipient role and result.",
	}, []string{"kind", "recipient", "result"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by path, method and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path", "method", "status"})
)

// RecordSubmission counts one submission outcome. Outcomes are
// "stored", "validation_failed" and "storage_failed".
func RecordSubmission(kind, outcome string) {
	submissionsTotal.WithLabelValues(kind, outcome).Inc()
}

// RecordEmailResults counts the two independent email attempts of one
// stored submission.
func RecordEmailResults(kind string, operatorOK, submitterOK bool) {
	emailSendsTotal.WithLabelValues(kind, "operator", sendResult(operatorOK)).Inc()
	emailSendsTotal.WithLabelValues(kind, "submitter", sendResult(submitterOK)).Inc()
}

func sendResult(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}

// Handler returns the /metrics endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// statusRecorder captures the response status for the duration metric.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records request durations for every handled request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		httpRequestDuration.WithLabelValues(
			r.URL.Path,
			r.Method,
			strconv.Itoa(recorder.status),
		).Observe(time.Since(start).Seconds())
	})
}
