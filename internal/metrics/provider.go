package metrics

import (
	"strconv"
	"time"
)

//go:generate mockery --name MetricsProvider --dir . --output ../../mocks --outpkg mocks --with-expecter
type MetricsProvider interface {
	IncrementUsersCreated()
	IncrementPostsCreated()

	IncrementHTTPRequests(method, path, status string)
	RecordHTTPRequestDuration(method, path string, duration time.Duration)

	IncrementDatabaseQueries(queryType string, success bool)

	SetServiceHealth(healthy bool)
}

type PrometheusMetricsProvider struct{}

func NewPrometheusMetricsProvider() MetricsProvider {
	return &PrometheusMetricsProvider{}
}

func (p *PrometheusMetricsProvider) IncrementUsersCreated() {
	UsersCreatedTotal.Inc()
}

func (p *PrometheusMetricsProvider) IncrementPostsCreated() {
	PostsCreatedTotal.Inc()
}

func (p *PrometheusMetricsProvider) IncrementHTTPRequests(method, path, status string) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
}

func (p *PrometheusMetricsProvider) RecordHTTPRequestDuration(method, path string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (p *PrometheusMetricsProvider) IncrementDatabaseQueries(queryType string, success bool) {
	DatabaseQueriesTotal.WithLabelValues(queryType, strconv.FormatBool(success)).Inc()
}

func (p *PrometheusMetricsProvider) SetServiceHealth(healthy bool) {
	if healthy {
		ServiceHealth.Set(1)
	} else {
		ServiceHealth.Set(0)
	}
}
