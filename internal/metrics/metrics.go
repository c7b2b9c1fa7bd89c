// Package metrics Prometheusのメトリクス
package metrics

import (
	"context"

	"github.com/EatRateLove/eatratelove_backend/internal/events"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "eatratelove"

// Metrics アプリケーションのコレクター
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	EventsTotal     *prometheus.CounterVec
	RateLimited     prometheus.Counter
}

// New コレクターを作成して登録
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		EventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "activity_events_total",
			Help:      "Activity events published by type and result.",
		}, []string{"type", "result"}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_requests_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
	}
	reg.MustRegister(m.RequestsTotal, m.RequestDuration, m.EventsTotal, m.RateLimited)
	return m
}

// instrumentedPublisher 送信結果を数えるPublisher
type instrumentedPublisher struct {
	next    events.Publisher
	metrics *Metrics
}

// InstrumentPublisher Publisherに送信結果のカウントを追加
func InstrumentPublisher(next events.Publisher, m *Metrics) events.Publisher {
	return &instrumentedPublisher{next: next, metrics: m}
}

func (p *instrumentedPublisher) Publish(ctx context.Context, event events.Event) error {
	err := p.next.Publish(ctx, event)
	result := "ok"
	if err != nil {
		result = "error"
	}
	p.metrics.EventsTotal.WithLabelValues(string(event.Type), result).Inc()
	return err
}

func (p *instrumentedPublisher) Close() error {
	return p.next.Close()
}
