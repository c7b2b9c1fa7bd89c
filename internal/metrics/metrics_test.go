package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/EatRateLove/eatratelove_backend/internal/events"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingPublisher struct{ events.NopPublisher }

func (failingPublisher) Publish(context.Context, events.Event) error {
	return errors.New("down")
}

func TestInstrumentPublisher(t *testing.T) {
	m := New(prometheus.NewRegistry())

	ok := InstrumentPublisher(events.NopPublisher{}, m)
	require.NoError(t, ok.Publish(context.Background(), events.Event{Type: events.TypeLiked}))
	require.NoError(t, ok.Publish(context.Background(), events.Event{Type: events.TypeLiked}))

	bad := InstrumentPublisher(failingPublisher{}, m)
	assert.Error(t, bad.Publish(context.Background(), events.Event{Type: events.TypeFollowed}))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.EventsTotal.WithLabelValues("post.liked", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsTotal.WithLabelValues("user.followed", "error")))
	assert.NoError(t, ok.Close())
}

func TestNewRegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.RequestsTotal.WithLabelValues("GET", "/health", "200").Inc()
	m.RequestDuration.WithLabelValues("GET", "/health").Observe(0.01)
	m.RateLimited.Inc()

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	assert.Panics(t, func() { New(reg) })
}
