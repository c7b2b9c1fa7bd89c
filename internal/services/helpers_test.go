package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/EatRateLove/eatratelove_backend/internal/config"
	"github.com/EatRateLove/eatratelove_backend/internal/events"
	"github.com/EatRateLove/eatratelove_backend/internal/repository"
	"github.com/EatRateLove/eatratelove_backend/internal/testutil"

	"gorm.io/gorm"
)

// recordingPublisher 送信されたイベントを記録する
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []events.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]events.Type, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}
	return types
}

var errBrokerDown = errors.New("broker down")

type testEnv struct {
	db        *gorm.DB
	publisher *recordingPublisher
	users     repository.UserRepository
	follows   repository.FollowRepository
	posts     repository.PostRepository
	comments  repository.CommentRepository
	feeds     repository.FeedRepository
	reviews   repository.ReviewRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewDB(t)
	return &testEnv{
		db:        db,
		publisher: &recordingPublisher{},
		users:     repository.NewUserRepository(db),
		follows:   repository.NewFollowRepository(db),
		posts:     repository.NewPostRepository(db),
		comments:  repository.NewCommentRepository(db),
		feeds:     repository.NewFeedRepository(db),
		reviews:   repository.NewReviewRepository(db),
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:   "test-secret",
			TokenExpiry: time.Hour,
		},
	}
}
