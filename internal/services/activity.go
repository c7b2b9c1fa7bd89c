package services

import (
	"context"
	"log"
	"time"

	"github.com/EatRateLove/eatratelove_backend/internal/events"
)

// publish アクティビティイベントを送信する
// 送信失敗はログに残すだけで呼び出し元には返さない
func publish(publisher events.Publisher, event events.Event) {
	if publisher == nil {
		return
	}
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}
	if err := publisher.Publish(context.Background(), event); err != nil {
		log.Printf("イベントの送信に失敗しました: type=%s actor=%d: %v", event.Type, event.ActorID, err)
	}
}
