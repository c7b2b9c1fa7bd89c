package events

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

// messageWriter kafka.Writerのうち利用する部分
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher Kafkaへイベントを書き込むPublisher
type KafkaPublisher struct {
	writer messageWriter
}

// NewKafkaPublisher 非同期書き込みのKafkaPublisherを作成
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		BatchTimeout: 50 * time.Millisecond,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Printf("Kafkaへのイベント送信に失敗しました (%d件): %v", len(messages), err)
			}
		},
	}
	return &KafkaPublisher{writer: w}
}

// Publish イベントをJSONで書き込む
// キーはActorIDにしてユーザー単位の順序を保つ
func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(event.ActorID), 10)),
		Value: body,
		Time:  event.At,
	})
}

// Close 書き込みをフラッシュして閉じる
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
