package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
)

const (
	EventsTopic         = "bookreview.events"
	EventsConsumerGroup = "bookreview-events"
)

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS"`
}

// Event is the payload published for every successful mutation.
type Event struct {
	Action     string    `json:"action"`
	EntityID   string    `json:"entityId"`
	ActorID    string    `json:"actorId"`
	OccurredAt time.Time `json:"occurredAt"`
}

const (
	ActionBookCreated   = "book.created"
	ActionBookUpdated   = "book.updated"
	ActionBookDeleted   = "book.deleted"
	ActionReviewCreated = "review.created"
)

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume runs the consumer-group loop until ctx is canceled.
func Consume(ctx context.Context, consumer sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topic string) {
	for {
		if err := consumer.Consume(ctx, []string{topic}, handler); err != nil {
			return
		}
		if ctx.Err() != nil {
			return
		}
	}
}
