package service

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/bookhive/bookreview-service/pkg/circuit_breaker"
	"github.com/bookhive/bookreview-service/pkg/kafka"
)

type EventPublisher interface {
	Publish(event kafka.Event) error
}

type eventLog struct {
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
	topic    string
}

// NewEventLog wraps the producer in a circuit breaker so a broken broker
// sheds publish attempts instead of stalling every mutation.
func NewEventLog(producer sarama.SyncProducer) EventPublisher {
	return &eventLog{
		producer: producer,
		cb:       circuit_breaker.New(20, 30*time.Second, 0.5, 3),
		topic:    kafka.EventsTopic,
	}
}

func (l *eventLog) Publish(event kafka.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return l.cb.Call(func() error {
		msg := &sarama.ProducerMessage{Topic: l.topic, Value: sarama.StringEncoder(data)}
		_, _, err := l.producer.SendMessage(msg)
		return err
	})
}

// publish is fire-and-forget: event loss never fails the mutation.
func (s *Service) publish(action, entityID, actorID string) {
	if s.events == nil {
		return
	}
	event := kafka.Event{
		Action:     action,
		EntityID:   entityID,
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.events.Publish(event); err != nil {
		s.log.Error("publish event", zap.String("action", action), zap.Error(err))
	}
}
