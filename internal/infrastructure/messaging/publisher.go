package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Envelope is the value of every notification message; the message key is the channel.
type Envelope struct {
	Channel     string    `json:"channel"`
	Event       string    `json:"event"`
	Payload     any       `json:"payload"`
	PublishedAt time.Time `json:"published_at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher relays notifications to the socket gateway through a Kafka topic.
type KafkaPublisher struct {
	writer messageWriter
	now    func() time.Time
	logger *zap.Logger
}

var _ interfaces.INotificationPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(client *Client, topic string, logger *zap.Logger) *KafkaPublisher {
	return newKafkaPublisher(client.NewWriter(topic), logger)
}

func newKafkaPublisher(w messageWriter, logger *zap.Logger) *KafkaPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KafkaPublisher{writer: w, now: time.Now, logger: logger}
}

func (p *KafkaPublisher) Publish(ctx context.Context, channel, event string, payload any) error {
	now := p.now().UTC()
	data, err := json.Marshal(Envelope{Channel: channel, Event: event, Payload: payload, PublishedAt: now})
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(channel), Value: data, Time: now}); err != nil {
		return err
	}
	p.logger.Debug("[notify][kafka] published", zap.String("channel", channel), zap.String("event", event))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// LogPublisher only logs notifications. It is used when no brokers are configured.
type LogPublisher struct {
	logger *zap.Logger
}

var _ interfaces.INotificationPublisher = (*LogPublisher)(nil)

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, channel, event string, _ any) error {
	p.logger.Info("[notify][log] notification", zap.String("channel", channel), zap.String("event", event))
	return nil
}

func (p *LogPublisher) Close() error { return nil }

// Publisher is a notification publisher that owns a connection.
type Publisher interface {
	interfaces.INotificationPublisher
	Close() error
}

// NewPublisher picks Kafka when brokers are configured and falls back to logging otherwise.
func NewPublisher(brokersCSV, topic string, logger *zap.Logger) Publisher {
	client := NewClient(brokersCSV)
	if !client.Enabled() {
		if logger != nil {
			logger.Warn("[notify][messaging] no kafka brokers configured, notifications are only logged")
		}
		return NewLogPublisher(logger)
	}
	return NewKafkaPublisher(client, topic, logger)
}
