//go:generate mockgen -source ./producer.go -destination=./mocks/producer.go -package=mock_outbox
package outbox

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

type Producer interface {
	SendMessage(ctx context.Context, topic string, key []byte, value []byte) error
	Close() error
}

// KafkaProducer ships audit events to the cluster configured in the
// environment.
type KafkaProducer struct {
	writer *kafka.Writer
}

func NewKafkaProducer(brokers []string) *KafkaProducer {
	return &KafkaProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *KafkaProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}
	return nil
}

func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

// ConsoleProducer is the local-development stand-in for Kafka.
type ConsoleProducer struct{}

func NewConsoleProducer() *ConsoleProducer {
	log.Println("Initialized console producer, audit events will be printed")
	return &ConsoleProducer{}
}

func (p *ConsoleProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		fmt.Printf("\n--- AUDIT (CONSOLE) ---\nTopic: %s\nKey:   %s\nValue: %s\n--- END AUDIT ---\n",
			topic, string(key), string(value))
		return nil
	}
}

func (p *ConsoleProducer) Close() error {
	return nil
}
