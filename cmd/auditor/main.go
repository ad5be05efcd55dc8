package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"
)

// auditor tails the audit topic and pretty-prints events. It is the
// read side of the outbox pipeline, useful during incident review.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	_ = godotenv.Load()

	brokers := strings.Split(envOr("KAFKA_BROKERS", "localhost:9092"), ",")
	topic := envOr("AUDIT_TOPIC", "staff_audit_events")
	groupID := envOr("AUDITOR_GROUP_ID", "staffops-auditor")

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   topic,
	})
	defer reader.Close()

	log.Printf("auditor started, topic=%s brokers=%v", topic, brokers)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				log.Println("auditor stopped")
				return
			}
			log.Printf("failed to read message: %v", err)
			continue
		}

		printEvent(msg)
	}
}

func printEvent(msg kafka.Message) {
	var pretty map[string]interface{}
	if err := json.Unmarshal(msg.Value, &pretty); err != nil {
		fmt.Printf("[%s/%d@%d] %s\n", msg.Topic, msg.Partition, msg.Offset, string(msg.Value))
		return
	}

	formatted, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		fmt.Printf("[%s/%d@%d] %s\n", msg.Topic, msg.Partition, msg.Offset, string(msg.Value))
		return
	}

	fmt.Printf("[%s/%d@%d]\n%s\n", msg.Topic, msg.Partition, msg.Offset, string(formatted))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
