package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aevohorology/storefront-service/config"
	"github.com/aevohorology/storefront-service/internal/dto"
	"github.com/segmentio/kafka-go"
)

var KafkaConn *kafka.Conn

func CreateKafkaProducer(config *config.Config) *kafka.Conn {
	conn, err := kafka.DialLeader(context.Background(), "tcp", config.KafkaConfig.BrokerAddress, config.KafkaConfig.BrokerTopic, config.KafkaConfig.BrokerPartition)
	if err != nil {
		panic(err)
	}

	KafkaConn = conn
	return KafkaConn
}

// EventPublisher writes storefront domain events to the broker.
type EventPublisher struct {
	conn *kafka.Conn
}

func CreateNewEventPublisher(conn *kafka.Conn) *EventPublisher {
	return &EventPublisher{conn: conn}
}

func (p *EventPublisher) Publish(ctx context.Context, eventType string, data interface{}) error {
	msg := dto.KafkaMessage{
		EventType: eventType,
		Data:      data,
	}

	jsonMsg, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	if err := p.conn.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
		return err
	}

	_, err = p.conn.WriteMessages(kafka.Message{
		Key:   []byte(eventType),
		Value: jsonMsg,
	})

	return err
}
