package events

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"shop_backend/internal/models"
)

// Publisher emits domain events for downstream consumers.
type Publisher interface {
	PublishOrderPlaced(order *models.Order) error
}

type orderPlacedEvent struct {
	OrderID     uint      `json:"order_id"`
	CustomerID  uint      `json:"customer_id"`
	TotalAmount float64   `json:"total_amount"`
	ItemCount   int       `json:"item_count"`
	OrderDate   time.Time `json:"order_date"`
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaPublisher connects a sync producer to the given brokers
// (comma-separated) and publishes order events to topic.
func NewKafkaPublisher(brokers, topic string) (Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(strings.Split(brokers, ","), config)
	if err != nil {
		return nil, fmt.Errorf("failed to start Sarama producer: %w", err)
	}

	log.Println("Kafka producer connected successfully")
	return &kafkaPublisher{producer: producer, topic: topic}, nil
}

func (p *kafkaPublisher) PublishOrderPlaced(order *models.Order) error {
	event := orderPlacedEvent{
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		TotalAmount: order.TotalAmount,
		ItemCount:   len(order.Items),
		OrderDate:   order.OrderDate,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return err
	}
	log.Printf("Order event sent to topic '%s', partition %d, offset %d", p.topic, partition, offset)
	return nil
}
