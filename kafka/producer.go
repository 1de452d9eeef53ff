package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Sunilkumarmehta2002/swipemyhood/models"
)

// OrderEvent is the payload published after a successful checkout.
type OrderEvent struct {
	Event       string    `json:"event"`
	OrderNumber string    `json:"order_number"`
	UserID      string    `json:"user_id"`
	Total       int       `json:"total"`
	ItemCount   int       `json:"item_count"`
	Timestamp   time.Time `json:"timestamp"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &Producer{writer: writer}
}

// PublishOrderConfirmed emits an order.confirmed event keyed by user ID.
func (p *Producer) PublishOrderConfirmed(ctx context.Context, order *models.Order) error {
	itemCount := 0
	for _, item := range order.Items {
		itemCount += item.Quantity
	}

	event := OrderEvent{
		Event:       "order.confirmed",
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		Total:       order.Total,
		ItemCount:   itemCount,
		Timestamp:   order.CreatedAt,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(order.UserID),
		Value: data,
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *Producer) Close() {
	_ = p.writer.Close()
}
