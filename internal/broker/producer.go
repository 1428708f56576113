package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/laundrify/backoffice/internal/entity"
)

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, v ...any) {
	l.l.Info(fmt.Sprintf(format, v...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}

// Producer publishes order lifecycle events. Writes are async and
// fire-and-forget: a broker outage must never fail the HTTP request.
type Producer struct {
	l           *slog.Logger
	w           *kafka.Writer
	ordersTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:           l,
		w:           w,
		ordersTopic: topic,
	}
}

type OrderEvent struct {
	Type          string    `json:"type"`
	OrderID       string    `json:"order_id"`
	Invoice       string    `json:"invoice"`
	UserID        string    `json:"user_id"`
	CustomerID    string    `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	TotalAmount   int64     `json:"total_amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func (p *Producer) OrderCreated(ctx context.Context, o entity.Order) {
	p.publish(ctx, "order.created", o)
}

func (p *Producer) OrderStatusChanged(ctx context.Context, o entity.Order) {
	p.publish(ctx, "order.status_changed", o)
}

func (p *Producer) publish(ctx context.Context, eventType string, o entity.Order) {
	event := OrderEvent{
		Type:          eventType,
		OrderID:       o.ID.String(),
		Invoice:       o.Invoice,
		UserID:        o.UserID.String(),
		CustomerID:    o.CustomerID.String(),
		CustomerName:  o.CustomerName,
		Status:        o.Status.String(),
		PaymentStatus: o.PaymentStatus.String(),
		TotalAmount:   o.TotalAmount,
		OccurredAt:    time.Now(),
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(o.ID.String()),
		Value: b,
		Topic: p.ordersTopic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
