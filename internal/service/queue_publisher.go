package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/iliyamo/hotel-occupancy/internal/model"
	q "github.com/iliyamo/hotel-occupancy/internal/queue"
)

// QueuePublisher publishes checkout notices to RabbitMQ. It dials per
// message, so a broker outage never outlives the event that hit it.
type QueuePublisher struct {
	url   string
	queue string
	log   *zap.Logger
}

func NewQueuePublisher(url, queue string, log *zap.Logger) *QueuePublisher {
	if queue == "" {
		queue = q.CheckedOutQueue
	}
	return &QueuePublisher{url: url, queue: queue, log: log}
}

// CheckedOut implements Notifier.
func (p *QueuePublisher) CheckedOut(ctx context.Context, res model.Result) error {
	return p.Publish(ctx, CheckedOutEvent(res))
}

// CheckedOutEvent builds the broker payload for a successful checkout.
func CheckedOutEvent(res model.Result) q.GuestCheckedOutEvent {
	return q.GuestCheckedOutEvent{
		EventID:             uuid.NewString(),
		RoomNumber:          res.RoomNumber,
		GuestID:             res.GuestID,
		Adults:              res.Adults,
		Children:            res.Children,
		Nights:              res.Nights,
		TotalCharge:         res.Charge,
		CheckedOutAt:        res.At.String(),
		CleaningCompletesAt: res.CleaningCompletion.String(),
	}
}

// Publish sends ev to the configured queue as a persistent JSON message.
func (p *QueuePublisher) Publish(ctx context.Context, ev q.GuestCheckedOutEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	// durable so notices survive broker restarts
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    ev.EventID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		return fmt.Errorf("rabbitmq publish: %w", err)
	}
	p.log.Debug("published checkout notice",
		zap.String("event_id", ev.EventID),
		zap.Int("room", ev.RoomNumber),
		zap.String("queue", p.queue),
	)
	return nil
}
