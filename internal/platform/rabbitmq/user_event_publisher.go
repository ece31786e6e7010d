package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"usermgmt-api/internal/model"
)

// UserEventPublisher sends user events to a durable topic exchange, routed by event type.
type UserEventPublisher struct {
	conn     *amqp.Connection
	exchange string
}

func NewUserEventPublisher(conn *amqp.Connection, exchange string) *UserEventPublisher {
	return &UserEventPublisher{
		conn:     conn,
		exchange: exchange,
	}
}

func (p *UserEventPublisher) Publish(ctx context.Context, event model.UserEvent) error {
	msg, err := encodeEvent(event)
	if err != nil {
		return err
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open rabbitmq channel failed: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(
		p.exchange,
		amqp.ExchangeTopic,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("declare exchange failed: %w", err)
	}

	if err := ch.PublishWithContext(ctx, p.exchange, event.Type, false, false, msg); err != nil {
		return fmt.Errorf("publish user event failed: %w", err)
	}
	return nil
}

func (p *UserEventPublisher) Close() error {
	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}
	return p.conn.Close()
}

func encodeEvent(event model.UserEvent) (amqp.Publishing, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal user event failed: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		Type:         event.Type,
		Timestamp:    event.OccurredAt,
		Body:         payload,
		DeliveryMode: amqp.Persistent,
	}, nil
}
