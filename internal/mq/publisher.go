package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/diwanalardiya/ardiya/internal/domain"
)

// MessageType — тип сообщения в очереди.
type MessageType string

// Типы сообщений.
const (
	MessageTypeLeadCreated MessageType = "lead.created"
)

// Message — сообщение для публикации.
type Message struct {
	// ID — уникальный идентификатор сообщения.
	ID string `json:"id"`

	// Type — тип сообщения.
	Type MessageType `json:"type"`

	// Payload — полезная нагрузка.
	Payload any `json:"payload"`

	// Timestamp — время создания.
	Timestamp time.Time `json:"timestamp"`
}

// LeadCreatedPayload — payload события о новой заявке.
type LeadCreatedPayload struct {
	LeadID uuid.UUID       `json:"lead_id"`
	Kind   domain.LeadKind `json:"kind"`
}

// LeadCreated декодирует payload события lead.created.
//
// После транспортировки через JSON payload приходит как map,
// поэтому декодируем через повторный marshal.
func (m *Message) LeadCreated() (*LeadCreatedPayload, error) {
	if m.Type != MessageTypeLeadCreated {
		return nil, fmt.Errorf("unexpected message type: %s", m.Type)
	}

	data, err := json.Marshal(m.Payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	var p LeadCreatedPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal lead.created payload: %w", err)
	}

	if p.LeadID == uuid.Nil {
		return nil, fmt.Errorf("lead.created payload has empty lead_id")
	}

	return &p, nil
}

// Publisher публикует события о заявках в RabbitMQ.
type Publisher struct {
	conn   *Connection
	logger *slog.Logger
}

// NewPublisher создаёт новый Publisher.
func NewPublisher(conn *Connection, logger *slog.Logger) *Publisher {
	return &Publisher{
		conn:   conn,
		logger: logger,
	}
}

// Publish публикует сообщение в указанный exchange с routing key.
func (p *Publisher) Publish(ctx context.Context, exchange Exchange, routingKey RoutingKey, msg *Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	return p.conn.WithChannel(ctx, func(ch *amqp.Channel) error {
		err := ch.PublishWithContext(
			ctx,
			string(exchange),   // exchange
			string(routingKey), // routing key
			false,
			false,
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent, // сообщение переживёт рестарт RabbitMQ
				MessageId:    msg.ID,
				Timestamp:    msg.Timestamp,
				Body:         body,
			},
		)
		if err != nil {
			return fmt.Errorf("publish to %s/%s: %w", exchange, routingKey, err)
		}

		p.logger.Debug("published message",
			"exchange", exchange,
			"routing_key", routingKey,
			"message_id", msg.ID,
			"type", msg.Type,
		)

		return nil
	})
}

// PublishLeadCreated публикует событие о новой заявке.
// Потребитель: Notifier.
func (p *Publisher) PublishLeadCreated(ctx context.Context, kind domain.LeadKind, leadID uuid.UUID) error {
	msg := &Message{
		ID:        uuid.New().String(),
		Type:      MessageTypeLeadCreated,
		Payload:   LeadCreatedPayload{LeadID: leadID, Kind: kind},
		Timestamp: time.Now(),
	}

	key := RoutingKeyQuote
	if kind == domain.LeadKindContact {
		key = RoutingKeyContact
	}

	return p.Publish(ctx, ExchangeLeads, key, msg)
}
