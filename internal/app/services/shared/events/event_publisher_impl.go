package events

import (
	"context"
	"heallink-service/internal/app/contracts"
	"heallink-service/internal/pkg/constvars"
	"heallink-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type eventEnvelope struct {
	EventType string      `json:"eventType"`
	Payload   interface{} `json:"payload"`
}

type rabbitEventPublisher struct {
	Channel *amqp091.Channel
	Queue   string
	Log     *zap.Logger
}

func NewRabbitEventPublisher(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.EventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &rabbitEventPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}, nil
}

func (p *rabbitEventPublisher) Publish(ctx context.Context, eventType string, payload interface{}) error {
	body, err := json.Marshal(eventEnvelope{EventType: eventType, Payload: payload})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		p.Log.Warn("failed to publish domain event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return exceptions.ErrEventPublish(err)
	}

	return nil
}

type noopEventPublisher struct{}

// NewNoopEventPublisher backs deployments that run without a broker.
func NewNoopEventPublisher() contracts.EventPublisher {
	return &noopEventPublisher{}
}

func (p *noopEventPublisher) Publish(ctx context.Context, eventType string, payload interface{}) error {
	return nil
}
