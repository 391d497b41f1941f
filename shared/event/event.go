package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"time"

	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	TopicAccounts = "hotel.accounts"
	TopicBookings = "hotel.bookings"
	TopicBills    = "hotel.bills"
	TopicSettings = "hotel.settings"
)

const (
	ActionCreated    = "created"
	ActionUpdated    = "updated"
	ActionDeleted    = "deleted"
	ActionRegistered = "registered"
	ActionLoggedIn   = "logged_in"
	ActionReset      = "reset"
)

type Event struct {
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	ID         string    `json:"id"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload,omitempty"`
}

// New stamps an event with the current time.
func New(entity, action, id, actor string, payload any) Event {
	return Event{
		Entity:     entity,
		Action:     action,
		ID:         id,
		Actor:      actor,
		OccurredAt: timezone.Now(),
		Payload:    payload,
	}
}

// Publisher emits domain events. Publishing is best effort and never fails the caller.
type Publisher interface {
	Publish(ctx context.Context, topic string, evt Event)
}

type kafkaPublisher struct {
	client kafka.Client
	otel   otel.Otel
}

// NewPublisher returns a publisher that drops events when client is nil.
func NewPublisher(client kafka.Client, otl otel.Otel) Publisher {
	if client == nil {
		return noopPublisher{}
	}

	return &kafkaPublisher{
		client: client,
		otel:   otl,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, topic string, evt Event) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"event.topic":  topic,
		"event.entity": evt.Entity,
		"event.action": evt.Action,
	})

	if err := p.client.SendMessages(ctx, topic, kafka.Message{Key: evt.ID, Value: evt}); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("topic", topic).Str("id", evt.ID).Msg("failed to publish event")
	}
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, Event) {}
