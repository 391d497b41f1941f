package event_test

import (
	"context"
	"errors"
	"testing"

	"hotel/infras/kafka"
	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/infras/otel/mocks"
	"hotel/shared/event"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNewPublisher_WithoutClientDropsEvents(t *testing.T) {
	publisher := event.NewPublisher(nil, mocks.NewOtel())

	assert.NotPanics(t, func() {
		publisher.Publish(context.Background(), event.TopicBookings, event.New("booking", event.ActionCreated, "DP1", "admin", nil))
	})
}

func TestPublish_SendsKeyedMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)
	publisher := event.NewPublisher(client, mocks.NewOtel())

	evt := event.New("bill", event.ActionDeleted, "HD3", "admin", nil)

	client.EXPECT().
		SendMessages(gomock.Any(), event.TopicBills, kafka.Message{Key: "HD3", Value: evt}).
		Return(nil)

	publisher.Publish(context.Background(), event.TopicBills, evt)
}

func TestPublish_FailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)
	publisher := event.NewPublisher(client, mocks.NewOtel())

	client.EXPECT().SendMessages(gomock.Any(), event.TopicAccounts, gomock.Any()).Return(errors.New("broker down"))

	assert.NotPanics(t, func() {
		publisher.Publish(context.Background(), event.TopicAccounts, event.New("account", event.ActionRegistered, "TK1", "guest", nil))
	})
}

func TestNew(t *testing.T) {
	evt := event.New("booking", event.ActionUpdated, "DP2", "admin", map[string]string{"status": "CheckedIn"})

	assert.Equal(t, "booking", evt.Entity)
	assert.Equal(t, event.ActionUpdated, evt.Action)
	assert.Equal(t, "DP2", evt.ID)
	assert.False(t, evt.OccurredAt.IsZero())
}
