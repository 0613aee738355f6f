package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	q "github.com/iliyamo/branch-deploy-status/internal/queue"
)

type fakeChannel struct {
	declared   string
	durable    bool
	key        string
	msg        amqp.Publishing
	publishErr error
}

func (f *fakeChannel) QueueDeclare(name string, durable, _, _, _ bool, _ amqp.Table) (amqp.Queue, error) {
	f.declared, f.durable = name, durable
	return amqp.Queue{Name: name}, nil
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	f.key, f.msg = key, msg
	return f.publishErr
}

func newTestAnnouncer(ch *fakeChannel, closed *bool) *Announcer {
	return &Announcer{
		URL:   "amqp://test",
		Queue: "deployment.started",
		Dial: func(string) (Publisher, func() error, error) {
			return ch, func() error { *closed = true; return nil }, nil
		},
	}
}

func TestAnnounce(t *testing.T) {
	ch := &fakeChannel{}
	closed := false
	a := newTestAnnouncer(ch, &closed)

	ev := q.DeploymentStartedEvent{Version: "1.0.0", Branch: "main", Environment: "production", Port: 3000}
	require.NoError(t, a.Announce(context.Background(), ev))

	assert.Equal(t, "deployment.started", ch.declared)
	assert.True(t, ch.durable)
	assert.Equal(t, "deployment.started", ch.key)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.True(t, closed)

	var got q.DeploymentStartedEvent
	require.NoError(t, json.Unmarshal(ch.msg.Body, &got))
	assert.Equal(t, ev, got)
}

func TestAnnounce_PublishError(t *testing.T) {
	ch := &fakeChannel{publishErr: errors.New("channel closed")}
	closed := false
	a := newTestAnnouncer(ch, &closed)

	err := a.Announce(context.Background(), q.DeploymentStartedEvent{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rabbitmq publish")
	assert.True(t, closed)
}

func TestAnnounce_DialError(t *testing.T) {
	a := &Announcer{
		Queue: "deployment.started",
		Dial: func(string) (Publisher, func() error, error) {
			return nil, nil, errors.New("connection refused")
		},
	}
	err := a.Announce(context.Background(), q.DeploymentStartedEvent{})
	assert.ErrorContains(t, err, "rabbitmq dial")
}
