package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/spec-kit/employee-service/internal/events"
)

type recordingPublisher struct {
	channel  string
	payloads [][]byte
	err      error
}

func (p *recordingPublisher) Publish(_ context.Context, channel string, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.channel = channel
	p.payloads = append(p.payloads, payload)
	return nil
}

func TestDispatcher_RoutesByType(t *testing.T) {
	d := events.NewInMemoryDispatcher()
	var created, deleted int
	d.Subscribe(events.EventEmployeeCreated, func(context.Context, events.Event) error { created++; return nil })
	d.Subscribe(events.EventEmployeeDeleted, func(context.Context, events.Event) error { deleted++; return nil })

	require.NoError(t, d.Publish(context.Background(), events.NewEvent(events.EventEmployeeCreated, "id-1", nil)))
	require.NoError(t, d.Publish(context.Background(), events.NewEvent(events.EventEmployeeUpdated, "id-1", nil)))

	assert.Equal(t, 1, created)
	assert.Equal(t, 0, deleted)
}

func TestDispatcher_RunsAllHandlersAndJoinsErrors(t *testing.T) {
	d := events.NewInMemoryDispatcher()
	boom := errors.New("boom")
	var calls int
	d.Subscribe(events.EventEmployeeUpdated, func(context.Context, events.Event) error { calls++; return boom })
	d.Subscribe(events.EventEmployeeUpdated, func(context.Context, events.Event) error { calls++; return nil })

	err := d.Publish(context.Background(), events.NewEvent(events.EventEmployeeUpdated, "id-1", nil))

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestNewEvent(t *testing.T) {
	a := events.NewEvent(events.EventEmployeeDeleted, "abc", nil)
	b := events.NewEvent(events.EventEmployeeDeleted, "abc", nil)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "abc", a.EmployeeID)
	assert.False(t, a.Timestamp.IsZero())
}

func TestRelayHandler_PublishesJSON(t *testing.T) {
	pub := &recordingPublisher{}
	relay := events.NewRelayHandler(pub, "employees.events")
	ev := events.NewEvent(events.EventEmployeeCreated, "abc", events.EmployeeSnapshot{FirstName: "Miluka12"})

	require.NoError(t, relay(context.Background(), ev))

	require.Len(t, pub.payloads, 1)
	assert.Equal(t, "employees.events", pub.channel)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(pub.payloads[0], &decoded))
	assert.Equal(t, "employee_created", decoded["type"])
	assert.Equal(t, "abc", decoded["employee_id"])
	assert.Equal(t, "Miluka12", decoded["payload"].(map[string]any)["firstName"])
}

func TestRelayHandler_WrapsPublishError(t *testing.T) {
	boom := errors.New("connection refused")
	relay := events.NewRelayHandler(&recordingPublisher{err: boom}, "ch")

	err := relay(context.Background(), events.NewEvent(events.EventEmployeeDeleted, "abc", nil))

	require.ErrorIs(t, err, boom)
}

func TestLogHandler(t *testing.T) {
	h := events.NewLogHandler(zaptest.NewLogger(t))

	assert.NoError(t, h(context.Background(), events.NewEvent(events.EventEmployeeUpdated, "abc", nil)))
}
