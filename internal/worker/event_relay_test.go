package worker_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/spec-kit/employee-service/internal/events"
	"github.com/spec-kit/employee-service/internal/worker"
)

type countingPublisher struct {
	count int
}

func (p *countingPublisher) Publish(context.Context, string, []byte) error {
	p.count++
	return nil
}

func TestStartEventRelay_ForwardsEveryType(t *testing.T) {
	d := events.NewInMemoryDispatcher()
	pub := &countingPublisher{}

	worker.StartEventRelay(d, zaptest.NewLogger(t), worker.RelayConfig{Publisher: pub, Channel: "employees.events"})

	for _, typ := range events.AllTypes() {
		require.NoError(t, d.Publish(context.Background(), events.NewEvent(typ, "abc", nil)))
	}
	assert.Equal(t, len(events.AllTypes()), pub.count)
}

func TestStartEventRelay_WithoutPublisher(t *testing.T) {
	d := events.NewInMemoryDispatcher()

	worker.StartEventRelay(d, zaptest.NewLogger(t), worker.RelayConfig{})

	assert.NoError(t, d.Publish(context.Background(), events.NewEvent(events.EventEmployeeCreated, "abc", nil)))
}

func TestStartEventRelay_NilDispatcher(t *testing.T) {
	assert.NotPanics(t, func() {
		worker.StartEventRelay(nil, zaptest.NewLogger(t), worker.RelayConfig{})
	})
}
