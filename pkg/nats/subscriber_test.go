package nats

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	natsgo "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// mockMsg implements the parts of jetstream.Msg that dispatch uses.
type mockMsg struct {
	jetstream.Msg
	mock.Mock
	headers natsgo.Header
}

func (m *mockMsg) Subject() string        { return "inventory.stock.added" }
func (m *mockMsg) Headers() natsgo.Header { return m.headers }

func (m *mockMsg) Ack() error {
	return m.Called().Error(0)
}

func (m *mockMsg) Nak() error {
	return m.Called().Error(0)
}

func TestDispatch(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	testCases := []struct {
		name       string
		handlerErr error
		setupMock  func(m *mockMsg)
	}{
		{
			name:      "acks handled message",
			setupMock: func(m *mockMsg) { m.On("Ack").Return(nil).Once() },
		},
		{
			name:       "naks failed message",
			handlerErr: errors.New("stdout closed"),
			setupMock:  func(m *mockMsg) { m.On("Nak").Return(nil).Once() },
		},
		{
			name:      "ack failure is only logged",
			setupMock: func(m *mockMsg) { m.On("Ack").Return(natsgo.ErrConnectionClosed).Once() },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			msg := &mockMsg{headers: natsgo.Header{}}
			tc.setupMock(msg)
			handle := func(context.Context, jetstream.Msg) error { return tc.handlerErr }

			// when
			dispatch(context.Background(), msg, handle, logger)

			// then
			msg.AssertExpectations(t)
		})
	}
}

func TestDispatch_ExtractsTraceContext(t *testing.T) {
	// given
	otel.SetTextMapPropagator(propagation.TraceContext{})
	headers := natsgo.Header{}
	propagation.HeaderCarrier(headers).Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	msg := &mockMsg{headers: headers}
	msg.On("Ack").Return(nil)

	var traceID string
	handle := func(ctx context.Context, _ jetstream.Msg) error {
		traceID = trace.SpanContextFromContext(ctx).TraceID().String()
		return nil
	}

	// when
	dispatch(context.Background(), msg, handle, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// then
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", traceID)
}
