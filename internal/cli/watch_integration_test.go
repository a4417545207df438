package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/abgdnv/bakery-inventory/internal/events"
	"github.com/abgdnv/bakery-inventory/pkg/config"
	pnats "github.com/abgdnv/bakery-inventory/pkg/nats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcnats "github.com/testcontainers/testcontainers-go/modules/nats"
)

const skipIntegrationTests = "INVENTORY_SKIP_INTEGRATION_TESTS"

// eventSink collects watch output and calls done once want events were printed.
type eventSink struct {
	mu   sync.Mutex
	buf  bytes.Buffer
	want int
	done context.CancelFunc
}

func (s *eventSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := s.buf.Write(p)
	if strings.Count(s.buf.String(), `"event_id"`) >= s.want {
		s.done()
	}
	return n, err
}

func (s *eventSink) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestCLI_Watch(t *testing.T) {
	if os.Getenv(skipIntegrationTests) == "1" {
		t.Skip("Skipping integration tests based on " + skipIntegrationTests + " env var")
	}
	// given
	ctx := context.Background()
	container, err := tcnats.Run(ctx, "nats:2.11.6-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })
	natsURL, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	nc, err := pnats.NewClient(config.NATSConfig{Url: natsURL, Timeout: 5 * time.Second}, logger)
	require.NoError(t, err)
	t.Cleanup(nc.Close)
	js, err := pnats.NewJetStreamContext(nc)
	require.NoError(t, err)
	_, err = pnats.EnsureStream(ctx, js, "INVENTORY", events.StreamSubjects)
	require.NoError(t, err)

	dialer := startServerWith(t, pnats.NewNatsPublisher(js))
	_, err = execute(t, dialer, "add", "--name", "Cupcake", "--quantity", "12", "--category", "cake")
	require.NoError(t, err)
	_, err = execute(t, dialer, "offload", "1", "5")
	require.NoError(t, err)

	t.Setenv("INVENTORYCTL_EVENTS_URL", natsURL)
	watchCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	sink := &eventSink{want: 2, done: cancel}
	cmd := NewRootCmd(dialer)
	cmd.SetOut(sink)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--addr", "passthrough:///bufnet", "watch", "--all"})

	// when
	err = cmd.ExecuteContext(watchCtx)

	// then
	require.NoError(t, err)
	out := sink.String()
	assert.Contains(t, out, `"type": "product_created"`)
	assert.Contains(t, out, `"type": "stock_offloaded"`)
	assert.Contains(t, out, `"amount": 5`)
	assert.Contains(t, out, `"quantity": 7`)
}
