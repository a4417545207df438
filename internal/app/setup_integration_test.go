package app

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/abgdnv/bakery-inventory/pkg/config"
	pnats "github.com/abgdnv/bakery-inventory/pkg/nats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcnats "github.com/testcontainers/testcontainers-go/modules/nats"
)

const skipIntegrationTests = "INVENTORY_SKIP_INTEGRATION_TESTS"

func TestSetupPublisher_NATS(t *testing.T) {
	if os.Getenv(skipIntegrationTests) == "1" {
		t.Skip("Skipping integration tests based on " + skipIntegrationTests + " env var")
	}
	ctx := context.Background()
	container, err := tcnats.Run(ctx, "nats:2.11.6-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })
	natsURL, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		stream  string
		wantErr bool
	}{
		{name: "Success - stream created", stream: "INVENTORY", wantErr: false},
		{name: "Error - invalid stream name", stream: "INVENTORY.BAD", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			cfg := config.NATSConfig{Enabled: true, Url: natsURL, Timeout: 5 * time.Second, Stream: tc.stream}

			// when
			publisher, closeFn, err := SetupPublisher(ctx, cfg, slog.New(slog.DiscardHandler))

			// then
			if tc.wantErr {
				require.Error(t, err)
				assert.Nil(t, publisher)
				assert.Nil(t, closeFn)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, &pnats.NatsPublisher{}, publisher)
			assert.NotPanics(t, closeFn)
		})
	}
}
