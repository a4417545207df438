package cli

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/abgdnv/bakery-inventory/internal/events"
	"github.com/abgdnv/bakery-inventory/pkg/config"
	pnats "github.com/abgdnv/bakery-inventory/pkg/nats"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		durable    string
		deliverAll bool
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream inventory events as they are published",
		Long: `watch reads the inventory event stream from NATS JetStream and prints each event.

Without --durable an ephemeral consumer is used and only new events are shown.
Stop with Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.Events
			if durable != "" {
				cfg.Consumer = durable
			}
			if deliverAll {
				cfg.DeliverAll = true
			}
			nc, err := pnats.NewClient(config.NATSConfig{
				Url:           cfg.Url,
				Timeout:       a.cfg.Client.Timeout,
				MaxReconnects: -1,
			}, a.logger)
			if err != nil {
				return err
			}
			defer nc.Close()
			js, err := pnats.NewJetStreamContext(nc)
			if err != nil {
				return err
			}

			err = pnats.Subscribe(cmd.Context(), js, cfg, a.logger, func(ctx context.Context, msg jetstream.Msg) error {
				var event events.ProductEvent
				if err := json.Unmarshal(msg.Data(), &event); err != nil {
					a.logger.WarnContext(ctx, "Skipping malformed event", "subject", msg.Subject(), "error", err)
					return nil
				}
				return a.print(cmd.OutOrStdout(), event)
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}),
	}
	cmd.Flags().StringVar(&durable, "durable", "", "durable consumer name, resumes where the last watch stopped")
	cmd.Flags().BoolVar(&deliverAll, "all", false, "replay the whole stream before following new events")
	return cmd
}
