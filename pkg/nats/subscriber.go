package nats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/abgdnv/bakery-inventory/pkg/config"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// Handler processes one message. A returned error naks the message for redelivery.
type Handler func(ctx context.Context, msg jetstream.Msg) error

// Subscribe pulls messages from the configured consumer and hands them to handle
// one at a time until ctx is done. It returns ctx.Err() on cancellation.
func Subscribe(ctx context.Context, js jetstream.JetStream, cfg config.SubscriberConfig, logger *slog.Logger, handle Handler) error {
	consumerCfg := jetstream.ConsumerConfig{
		Durable:       cfg.Consumer,
		FilterSubject: cfg.Subject,
		AckPolicy:     jetstream.AckExplicitPolicy,
	}
	if cfg.Consumer == "" {
		consumerCfg.InactiveThreshold = time.Minute
		if !cfg.DeliverAll {
			consumerCfg.DeliverPolicy = jetstream.DeliverNewPolicy
		}
	}
	consumer, err := js.CreateOrUpdateConsumer(ctx, cfg.Stream, consumerCfg)
	if err != nil {
		return fmt.Errorf("failed to create consumer on %s: %w", cfg.Stream, err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		batch, err := consumer.Fetch(cfg.Batch, jetstream.FetchMaxWait(cfg.Timeout))
		if err != nil {
			if errors.Is(err, nats.ErrTimeout) {
				continue
			}
			logger.ErrorContext(ctx, "Failed to fetch messages", "stream", cfg.Stream, "error", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(cfg.Interval):
			}
			continue
		}
		for msg := range batch.Messages() {
			dispatch(ctx, msg, handle, logger)
		}
	}
}

func dispatch(ctx context.Context, msg jetstream.Msg, handle Handler, logger *slog.Logger) {
	ctx = otel.GetTextMapPropagator().Extract(ctx, propagation.HeaderCarrier(msg.Headers()))
	if err := handle(ctx, msg); err != nil {
		logger.WarnContext(ctx, "Failed to handle message", "subject", msg.Subject(), "error", err)
		if err := msg.Nak(); err != nil {
			logger.ErrorContext(ctx, "Failed to nak message", "subject", msg.Subject(), "error", err)
		}
		return
	}
	if err := msg.Ack(); err != nil {
		logger.ErrorContext(ctx, "Failed to ack message", "subject", msg.Subject(), "error", err)
	}
}
