// Command billing-consumer records checkout notices from the broker in
// BILLING_LOG_DIR/billing.log.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/iliyamo/hotel-occupancy/internal/config"
	"github.com/iliyamo/hotel-occupancy/internal/logger"
	"github.com/iliyamo/hotel-occupancy/internal/queue"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, "billing-consumer")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if cfg.AMQPURL == "" {
		log.Fatal("RABBITMQ_URL or AMQP_URL is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = queue.StartBillingConsumer(ctx, queue.ConsumerConfig{
		URL:    cfg.AMQPURL,
		Queue:  cfg.BillingQueue,
		LogDir: cfg.BillingLogDir,
	}, log)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("consumer stopped", zap.Error(err))
	}
	log.Info("consumer stopped")
}
