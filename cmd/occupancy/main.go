// Command occupancy reads a room configuration block and a stream of
// check-in/check-out events and prints the outcome of every event.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/iliyamo/hotel-occupancy/internal/config"
	"github.com/iliyamo/hotel-occupancy/internal/logger"
	"github.com/iliyamo/hotel-occupancy/internal/service"
)

func main() {
	inPath := flag.String("input", "", "read input from file instead of stdin")
	publish := flag.Bool("publish", false, "publish checkouts to RABBITMQ_URL")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	// stdout carries the results, so logs go to stderr.
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, "occupancy", "stderr")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	var in io.Reader = os.Stdin
	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			log.Fatal("open input", zap.Error(err))
		}
		defer f.Close()
		in = f
	}

	var opts []service.Option
	if *publish {
		if cfg.AMQPURL == "" {
			log.Fatal("-publish needs RABBITMQ_URL or AMQP_URL")
		}
		opts = append(opts, service.WithNotifier(service.NewQueuePublisher(cfg.AMQPURL, cfg.BillingQueue, log)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := service.RunBatch(ctx, in, os.Stdout, log, opts...); err != nil {
		log.Fatal("run failed", zap.Error(err))
	}
}
