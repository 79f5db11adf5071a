package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/iliyamo/hotel-occupancy/internal/config"
	"github.com/iliyamo/hotel-occupancy/internal/database"
	"github.com/iliyamo/hotel-occupancy/internal/handler"
	"github.com/iliyamo/hotel-occupancy/internal/input"
	"github.com/iliyamo/hotel-occupancy/internal/logger"
	"github.com/iliyamo/hotel-occupancy/internal/middleware"
	"github.com/iliyamo/hotel-occupancy/internal/model"
	"github.com/iliyamo/hotel-occupancy/internal/repository"
	"github.com/iliyamo/hotel-occupancy/internal/router"
	"github.com/iliyamo/hotel-occupancy/internal/service"
	"github.com/iliyamo/hotel-occupancy/internal/utils"
)

func main() {
	hashPassword := flag.String("hash-password", "", "print a bcrypt hash for OPERATOR_PASSWORD_HASH and exit")
	flag.Parse()
	if *hashPassword != "" {
		h, err := utils.HashPassword(*hashPassword, 0)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(h)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, "occupancy-server")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := cfg.ValidateServer(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configs, err := loadRooms(ctx, cfg, log)
	if err != nil {
		log.Fatal("load rooms", zap.Error(err))
	}
	rooms := repository.NewRoomRegistry()
	if err := rooms.Register(configs...); err != nil {
		log.Fatal("register rooms", zap.Error(err))
	}

	var opts []service.Option
	if cfg.AMQPURL != "" {
		opts = append(opts, service.WithNotifier(service.NewQueuePublisher(cfg.AMQPURL, cfg.BillingQueue, log)))
	} else {
		log.Info("no broker configured, checkout notices disabled")
	}
	dispatcher := service.NewDispatcher(rooms, log, opts...)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn("redis unavailable, rate limiting and run cache disabled")
	} else {
		defer func() { _ = rdb.Close() }()
	}
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb, log)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLog(log))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, log), limiter)
	router.RegisterRuns(e, handler.NewRunHandler(log), limiter, cache)
	router.RegisterFrontDesk(e, handler.NewFrontDeskHandler(dispatcher, log), cfg.JWTSecret, limiter)

	addr := ":" + cfg.Port
	go func() {
		log.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env), zap.Int("rooms", rooms.Len()))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}

// loadRooms reads the room configuration from ROOMS_FILE, or from MySQL when
// DB_HOST is set.
func loadRooms(ctx context.Context, cfg config.Config, log *zap.Logger) ([]model.RoomConfig, error) {
	if !cfg.UseDatabase() {
		log.Info("loading rooms from file", zap.String("path", cfg.RoomsFile))
		return input.ReadRoomsFile(cfg.RoomsFile)
	}
	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	if err := database.EnsureSchema(ctx, db); err != nil {
		return nil, err
	}
	log.Info("loading rooms from mysql", zap.String("host", cfg.DBHost), zap.String("db", cfg.DBName))
	return repository.NewRoomConfigRepo(db).ListAll(ctx)
}
