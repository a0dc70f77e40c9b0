package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pizzaria-backend/internal/config"
	"pizzaria-backend/internal/db"
	"pizzaria-backend/internal/events"
	"pizzaria-backend/internal/httpserver"
	"pizzaria-backend/internal/notify"
	"pizzaria-backend/internal/printer"
	"pizzaria-backend/internal/repository/cartcache"
	categoryrepo "pizzaria-backend/internal/repository/category"
	hoursrepo "pizzaria-backend/internal/repository/hours"
	orderrepo "pizzaria-backend/internal/repository/order"
	pizzeriarepo "pizzaria-backend/internal/repository/pizzeria"
	productrepo "pizzaria-backend/internal/repository/product"
	zonerepo "pizzaria-backend/internal/repository/zone"
	cartsvc "pizzaria-backend/internal/service/cart"
	ordersvc "pizzaria-backend/internal/service/order"
	pricingsvc "pizzaria-backend/internal/service/pricing"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Printf("redis not reachable at %s: %v", cfg.RedisAddr, err)
	}

	kafkaWriter := events.NewWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer kafkaWriter.Close()
	publisher := events.NewPublisher(kafkaWriter, logger)

	var sender notify.Sender
	if cfg.WhatsAppGateway != "" {
		sender = notify.NewHTTPSender(cfg.WhatsAppGateway, logger)
	} else {
		sender = notify.NewLogSender(logger)
	}

	// Left nil when no printer is configured; receipts stay reachable
	// through the raw receipt endpoint.
	var receiptDevice interface {
		Print(ctx context.Context, data []byte) error
	}
	if cfg.PrinterAddr != "" {
		receiptDevice = printer.New(printer.NewTCPTransport(cfg.PrinterAddr),
			printer.WithChunkLen(cfg.PrinterChunkLen),
			printer.WithChunkDelay(cfg.PrinterDelay))
	}

	pizzeriaRepo := pizzeriarepo.NewPostgres(dbpool)
	categoryRepo := categoryrepo.NewPostgres(dbpool)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	zoneRepo := zonerepo.NewPostgres(dbpool)
	hoursRepo := hoursrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	cartCache := cartcache.NewRedis(rdb)

	pricingService := pricingsvc.New(productRepo, zoneRepo)
	cartService := cartsvc.New(cartCache)
	orderService := ordersvc.New(orderRepo, hoursRepo, pricingService, sender, publisher, receiptDevice, logger, cfg.TrackingBaseURL)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		PizzeriaRepo: pizzeriaRepo,
		CategoryRepo: categoryRepo,
		ProductRepo:  productRepo,
		ZoneRepo:     zoneRepo,
		HoursRepo:    hoursRepo,
		CartSvc:      cartService,
		OrderSvc:     orderService,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
