package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/app"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/config"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/events"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/handler"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/postgres"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/repo"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/service"
	"github.com/SergeyBogomolovv/marketplace-order-service/pkg/cache"
	"github.com/SergeyBogomolovv/marketplace-order-service/pkg/trm"

	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	cartRepo := repo.NewCartRepo(db)
	catalogRepo := repo.NewCatalogRepo(db)
	inventoryRepo := repo.NewInventoryRepo(db)
	orderRepo := repo.NewOrderRepo(db)
	paymentRepo := repo.NewPaymentRepo(db)
	fulfillmentRepo := repo.NewFulfillmentRepo(db)

	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	publisher := events.NewPublisher(logger, conf.Kafka)
	defer publisher.Close()

	inventoryService := service.NewInventoryService(logger, txManager, inventoryRepo)
	cartService := service.NewCartService(logger, cartRepo, catalogRepo, inventoryService)
	statusService := service.NewStatusService(logger, txManager, orderRepo, inventoryService, orderCache, publisher)
	paymentService := service.NewPaymentService(logger, txManager, paymentRepo, orderRepo, statusService, publisher)
	checkoutService := service.NewCheckoutService(logger, txManager, cartRepo, catalogRepo, orderRepo, paymentRepo, inventoryService, publisher, conf.Checkout)
	orderService := service.NewOrderService(logger, orderRepo, orderCache)
	returnsService := service.NewReturnsService(logger, txManager, fulfillmentRepo, orderRepo, inventoryService, statusService)
	shipmentService := service.NewShipmentService(logger, txManager, fulfillmentRepo, orderRepo, statusService)

	handler.RegisterMetrics()
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, paymentService)
	httpHandler := handler.NewHTTPHandler(
		logger,
		conf.JWT.Secret,
		cartService,
		checkoutService,
		orderService,
		statusService,
		paymentService,
		inventoryService,
		returnsService,
		shipmentService,
	)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
