package main

import (
	"context"
	"log"

	"hotelcart/config"
	"hotelcart/constants"
	"hotelcart/controllers"
	"hotelcart/jobs"
	"hotelcart/middleware"
	"hotelcart/routes"
	"hotelcart/services"
	"hotelcart/services/catalog"
	"hotelcart/services/logger"
	"hotelcart/services/notification"
)

const serviceName = "hotel-cart"

func main() {
	config.LoadEnv()

	settings, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewDefaultLogger(logger.ParseLevel(settings.Log.Level), settings.Log.Format, serviceName)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer appLogger.Sync()

	ctx := context.Background()

	rdb, err := config.ConnectRedis(ctx, settings)
	if err != nil {
		if settings.Session.Store == constants.SessionStoreRedis {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		appLogger.Error("Không kết nối được Redis, chạy không có cache: %v", err)
	} else {
		defer rdb.Close()
		appLogger.Info("Kết nối Redis thành công: %s", settings.Redis.Addr)
	}

	var fetcher catalog.Fetcher
	switch settings.Catalog.Source {
	case constants.CatalogSourceHTTP:
		fetcher = catalog.NewHTTPFetcher(settings.Catalog.URL, settings.Catalog.Timeout, appLogger)
	default:
		db, err := config.ConnectDB(settings)
		if err != nil {
			log.Fatalf("Failed to connect to db: %v", err)
		}
		appLogger.Info("Successfully connected to db")
		fetcher = catalog.NewDBFetcher(db, appLogger)
	}
	if rdb != nil && settings.Catalog.CacheTTL > 0 {
		fetcher = services.NewCachedFetcher(fetcher, rdb, settings.Catalog.CacheTTL, appLogger)
	}

	var (
		store   services.SessionStore
		sweeper jobs.SessionSweeper
	)
	if settings.Session.Store == constants.SessionStoreMemory {
		memory := services.NewMemorySessionStore(settings.Session.TTL)
		store, sweeper = memory, memory
	} else {
		store = services.NewRedisSessionStore(rdb, settings.Session.TTL)
	}

	router, m, c := config.InitApp(settings)
	router.Use(middleware.RequestLogger(appLogger))

	cartService := services.NewCartService(services.CartServiceOptions{
		Store:        store,
		Fetcher:      fetcher,
		Logger:       appLogger,
		Notifier:     notification.NewMelodyService(m),
		Signer:       services.NewHandoffSigner(settings.Handoff.Secret, settings.Handoff.TTL),
		FetchTimeout: settings.Catalog.Timeout,
		FilterRedis:  rdb,
	})

	if err := jobs.InitCronJobs(c, sweeper, appLogger); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	defer c.Stop()

	routes.SetupRoutes(router,
		controllers.NewCartController(controllers.CartControllerOptions{Cart: cartService, Logger: appLogger}),
		controllers.NewNotificationController(controllers.NotificationControllerOptions{Logger: appLogger}, m),
	)

	appLogger.Info("Server starting on port %s...", settings.Port)
	if err := router.Run(":" + settings.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
