package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"github.com/srgjo27/cabin_portal/internal/adapter/apiclient"
	"github.com/srgjo27/cabin_portal/internal/adapter/handler"
	"github.com/srgjo27/cabin_portal/internal/adapter/repository/postgres"
	"github.com/srgjo27/cabin_portal/internal/adapter/repository/redisstore"
	"github.com/srgjo27/cabin_portal/internal/core/services"
	"github.com/srgjo27/cabin_portal/internal/platform/config"
	"github.com/srgjo27/cabin_portal/internal/platform/database"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresDB(ctx, database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
	})
	if err != nil {
		log.Fatalf("Failed to connect to db after retries: %v", err)
	}

	defer db.Close()

	redisClient, err := database.NewRedisClient(ctx, cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	defer redisClient.Close()

	api := apiclient.New(cfg.API.BaseURL, cfg.API.Timeout)

	tokens := redisstore.NewTokenStore(redisClient, cfg.Session.TTL)
	guard := redisstore.NewInflightGuard(redisClient, cfg.Cache.InflightTTL)
	cache := redisstore.NewCatalogCache(redisClient, cfg.Cache.CatalogTTL)
	prefs := postgres.NewSearchPrefsRepository(db)

	auth := services.NewAuthService(api, tokens)
	unsubscribe := auth.Subscribe(func(ev services.AuthEvent) {
		if ev.User != nil {
			log.Printf("Session %s %s (user %d)", ev.SessionID, ev.Kind, ev.User.ID)
			return
		}

		log.Printf("Session %s %s", ev.SessionID, ev.Kind)
	})
	defer unsubscribe()

	catalog := services.NewCatalogService(api, api, cache, prefs)
	payments := services.NewPaymentService(auth, api, api, guard, cfg.Uploads.MaxReceiptBytes)

	handlers := handler.Handlers{
		Auth:    handler.NewAuthHandler(auth),
		Catalog: handler.NewCatalogHandler(catalog),
		Booking: handler.NewBookingHandler(services.NewBookingService(auth, catalog, api, guard)),
		Account: handler.NewAccountHandler(
			services.NewAccountService(auth, api, guard),
			services.NewGuestService(auth, catalog, api, api, guard),
			payments,
			cfg.Uploads.MaxReceiptBytes,
		),
		Admin: handler.NewAdminHandler(
			services.NewAdminService(auth, catalog, api, api, api, api, guard),
			payments,
			cfg.Uploads.MaxReceiptBytes,
		),
	}

	router := handler.NewRouter(handler.RouterConfig{
		Cookie: handler.CookieConfig{
			Name:   cfg.Session.CookieName,
			TTL:    cfg.Session.TTL,
			Secure: cfg.Session.Secure,
		},
		CSRFKey: []byte(cfg.Session.CSRFKey),
	}, auth, handlers)

	var workers sync.WaitGroup
	workers.Add(2)

	go func() {
		defer workers.Done()
		catalog.RunCacheRefresher(ctx, cfg.Cache.RefreshInterval)
	}()

	go func() {
		defer workers.Done()
		catalog.RunPrefsCleanup(ctx, cfg.Prefs.CleanupInterval, cfg.Prefs.MaxAge)
	}()

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Portal starting on %s (API %s)", cfg.Server.Addr, cfg.API.BaseURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		log.Printf("Server startup failed: %v", err)
		stop()
	}

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	workers.Wait()
	log.Println("Server exiting")
}
