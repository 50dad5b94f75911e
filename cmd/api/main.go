package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"quwastudio/internal/config"
	"quwastudio/internal/database"
	"quwastudio/internal/modules/booking"
	"quwastudio/internal/notification"
	"quwastudio/internal/repository"
	"quwastudio/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("db close failed: %v", err)
		}
	}()

	if err := repository.Migrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	notifier, err := notification.FromConfig(cfg)
	if err != nil {
		log.Fatalf("notifier: %v", err)
	}

	bookingRepo := repository.NewBookingRepository(db)
	bookingService := booking.NewService(bookingRepo, notifier)

	handler, err := server.NewHandler(bookingService, server.Options{
		SubmitTimeout:  cfg.SubmitTimeout,
		AdminToken:     cfg.AdminToken,
		CORSOrigins:    cfg.CORSAllowedOrigins,
		CSRFAuthKey:    []byte(cfg.CSRFAuthKey),
		CookieSecure:   cfg.CookieSecure,
		RequestLogging: true,
	})
	if err != nil {
		log.Fatalf("router: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("server_start addr=%s env=%s notify_provider=%s", srv.Addr, cfg.AppEnv, cfg.NotifyProvider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("server_shutdown timeout=%s", cfg.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown failed: %v", err)
	}
}
