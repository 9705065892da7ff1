package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Sahill13/backendhost/internal/config"
	"github.com/Sahill13/backendhost/internal/payment"
	"github.com/Sahill13/backendhost/internal/repository/pg"
	"github.com/Sahill13/backendhost/internal/service"
	"github.com/Sahill13/backendhost/pgk/logger"

	httpController "github.com/Sahill13/backendhost/internal/controller/http"
)

func Run(cfg config.Config, lg *zap.SugaredLogger) error {
	storage, err := pg.New(cfg.DatabaseURI, lg)
	if err != nil {
		return err
	}

	processor := payment.NewClient(cfg.PaymentAddress, cfg.PaymentKeyID, cfg.PaymentSecret, cfg.PaymentTimeout)

	s := service.New(
		storage,
		processor,
		cfg.PassCost,
		cfg.SecretKey,
		cfg.PaymentSecret,
		cfg.UserTokenExp,
		cfg.AdminTokenExp,
		cfg.DeliveryTokenExp,
		cfg.RefreshTokenExp,
	)

	router := chi.NewRouter()
	router.Use(logger.LoggingMiddleware(lg))
	router.Use(middleware.Recoverer)

	handlers := httpController.New(s, lg)
	router = httpController.InitRoutes(router, handlers, cfg.SecretKey)

	srv := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: router,
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lg.Infof("starting server on %s", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatalf("server ListenAndServe error: %v", err)
		}
	}()

	<-signalCtx.Done()
	lg.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown (server) error: %v", err)
	}

	if err := storage.Shutdown(); err != nil {
		return fmt.Errorf("shutdown (repo) error: %v", err)
	}

	lg.Info("server shutdown success")
	return nil
}
