package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/plutov/paypal/v4"

	"github.com/TrulyNimz/PayPal-Gateway-Api/internal/app"
	"github.com/TrulyNimz/PayPal-Gateway-Api/internal/config"
	transporthttp "github.com/TrulyNimz/PayPal-Gateway-Api/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := log.Default()
	config.LoadEnvFile(logger)

	cfg, err := config.Load(logger)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	client, err := paypal.NewClient(cfg.ClientID, cfg.ClientSecret, cfg.APIBase())
	if err != nil {
		log.Fatalf("paypal client: %v", err)
	}

	orderSvc := app.NewOrderService(client, cfg)

	mux := http.NewServeMux()
	mux.Handle("/", transporthttp.StaticHandler())
	mux.Handle("/api/", transporthttp.NotFoundHandler())
	mux.Handle("/api/health", transporthttp.HandleHealth(cfg.Mode))
	mux.Handle("/api/orders", transporthttp.HandleCreateOrder(orderSvc))
	mux.Handle("/api/orders/", transporthttp.HandleOrderByID(orderSvc))

	handler := transporthttp.RequestLogger(transporthttp.CORS(cfg.CORSOrigins, mux), logger)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	log.Printf("gateway listening on :%s", cfg.Port)
	log.Printf("paypal mode: %s", cfg.Mode)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server error: %v", err)
		}
	case <-stopCtx.Done():
		log.Printf("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("server shutdown error: %v", err)
	}
	log.Printf("server stopped")
}
