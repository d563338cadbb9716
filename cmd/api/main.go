package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"foodapp/internal/config"
	"foodapp/internal/db"
	"foodapp/internal/httpserver"
	"foodapp/internal/images"
	"foodapp/internal/payment"
	foodrepo "foodapp/internal/repository/food"
	orderrepo "foodapp/internal/repository/order"
	userrepo "foodapp/internal/repository/user"
	authsvc "foodapp/internal/service/auth"
	cartsvc "foodapp/internal/service/cart"
	foodsvc "foodapp/internal/service/food"
	ordersvc "foodapp/internal/service/order"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	imageStore, err := images.NewStore(cfg.UploadDir)
	if err != nil {
		logger.Fatalf("init image store: %v", err)
	}

	userRepo := userrepo.NewPostgres(dbpool, logger)
	foodRepo := foodrepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)

	gateway := payment.NewStripe(cfg.StripeAPIBase, cfg.StripeSecretKey)

	authService := authsvc.New(userRepo, cfg.JWTSecret)
	cartService := cartsvc.New(userRepo, foodRepo)
	foodService := foodsvc.New(foodRepo, imageStore)
	orderService := ordersvc.New(orderRepo, userRepo, foodRepo, gateway, cfg.FrontendURL, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		AuthSvc:          authService,
		CartSvc:          cartService,
		OrderSvc:         orderService,
		FoodSvc:          foodService,
		Images:           imageStore,
		DeliveryFeeCents: cfg.DeliveryFeeCents,
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
