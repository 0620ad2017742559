package main

import (
	"database/sql"
	"net/http"

	"github.com/AswiniParameswaran/GreenCart-System/internal/address"
	"github.com/AswiniParameswaran/GreenCart-System/internal/category"
	"github.com/AswiniParameswaran/GreenCart-System/internal/config"
	"github.com/AswiniParameswaran/GreenCart-System/internal/db"
	"github.com/AswiniParameswaran/GreenCart-System/internal/handler"
	"github.com/AswiniParameswaran/GreenCart-System/internal/logger"
	"github.com/AswiniParameswaran/GreenCart-System/internal/order"
	"github.com/AswiniParameswaran/GreenCart-System/internal/product"
	"github.com/AswiniParameswaran/GreenCart-System/internal/user"

	"go.uber.org/zap"
)

// Swappable for tests.
var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

func newServer(database *sql.DB) http.Handler {
	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	categoryRepo := category.NewRepository(database)
	categorySvc := category.NewService(categoryRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo, categoryRepo)

	addressRepo := address.NewRepository(database)
	addressSvc := address.NewService(addressRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, productSvc)

	return handler.NewRouter(handler.Services{
		User:     userSvc,
		Category: categorySvc,
		Product:  productSvc,
		Address:  addressSvc,
		Order:    orderSvc,
	})
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	router := newServer(database)

	logger.L().Info("server listening", zap.String("port", cfg.AppPort))
	return startServerFunc(":"+cfg.AppPort, router)
}

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
