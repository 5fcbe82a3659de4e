package main

import (
	"fmt"

	"api_aggregator/api"
	"api_aggregator/internal/config"
	"api_aggregator/internal/sales"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("error loading configuration: %v", err))
	}

	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Errorf("error building logger: %v", err))
	}
	defer logger.Sync()

	// Connect pings the database, so a bad DATABASE_URL fails here rather
	// than on the first request.
	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("error connecting to database", zap.Error(err))
	}
	defer db.Close()

	storage := sales.NewPostgresStorage(db)
	reader := sales.NewFileReader(cfg.SalesFile)
	service := sales.NewService(storage, reader, logger)

	r := gin.Default()
	r.Use(api.RequestID())
	api.InitRoutes(r, service, logger)

	logger.Info("starting server",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("sales_file", cfg.SalesFile),
	)

	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal("error trying to start server", zap.Error(err))
	}
}
