package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/udayanalone/BarberConnect/internal/config"
	dbpkg "github.com/udayanalone/BarberConnect/internal/db"
	"github.com/udayanalone/BarberConnect/internal/logging"
	"github.com/udayanalone/BarberConnect/internal/routes"
)

func main() {

	// Optional in production; containers inject real env vars.
	_ = godotenv.Load()

	cfg := config.Load()

	logger, err := logging.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	db := dbpkg.NewDB(cfg)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, logger)

	logger.Info("server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
