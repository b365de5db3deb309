package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/AgendariaApp/salon-scheduler/internal/config"
	dbpkg "github.com/AgendariaApp/salon-scheduler/internal/db"
	"github.com/AgendariaApp/salon-scheduler/internal/logger"
	"github.com/AgendariaApp/salon-scheduler/internal/middleware"
	"github.com/AgendariaApp/salon-scheduler/internal/routes"
)

func main() {

	log := logger.Init()
	defer logger.Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
	})

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
