package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/zipcodetw/zipcodetw/app/config"
	"github.com/zipcodetw/zipcodetw/app/controllers"
	"github.com/zipcodetw/zipcodetw/internal/cache"
	"github.com/zipcodetw/zipcodetw/internal/store/mongostore"
	"github.com/zipcodetw/zipcodetw/internal/zipdir"
	"github.com/zipcodetw/zipcodetw/routes"
)

func main() {
	loadConfig()

	logger := initLogger()
	defer logger.Sync()

	logger.Info("starting zipcodetw service")

	mongoClient := initMongoDB(logger)
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Error("error disconnecting from mongo", zap.Error(err))
		}
	}()

	dbName := getEnv("MONGO_DATABASE", config.C.Mongo.Database)
	st := mongostore.New(mongoClient, dbName, logger)

	builder := zipdir.NewBuilder(st, logger)
	lookup := zipdir.NewLookup(st, logger)

	lookupCache := initCache(logger)
	defer func() {
		if lookupCache != nil {
			if err := lookupCache.Close(); err != nil {
				logger.Warn("error closing cache", zap.Error(err))
			}
		}
	}()

	zipcodeController := controllers.NewZipcodeController(lookup, lookupCache, logger)
	directoryController := controllers.NewDirectoryController(builder, logger)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	routes.SetupAllRoutes(router, zipcodeController, directoryController)

	port := getEnv("APP_PORT", config.C.App.Port)
	srv := &http.Server{Addr: ":" + port, Handler: router}

	go func() {
		logger.Info("http server listening", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("server exited")
}

// loadConfig reads config/app.yaml (if present) into config.C and registers
// viper defaults and automatic env binding. The per-deployment overrides
// (APP_PORT, APP_ENV, MONGO_URL, MONGO_DATABASE, REDIS_URL, L1_CACHE_SIZE)
// are read with os.Getenv by getEnv/getEnvInt where each value is used,
// falling back to config.C; nothing here reads values back from viper.
func loadConfig() {
	if err := config.Load("config/app.yaml"); err != nil {
		log.Printf("warning: could not read config/app.yaml: %v", err)
	}

	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("mongo.url", "mongodb://localhost:27017/zipcodetw")
	viper.SetDefault("redis.url", "redis://localhost:6379")
	viper.SetDefault("cache.l1_size", 10000)
	viper.AutomaticEnv()
}

func initLogger() *zap.Logger {
	env := getEnv("APP_ENV", config.C.App.Env)

	var zcfg zap.Config
	if env == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	logger, err := zcfg.Build()
	if err != nil {
		log.Fatal("cannot initialize logger:", err)
	}
	return logger
}

func initMongoDB(logger *zap.Logger) *mongo.Client {
	mongoURL := getEnv("MONGO_URL", config.C.Mongo.URL)

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(mongoURL))
	if err != nil {
		logger.Fatal("failed to connect to mongo", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal("failed to ping mongo", zap.Error(err))
	}

	logger.Info("connected to mongo", zap.String("url", mongoURL))
	return client
}

// initCache builds the L1 (in-process LRU) + L2 (Redis) hybrid lookup
// cache. A Redis connection failure is not fatal — the service falls back
// to the L1-only cache rather than refusing to start.
func initCache(logger *zap.Logger) cache.Cache {
	l1Size := getEnvInt("L1_CACHE_SIZE", config.C.Cache.L1Size)
	l1, err := cache.NewMemCache(l1Size)
	if err != nil {
		logger.Fatal("failed to initialize l1 cache", zap.Error(err))
	}

	redisURL := getEnv("REDIS_URL", config.C.Redis.URL)
	ttl := config.CacheTTL()
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	l2, err := cache.NewRedisCache(redisURL, ttl)
	if err != nil {
		logger.Warn("redis cache unavailable, falling back to l1 only", zap.Error(err))
		return l1
	}

	return cache.NewHybrid(l1, l2, logger)
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}
