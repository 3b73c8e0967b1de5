// Package main provides the entry point for the background key generation worker.
package main

import (
	"context"
	"log/slog"
	"os"
	"strconv"

	"keygen/cmd"
	"keygen/internal/adapters/out/queue"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const workerConcurrency = 10

func main() {
	configs := getConfigs()
	logger := newLogger(configs.Debug)

	gormDB := mustConnectDB(configs)

	redisConn, err := asynq.ParseRedisURI(configs.RedisURL)
	if err != nil {
		log.Fatalf("Invalid REDIS_URL: %v", err)
	}
	mustPingRedis(redisConn, logger)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	srv := asynq.NewServer(redisConn, asynq.Config{
		Concurrency: workerConcurrency,
	})

	mux := asynq.NewServeMux()
	mux.Handle(queue.TypeGenerateKey, app.CreateGenerateKeyTaskHandler())

	logger.Info("Starting key generation worker", "concurrency", workerConcurrency)
	if err := srv.Run(mux); err != nil {
		log.Fatalf("Worker stopped with error: %v", err)
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	debug, _ := strconv.ParseBool(envOrDefault("DEBUG", "false"))

	return cmd.Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    envOrDefault("REDIS_URL", "redis://localhost:6379/0"),
		SecretKey:   os.Getenv("SECRET_KEY"),
		Debug:       debug,
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	gormLogLevel := gormlogger.Warn
	if configs.Debug {
		gormLogLevel = gormlogger.Info
	}

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DatabaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

// mustPingRedis verifies the broker is reachable before the worker starts
// consuming, so a bad REDIS_URL fails fast instead of during the first task.
func mustPingRedis(redisConn asynq.RedisConnOpt, logger *slog.Logger) {
	client, ok := redisConn.MakeRedisClient().(redis.UniversalClient)
	if !ok {
		log.Fatalf("Unexpected Redis client type from connection options")
	}
	defer client.Close()

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to ping Redis: %v", err)
	}
	logger.Info("Connected to Redis broker")
}
