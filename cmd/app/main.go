package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"keygen/cmd"
	"keygen/internal/adapters/out/postgres/secretrepo"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	configs := getConfigs()
	logger := newLogger(configs.Debug)

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	redisConn, err := asynq.ParseRedisURI(configs.RedisURL)
	if err != nil {
		log.Fatalf("Invalid REDIS_URL: %v", err)
	}
	asynqClient := asynq.NewClient(redisConn)
	defer asynqClient.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, asynqClient, configs)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	debug, _ := strconv.ParseBool(envOrDefault("DEBUG", "false"))

	return cmd.Config{
		HTTPPort:    envOrDefault("HTTP_PORT", "8000"),
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

func mustMigrateDB(gormDB *gorm.DB) {
	if err := gormDB.AutoMigrate(&secretrepo.SecretDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, asynqClient *asynq.Client, configs cmd.Config) {
	e := echo.New()
	e.Debug = configs.Debug

	server := app.CreateHTTPServer(asynqClient)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
