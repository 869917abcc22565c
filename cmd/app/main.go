package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"jelantah/cmd"
	httpin "jelantah/internal/adapters/in/http"
	"jelantah/internal/adapters/out/kafka"
	"jelantah/internal/adapters/out/postgres"
	"jelantah/internal/adapters/out/rediscache"
	"jelantah/internal/adapters/out/sheets"
	"jelantah/internal/adapters/out/telegram"
	"jelantah/internal/core/domain/services"
	"jelantah/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode,
	)
	gormDB, err := postgres.OpenDB(dsn)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	calculator, err := services.NewSettlementCalculator(services.FeePolicy{
		CourierFeePerLiter:   mustParseInt64(configs.CourierFeePerLiter, "COURIER_FEE_PER_LITER"),
		AffiliateFeePerLiter: mustParseInt64(configs.AffiliateFeePerLiter, "AFFILIATE_FEE_PER_LITER"),
	})
	if err != nil {
		log.Fatalf("Error building settlement calculator: %v", err)
	}

	publisher, err := kafka.NewPublisher(strings.Split(configs.KafkaHost, ","), configs.KafkaOrderEventTopic)
	if err != nil {
		log.Fatalf("Error connecting to kafka: %v", err)
	}
	defer func() { _ = publisher.Close() }()

	cache, err := rediscache.NewCache(
		context.Background(),
		configs.RedisHost,
		configs.RedisPassword,
		int(mustParseInt64(configs.RedisDB, "REDIS_DB")),
	)
	if err != nil {
		log.Fatalf("Error connecting to redis: %v", err)
	}
	defer func() { _ = cache.Close() }()

	notifier, err := telegram.NewNotifier(
		configs.TelegramToken,
		mustParseInt64(configs.TelegramChatID, "TELEGRAM_CHAT_ID"),
	)
	if err != nil {
		log.Fatalf("Error connecting telegram bot: %v", err)
	}

	exporter, err := sheets.NewExporter(configs.SheetWebhookURL)
	if err != nil {
		log.Fatalf("Error building sheet exporter: %v", err)
	}

	cacheTTL, err := time.ParseDuration(configs.ReportCacheTTL)
	if err != nil {
		log.Fatalf("Error parsing REPORT_CACHE_TTL: %v", err)
	}

	app := cmd.NewCompositionRoot(gormDB, calculator, publisher, notifier, cache, exporter, cacheTTL)

	jobManager := jobs.NewJobManager(
		app.CreateGetBillingReportQueryHandler(),
		app.Exporter(),
		configs.BillingExportSchedule,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:   os.Getenv("HTTP_PORT"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  os.Getenv("DB_SSLMODE"),

		KafkaHost:            os.Getenv("KAFKA_HOST"),
		KafkaOrderEventTopic: os.Getenv("KAFKA_ORDER_EVENT_TOPIC"),

		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       os.Getenv("REDIS_DB"),

		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		TelegramChatID: os.Getenv("TELEGRAM_CHAT_ID"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		CourierFeePerLiter:    os.Getenv("COURIER_FEE_PER_LITER"),
		AffiliateFeePerLiter:  os.Getenv("AFFILIATE_FEE_PER_LITER"),
		ReportCacheTTL:        os.Getenv("REPORT_CACHE_TTL"),
		BillingExportSchedule: os.Getenv("BILLING_EXPORT_SCHEDULE"),
		SheetWebhookURL:       os.Getenv("SHEET_WEBHOOK_URL"),
	}
}

func mustParseInt64(value, name string) int64 {
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", name, err)
	}
	return parsed
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateQuickPickupCommandHandler(),
		app.CreateAssignCourierCommandHandler(),
		app.CreateStartPickupCommandHandler(),
		app.CreateCompletePickupCommandHandler(),
		app.CreateVerifyOrderCommandHandler(),
		app.CreateMarkOrderPaidCommandHandler(),
		app.CreateUpdateCustomerCommandHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetBillingReportQueryHandler(),
	)
	server.RegisterRoutes(e, []byte(configs.JWTSecret))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
