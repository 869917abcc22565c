package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost            string
	KafkaOrderEventTopic string

	RedisHost     string
	RedisPassword string
	RedisDB       string

	TelegramToken  string
	TelegramChatID string

	JWTSecret string

	CourierFeePerLiter    string
	AffiliateFeePerLiter  string
	ReportCacheTTL        string
	BillingExportSchedule string
	SheetWebhookURL       string
}
