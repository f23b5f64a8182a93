package cmd

// Config carries all environment-driven settings for the service.
// RedisAddr is optional: when empty, the load identifier sequence counter
// falls back to the relational database.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr string

	MessageGatewayURL    string
	MessageGatewayAPIKey string

	NotificationRedeliverySchedule string
}
