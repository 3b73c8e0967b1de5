package cmd

type Config struct {
	HTTPPort    string
	DatabaseURL string
	RedisURL    string
	SecretKey   string
	Debug       bool
}
