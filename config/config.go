package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSOrigins       string `mapstructure:"CORS_ORIGINS"`

	// Storage: "memory", "mongo" or "postgres".
	StoreDriver   string `mapstructure:"STORE_DRIVER"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`
	PostgresDSN   string `mapstructure:"POSTGRES_DSN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Conversation sessions: "memory" or "redis".
	SessionStore string        `mapstructure:"SESSION_STORE"`
	SessionTTL   time.Duration `mapstructure:"SESSION_TTL"`

	// Intent extractor.
	LLMProvider   string        `mapstructure:"LLM_PROVIDER"`
	LLMTimeout    time.Duration `mapstructure:"LLM_TIMEOUT"`
	GeminiAPIKey  string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModel   string        `mapstructure:"GEMINI_MODEL"`
	OllamaAPIBase string        `mapstructure:"OLLAMA_API_BASE"`
	OllamaAPIKey  string        `mapstructure:"OLLAMA_API_KEY"`
	OllamaModel   string        `mapstructure:"OLLAMA_MODEL"`
	PromptFile    string        `mapstructure:"AGENT_PROMPT_FILE"`

	// Business calendar.
	BusinessTimezone  string `mapstructure:"BUSINESS_TIMEZONE"`
	DefaultBusinessID string `mapstructure:"DEFAULT_BUSINESS_ID"`
	Holidays          string `mapstructure:"HOLIDAYS"`

	// Notifications.
	SMTPServer          string `mapstructure:"SMTP_SERVER"`
	SMTPPort            int    `mapstructure:"SMTP_PORT"`
	SMTPUser            string `mapstructure:"SMTP_USER"`
	SMTPPassword        string `mapstructure:"SMTP_PASSWORD"`
	AdminEmails         string `mapstructure:"ADMIN_EMAILS"`
	NotifyQueue         string `mapstructure:"NOTIFY_QUEUE"`
	FirebaseCredentials string `mapstructure:"FIREBASE_CREDENTIALS"`
	FirebaseTopic       string `mapstructure:"FIREBASE_TOPIC"`
}

var AppConfig Config

func LoadConfig() {
	// .env.local wins over .env; neither is required.
	for _, f := range []string{".env.local", ".env"} {
		if err := godotenv.Load(f); err == nil {
			log.Printf("Loaded environment from %s", f)
		}
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173,http://localhost:5174,http://localhost:8000,http://127.0.0.1:8000")
	viper.SetDefault("STORE_DRIVER", "memory")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "fotoagenda")
	viper.SetDefault("POSTGRES_DSN", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("SESSION_STORE", "memory")
	viper.SetDefault("SESSION_TTL", "30m")
	viper.SetDefault("LLM_PROVIDER", "ollama")
	viper.SetDefault("LLM_TIMEOUT", "30s")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-pro")
	viper.SetDefault("OLLAMA_API_BASE", "https://ollama.com/api")
	viper.SetDefault("OLLAMA_API_KEY", "")
	viper.SetDefault("OLLAMA_MODEL", "gpt-oss:120b")
	viper.SetDefault("AGENT_PROMPT_FILE", "")
	viper.SetDefault("BUSINESS_TIMEZONE", "Europe/Madrid")
	viper.SetDefault("DEFAULT_BUSINESS_ID", "demo")
	viper.SetDefault("HOLIDAYS", "2025-01-01,2025-01-06,2025-12-25")
	viper.SetDefault("SMTP_SERVER", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("ADMIN_EMAILS", "")
	viper.SetDefault("NOTIFY_QUEUE", "inline")
	viper.SetDefault("FIREBASE_CREDENTIALS", "")
	viper.SetDefault("FIREBASE_TOPIC", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// Location returns the business time zone, falling back to the local zone.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.BusinessTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// SplitList splits a comma-separated setting, dropping blanks.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NotificationRecipients returns ADMIN_EMAILS, or the SMTP user when none are set.
func (c Config) NotificationRecipients() []string {
	if list := SplitList(c.AdminEmails); len(list) > 0 {
		return list
	}
	return SplitList(c.SMTPUser)
}
