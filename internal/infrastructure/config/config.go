package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

var ErrMissingJWTSecret = errors.New("config: JWT_SECRET is required")

type Twilio struct {
	AccountSID string
	AuthToken  string
	From       string
}

func (t Twilio) Enabled() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.From != ""
}

// Config is the process configuration, read once at startup from the environment.
type Config struct {
	Port int

	JWTSecret string

	KafkaBrokers            string
	KafkaNotificationsTopic string

	NotifyTimeout   time.Duration
	StoreTimeout    time.Duration
	CatalogCacheTTL time.Duration

	RateLimitRPS        float64
	RateLimitBurst      int
	OtpVerifyRatePerMin int
	CORSOriginPattern   string
	Twilio              Twilio
}

// Load reads the environment. Malformed numbers fall back to their defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:                    getenvInt("PORT", 8080),
		JWTSecret:               strings.TrimSpace(os.Getenv("JWT_SECRET")),
		KafkaBrokers:            os.Getenv("KAFKA_BROKERS"),
		KafkaNotificationsTopic: getenvDefault("KAFKA_NOTIFICATIONS_TOPIC", "fixxbuddy.notifications"),
		NotifyTimeout:           time.Duration(getenvInt("NOTIFY_TIMEOUT_MS", 2000)) * time.Millisecond,
		StoreTimeout:            time.Duration(getenvInt("STORE_TIMEOUT_MS", 5000)) * time.Millisecond,
		CatalogCacheTTL:         time.Duration(getenvInt("CATALOG_CACHE_TTL_SECONDS", 300)) * time.Second,
		RateLimitRPS:            getenvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:          getenvInt("RATE_LIMIT_BURST", 20),
		OtpVerifyRatePerMin:     getenvInt("OTP_VERIFY_RATE_PER_MIN", 10),
		CORSOriginPattern:       getenvDefault("CORS_ALLOWED_ORIGIN_PATTERN", `^https?://localhost(:\d+)?$`),
		Twilio: Twilio{
			AccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
			From:       os.Getenv("TWILIO_PHONE_NUMBER"),
		},
	}
	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingJWTSecret
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func getenvFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(os.Getenv(key)), 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}
