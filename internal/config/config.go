package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig is the full process configuration, read from the environment.
type AppConfig struct {
	Port string

	// Outbound HTTP timeout for upstream weather/geolocation calls.
	HTTPTimeout time.Duration

	// JWT signing parameters for the login endpoint.
	JWTKey             string
	JWTIssuer          string
	JWTAudience        string
	AccessTokenMinutes int

	// Live feed publisher.
	MQTTEnabled  bool
	MQTTBroker   string
	MQTTTopic    string
	MQTTClientID string
	FeedInterval time.Duration
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.JWTKey = os.Getenv("JWT_KEY")
	if cfg.JWTKey == "" {
		return nil, fmt.Errorf("JWT_KEY is required")
	}
	cfg.JWTIssuer = getenvDefault("JWT_ISSUER", "csir-demo")
	cfg.JWTAudience = getenvDefault("JWT_AUDIENCE", "csir-demo-client")
	cfg.AccessTokenMinutes = getenvInt("JWT_ACCESS_TOKEN_MINUTES", 30)

	cfg.MQTTEnabled = getenvBool("MQTT_ENABLED", true)
	cfg.MQTTBroker = getenvDefault("MQTT_BROKER", "tcp://broker.hivemq.com:1883")
	cfg.MQTTTopic = getenvDefault("MQTT_TOPIC", "csirreact/feed/live")
	cfg.MQTTClientID = getenvDefault("MQTT_CLIENT_ID", "csir-demo-feed")

	intervalStr := getenvDefault("FEED_INTERVAL", "1s")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid FEED_INTERVAL: %w", err)
	}
	cfg.FeedInterval = interval

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
