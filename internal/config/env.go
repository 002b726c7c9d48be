package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"frontdesk/internal/utils"

	"github.com/joho/godotenv"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type BookingAPIConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// PricingDefaults apply when neither the request nor stored settings provide a rate.
type PricingDefaults struct {
	CGSTPercent         float64
	SGSTPercent         float64
	ExtraBedDailyCharge float64
	Strict              bool
}

type Env struct {
	AppAddr     string
	GinMode     string
	DBDSN       string
	Redis       RedisConfig
	BookingAPI  BookingAPIConfig
	JWTSecret   string
	CORSOrigins []string
	Pricing     PricingDefaults
}

// LoadEnv reads process environment after loading an optional .env file.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	appAddr := getString("APP_ADDR", ":8080")

	return Env{
		AppAddr: appAddr,
		GinMode: getString("GIN_MODE", ""),
		DBDSN:   getString("DB_DSN", ""),
		Redis: RedisConfig{
			Addr:     getString("REDIS_ADDR", ""),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getInt("REDIS_DB", 0),
			TTL:      getDuration("PREVIEW_CACHE_TTL", 10*time.Minute),
		},
		BookingAPI: BookingAPIConfig{
			BaseURL: strings.TrimRight(getString("BOOKING_API_URL", "http://localhost:5000"), "/"),
			Token:   getString("BOOKING_API_TOKEN", ""),
			Timeout: getDuration("BOOKING_API_TIMEOUT", 10*time.Second),
		},
		JWTSecret:   getString("JWT_SECRET", ""),
		CORSOrigins: utils.SplitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		Pricing: PricingDefaults{
			CGSTPercent:         getFloat("DEFAULT_CGST_PERCENT", 6),
			SGSTPercent:         getFloat("DEFAULT_SGST_PERCENT", 6),
			ExtraBedDailyCharge: getFloat("DEFAULT_EXTRA_BED_CHARGE", 0),
			Strict:              getBool("PRICING_STRICT", false),
		},
	}
}

func getString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("warning: %s=%q is not an integer, using %d", key, v, def)
		return def
	}
	return n
}

func getFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("warning: %s=%q is not a number, using %v", key, v, def)
		return def
	}
	return f
}

func getBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("warning: %s=%q is not a duration, using %s", key, v, def)
		return def
	}
	return d
}
