package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver string
	DBSource string
	Port     string

	JWTSecret string
	JWTTTL    time.Duration

	// order pricing
	DeliveryFee float64 // rupees, stored as paise at placement
	TaxRate     float64

	// mock payment gateway credentials
	RazorpayKeyID     string
	RazorpayKeySecret string

	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBDriver:          getEnv("DB_DRIVER", "sqlite"),
		DBSource:          getEnv("DB_SOURCE", "fooddelivery.db"),
		Port:              getEnv("PORT", "8080"),
		JWTSecret:         getEnv("JWT_SECRET", "changeme"),
		JWTTTL:            24 * time.Hour,
		DeliveryFee:       getEnvFloat("ORDER_DELIVERY_FEE", 50.0),
		TaxRate:           getEnvFloat("ORDER_TAX_RATE", 0.05),
		RazorpayKeyID:     getEnv("RAZORPAY_KEY_ID", "rzp_test_mock_key"),
		RazorpayKeySecret: getEnv("RAZORPAY_KEY_SECRET", "rzp_test_mock_secret"),
		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@fooddelivery.local"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid %s=%q, using default %v", key, v, fallback)
	}
	return fallback
}
