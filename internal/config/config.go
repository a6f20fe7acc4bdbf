package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetFloatEnv returns a float environment variable or a default value.
func GetFloatEnv(key string, defaultVal float64) float64 {
	if val, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}

// Default plan prices in VND. Overridable per tier via PLAN_PRICE_<TIER>.
var defaultPlanPrices = map[string]float64{
	"PRO":  315000,
	"TEAM": 945000,
}

// PlanPrice returns the required transfer amount for a plan tier,
// or false when the tier is unknown.
func PlanPrice(tier string) (float64, bool) {
	price, ok := defaultPlanPrices[strings.ToUpper(tier)]
	if !ok {
		return 0, false
	}
	return GetFloatEnv("PLAN_PRICE_"+strings.ToUpper(tier), price), true
}
