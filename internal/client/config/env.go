package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first, if present; real environment variables
// win over it (godotenv does not override existing vars).
//
// Recognized variables:
//
//	EVENTHUB_AUTH_URL, EVENTHUB_EVENTS_URL, EVENTHUB_PAYMENT_URL
//	EVENTHUB_DB
//	EVENTHUB_CONFIRM_REGISTRATION (strconv.ParseBool syntax)
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("EVENTHUB_AUTH_URL"); v != "" {
		cfg.AuthEndpoint = v
	}
	if v := os.Getenv("EVENTHUB_EVENTS_URL"); v != "" {
		cfg.EventsEndpoint = v
	}
	if v := os.Getenv("EVENTHUB_PAYMENT_URL"); v != "" {
		cfg.PaymentEndpoint = v
	}
	if v := os.Getenv("EVENTHUB_DB"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("EVENTHUB_CONFIRM_REGISTRATION"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.ConfirmRegistrationPayment = b
		}
	}
}
