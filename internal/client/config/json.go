package config

import (
	"encoding/json"
	"os"

	"github.com/avryabov/eventhub-cli/internal/flagx"
	"github.com/avryabov/eventhub-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so intervals can be given either as strings like "60s" or
// as integer nanoseconds. Zero/absent fields leave the runtime Config value
// untouched.
type JsonConfig struct {
	AuthEndpoint               string         `json:"auth_endpoint"`
	EventsEndpoint             string         `json:"events_endpoint"`
	PaymentEndpoint            string         `json:"payment_endpoint"`
	DatabaseDSN                string         `json:"database_dsn"`
	RequestTimeout             timex.Duration `json:"request_timeout"`
	ResendCooldown             timex.Duration `json:"resend_cooldown"`
	SuccessCloseDelay          timex.Duration `json:"success_close_delay"`
	ConfirmRegistrationPayment *bool          `json:"confirm_registration_payment"`
}

// parseJson overlays Config with values loaded from the JSON file named via
// the -c/-config flags. When no file is named, nothing happens. Read or
// unmarshal errors panic; configuration is not something to limp past.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.AuthEndpoint != "" {
		cfg.AuthEndpoint = jc.AuthEndpoint
	}
	if jc.EventsEndpoint != "" {
		cfg.EventsEndpoint = jc.EventsEndpoint
	}
	if jc.PaymentEndpoint != "" {
		cfg.PaymentEndpoint = jc.PaymentEndpoint
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.ResendCooldown.Duration != 0 {
		cfg.ResendCooldown = jc.ResendCooldown.Duration
	}
	if jc.SuccessCloseDelay.Duration != 0 {
		cfg.SuccessCloseDelay = jc.SuccessCloseDelay.Duration
	}
	if jc.ConfirmRegistrationPayment != nil {
		cfg.ConfirmRegistrationPayment = *jc.ConfirmRegistrationPayment
	}
}
