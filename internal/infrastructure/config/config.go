package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	ModeLive      = "live"
	ModeSimulated = "simulated"

	EnvironmentSandbox    = "sandbox"
	EnvironmentProduction = "production"

	defaultPort              = 8080
	defaultSimulatedLatency  = 300 * time.Millisecond
	defaultSimulatedCeiling  = "1000000"
	sandboxBaseURL           = "https://sandbox.momodeveloper.mtn.com"
	productionBaseURL        = "https://proxy.momoapi.mtn.com"
	defaultSimulatedCurrency = "EUR"
)

// MoMoConfig holds the live provider settings. Credentials may be empty at startup;
// the token provider reports them as an auth error on first use.
type MoMoConfig struct {
	Environment       string
	BaseURL           string
	SubscriptionKey   string
	APIUser           string
	APIKey            string
	TargetEnvironment string
	CallbackURL       string
}

type SimulatedConfig struct {
	Latency  time.Duration
	Ceiling  decimal.Decimal
	Currency string
}

type Config struct {
	Mode      string
	Port      int
	LogLevel  string
	MoMo      MoMoConfig
	Simulated SimulatedConfig
}

// Load reads the configuration from environment variables.
//
// Supported env vars:
//   - PAYMENT_GATEWAY_MODE: live | simulated (default: simulated)
//   - PORT (default: 8080), LOG_LEVEL (default: info)
//   - MOMO_ENVIRONMENT: sandbox | production (default: sandbox)
//   - MOMO_BASE_URL (optional; overrides the environment's base url)
//   - MOMO_SUBSCRIPTION_KEY, MOMO_API_USER, MOMO_API_KEY
//   - MOMO_TARGET_ENVIRONMENT (default: the value of MOMO_ENVIRONMENT)
//   - MOMO_CALLBACK_URL (optional)
//   - SIMULATED_LATENCY_MS (default: 300), SIMULATED_CEILING (default: 1000000),
//     SIMULATED_CURRENCY (default: EUR)
func Load() (Config, error) {
	mode := strings.ToLower(getenvDefault("PAYMENT_GATEWAY_MODE", ModeSimulated))
	if mode != ModeLive && mode != ModeSimulated {
		return Config{}, fmt.Errorf("invalid PAYMENT_GATEWAY_MODE %q", mode)
	}

	port, err := strconv.Atoi(getenvDefault("PORT", strconv.Itoa(defaultPort)))
	if err != nil || port <= 0 {
		return Config{}, fmt.Errorf("invalid PORT %q", os.Getenv("PORT"))
	}

	environment := strings.ToLower(getenvDefault("MOMO_ENVIRONMENT", EnvironmentSandbox))
	baseURL := strings.TrimSpace(os.Getenv("MOMO_BASE_URL"))
	if baseURL == "" {
		switch environment {
		case EnvironmentSandbox:
			baseURL = sandboxBaseURL
		case EnvironmentProduction:
			baseURL = productionBaseURL
		default:
			return Config{}, fmt.Errorf("invalid MOMO_ENVIRONMENT %q", environment)
		}
	}

	latencyMS, err := strconv.Atoi(getenvDefault("SIMULATED_LATENCY_MS", strconv.Itoa(int(defaultSimulatedLatency/time.Millisecond))))
	if err != nil || latencyMS < 0 {
		return Config{}, fmt.Errorf("invalid SIMULATED_LATENCY_MS %q", os.Getenv("SIMULATED_LATENCY_MS"))
	}
	ceiling, err := decimal.NewFromString(getenvDefault("SIMULATED_CEILING", defaultSimulatedCeiling))
	if err != nil || !ceiling.IsPositive() {
		return Config{}, fmt.Errorf("invalid SIMULATED_CEILING %q", os.Getenv("SIMULATED_CEILING"))
	}

	return Config{
		Mode:     mode,
		Port:     port,
		LogLevel: getenvDefault("LOG_LEVEL", "info"),
		MoMo: MoMoConfig{
			Environment:       environment,
			BaseURL:           strings.TrimRight(baseURL, "/"),
			SubscriptionKey:   strings.TrimSpace(os.Getenv("MOMO_SUBSCRIPTION_KEY")),
			APIUser:           strings.TrimSpace(os.Getenv("MOMO_API_USER")),
			APIKey:            strings.TrimSpace(os.Getenv("MOMO_API_KEY")),
			TargetEnvironment: getenvDefault("MOMO_TARGET_ENVIRONMENT", environment),
			CallbackURL:       strings.TrimSpace(os.Getenv("MOMO_CALLBACK_URL")),
		},
		Simulated: SimulatedConfig{
			Latency:  time.Duration(latencyMS) * time.Millisecond,
			Ceiling:  ceiling,
			Currency: strings.ToUpper(getenvDefault("SIMULATED_CURRENCY", defaultSimulatedCurrency)),
		},
	}, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
