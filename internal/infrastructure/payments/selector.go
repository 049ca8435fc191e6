package payments

import (
	"fmt"
	"net/http"

	"momo_gateway/internal/adapter/persistence/repository"
	"momo_gateway/internal/infrastructure/config"
	"momo_gateway/internal/infrastructure/payments/momo"
	"momo_gateway/internal/infrastructure/payments/simulated"
	"momo_gateway/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// NewGateway builds the gateway selected by cfg.Mode. It is called once at startup and
// the result is passed to every consumer.
func NewGateway(cfg config.Config, log *zap.SugaredLogger) (interfaces.IPaymentGateway, error) {
	switch cfg.Mode {
	case config.ModeLive:
		httpClient := &http.Client{}
		tokens := momo.NewTokenProvider(cfg.MoMo, httpClient, log)
		log.Infow("[payment][gateway] live mode enabled", "environment", cfg.MoMo.Environment, "base_url", cfg.MoMo.BaseURL, "target_environment", cfg.MoMo.TargetEnvironment)
		return momo.NewGateway(cfg.MoMo, httpClient, tokens, log), nil
	case config.ModeSimulated:
		store := repository.NewTransactionMemoryRepository()
		sim := simulated.NewOutcomeSimulator(simulated.DefaultPayers(), cfg.Simulated.Ceiling)
		log.Infow("[payment][gateway] simulated mode enabled", "latency", cfg.Simulated.Latency, "ceiling", cfg.Simulated.Ceiling.String())
		return simulated.NewGateway(store, sim, log,
			simulated.WithLatency(cfg.Simulated.Latency),
			simulated.WithCurrency(cfg.Simulated.Currency),
		), nil
	default:
		return nil, fmt.Errorf("unknown payment gateway mode %q", cfg.Mode)
	}
}
