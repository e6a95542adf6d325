package services

import (
	portsrepo "github.com/SscSPs/pos_multi_currency/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_multi_currency/internal/core/ports/services"
	"github.com/SscSPs/pos_multi_currency/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.MultiCurrency = NewMultiCurrencyService(
		cfg.POSConfigID,
		cfg.MaxRateDeviation,
		repos.ConfigRepo,
		repos.RateRepo,
		repos.CurrencyRepo,
	)
	container.Reporting = NewReportingService(
		cfg.POSConfigID,
		repos.StatisticsRepo,
		repos.CurrencyRepo,
		container.MultiCurrency,
	)

	return container
}
