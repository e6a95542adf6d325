package repositories

// RepositoryProvider bundles all repository implementations handed to the
// service container.
type RepositoryProvider struct {
	CurrencyRepo   CurrencyRepositoryFacade
	ConfigRepo     MultiCurrencyConfigRepository
	RateRepo       RateRepository
	StatisticsRepo StatisticsRepository
}
