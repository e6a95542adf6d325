package models

// PosConfig represents a row of the pos_config table: the persisted
// multi-currency settings for one point-of-sale configuration.
type PosConfig struct {
	ConfigID             int64  `json:"configID"` // Primary Key
	Name                 string `json:"name"`
	MultiCurrencyEnabled bool   `json:"multiCurrencyEnabled"`
	AllowRateEdit        bool   `json:"allowRateEdit"`
	CanEditRate          bool   `json:"canEditRate"` // resolved per-user permission
	BaseCurrencyID       int64  `json:"baseCurrencyID"`
}
