package domain

import "time"

// Setting represents a key-value runtime setting persisted between restarts
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// well-known setting keys
const (
	SettingLastVariant    = "ab_last_variant"     // variant assigned to the most recent post
	SettingLastCatalogRun = "catalog_last_sync"   // RFC3339 time of the last successful catalog sync
	SettingLastClickRun   = "clicks_last_run"     // RFC3339 bookmark of the click aggregation
	SettingLastPublished  = "publish_last_posted" // RFC3339 time of the last delivered post
)
