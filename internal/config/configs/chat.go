package configs

import "time"

// Chat tunes how conversations are assembled for the model.
type Chat struct {
	// HistoryLimit caps the stored turns replayed to the model.
	HistoryLimit int `env:"HISTORY_LIMIT" envDefault:"40"`
	// ProductLimit caps the products placed in the store context. Zero
	// disables the store context.
	ProductLimit int `env:"PRODUCT_LIMIT" envDefault:"25"`
	// CampaignLimit caps the existing campaigns placed in the campaign
	// context. Zero disables it.
	CampaignLimit  int           `env:"CAMPAIGN_LIMIT" envDefault:"10"`
	ContextTimeout time.Duration `env:"CONTEXT_TIMEOUT" envDefault:"5s"`
	// ContextCacheTTL keeps the store context between chat turns.
	ContextCacheTTL time.Duration `env:"CONTEXT_CACHE_TTL" envDefault:"5m"`
}
