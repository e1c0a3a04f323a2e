package configs

import "time"

// Platform configures the advertising platform (Meta Marketing API) client.
type Platform struct {
	BaseURL    string `env:"BASE_URL" envDefault:"https://graph.facebook.com"`
	APIVersion string `env:"API_VERSION" envDefault:"v21.0"`
	// AdAccountID is the numeric account ID without the act_ prefix.
	AdAccountID string `env:"AD_ACCOUNT_ID"`
	AccessToken string `env:"ACCESS_TOKEN"`
	// PageID is injected into creatives that do not name a page.
	PageID  string        `env:"PAGE_ID"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
