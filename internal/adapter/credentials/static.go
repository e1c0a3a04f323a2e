package credentials

import (
	"context"
	"errors"
)

var (
	ErrNoPlatformToken = errors.New("platform access token is not configured")
	ErrNoModelKey      = errors.New("model api key is not configured")
)

// Static serves secrets loaded once at startup. It implements
// port.Credentials.
type Static struct {
	platformToken string
	modelKey      string
}

// NewStatic returns credentials backed by fixed values.
func NewStatic(platformToken, modelKey string) *Static {
	return &Static{platformToken: platformToken, modelKey: modelKey}
}

func (s *Static) PlatformAccessToken(context.Context) (string, error) {
	if s.platformToken == "" {
		return "", ErrNoPlatformToken
	}
	return s.platformToken, nil
}

func (s *Static) ModelAPIKey(context.Context) (string, error) {
	if s.modelKey == "" {
		return "", ErrNoModelKey
	}
	return s.modelKey, nil
}
