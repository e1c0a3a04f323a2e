package db

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpilot/internal/config/configs"
)

func mustURL(t *testing.T, raw string) url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return *u
}

func TestPoolConfigOverrides(t *testing.T) {
	cfg := configs.Postgres{
		Addr:            mustURL(t, "postgres://app:secret@db:5432/adpilot?sslmode=disable"),
		MaxConns:        7,
		MaxConnIdleTime: time.Minute,
	}

	got, err := poolConfig(cfg)
	require.NoError(t, err)
	assert.EqualValues(t, 7, got.MaxConns)
	assert.Equal(t, time.Minute, got.MaxConnIdleTime)
	assert.Equal(t, "db", got.ConnConfig.Host)
	assert.Equal(t, "adpilot", got.ConnConfig.Database)
	assert.Equal(t, applicationName, got.ConnConfig.RuntimeParams["application_name"])
}

func TestPoolConfigKeepsDefaults(t *testing.T) {
	defaults, err := poolConfig(configs.Postgres{Addr: mustURL(t, "postgres://db:5432/adpilot")})
	require.NoError(t, err)

	named, err := poolConfig(configs.Postgres{
		Addr: mustURL(t, "postgres://db:5432/adpilot?pool_max_conns=3&application_name=worker"),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, named.MaxConns)
	assert.Equal(t, "worker", named.ConnConfig.RuntimeParams["application_name"])
	assert.Greater(t, defaults.MaxConns, int32(0))
}

func TestPoolConfigRejectsBadAddress(t *testing.T) {
	_, err := poolConfig(configs.Postgres{Addr: mustURL(t, "postgres://db:5432/adpilot?pool_max_conns=many")})
	assert.ErrorContains(t, err, "parse postgres address")
}
