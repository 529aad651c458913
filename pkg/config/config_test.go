package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, "MXN", cfg.Cash.Currency)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.DB.ForceIPv4)
	assert.Equal(t, 2, cfg.DB.MinConns)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "Memory")
	v.Set("HTTP_PORT", "9090")
	v.Set("CASH_CURRENCY", "usd")
	v.Set("REDIS_ADDR", "localhost:6379")
	v.Set("DB_FORCE_IPV4", "true")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.DB.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "USD", cfg.Cash.Currency)
	assert.True(t, cfg.Redis.Enabled())
	assert.True(t, cfg.DB.ForceIPv4)
}

func TestFromViper_PoolInconsistente(t *testing.T) {
	v := viper.New()
	v.Set("DB_MAX_CONNS", "4")
	v.Set("DB_MIN_CONNS", "8")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_DriverInvalido(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "mysql")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "caja", Password: "p@ss:word", DBName: "caja", SSLMode: "disable"}
	assert.Equal(t, "postgres://caja:p%40ss%3Aword@db:5432/caja?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
