// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Persist.Backend)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "novamart.admin.ui", cfg.UIState.Namespace)
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	cfg := &Config{Persist: PersistConfig{Backend: "floppy"}}
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsDefaultSecretInProduction(t *testing.T) {
	cfg := &Config{
		Environment: "production",
		Persist:     PersistConfig{Backend: "memory"},
		JWT:         JWTConfig{SecretKey: "your-secret-key-change-in-production"},
	}
	assert.Error(t, cfg.Validate())
}

func TestDatabaseDSN(t *testing.T) {
	c := DatabaseConfig{
		Host: "localhost", Port: "5432", User: "postgres",
		Password: "pw", Database: "storefront_state", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=pw dbname=storefront_state sslmode=disable",
		c.DSN())
}
