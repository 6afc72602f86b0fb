package config_test

import (
	"frontdesk/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironment(t *testing.T) {
	cfg := &config.Config{}

	cfg.Server.Env = "development"
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	cfg.Server.Env = "production"
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.IsProduction())
}

func TestDatabaseName(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Read.Name = "frontdesk"

	assert.Equal(t, "frontdesk", cfg.DatabaseName(cfg.DB.Postgres.Read))

	cfg.DB.Postgres.Prefix = "test_"
	assert.Equal(t, "test_frontdesk", cfg.DatabaseName(cfg.DB.Postgres.Read))
}
