package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "lojinha", cfg.Mongo.Database)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, 30*24*time.Hour, cfg.Session.TTL)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "test-key")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MONGO_URI", "mongodb://mongo.internal:27017")
	t.Setenv("MONGO_DATABASE", "store")
	t.Setenv("REDIS_ADDRESS", "redis.internal:6379")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "mongodb://mongo.internal:27017", cfg.Mongo.URI)
	assert.Equal(t, "store", cfg.Mongo.Database)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Address)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
}

func TestLoad_MissingAdminKey(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "admin API key")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:  ServerConfig{Host: "0.0.0.0", Port: 8080},
			Mongo:   MongoConfig{URI: "mongodb://localhost:27017", Database: "lojinha", Timeout: 10},
			Redis:   RedisConfig{Address: "localhost:6379"},
			Logger:  LoggerConfig{Level: "info", Format: "json"},
			Auth:    AuthConfig{AdminAPIKey: "key"},
			Session: SessionConfig{TTL: 24 * time.Hour},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "bad port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: "server port"},
		{name: "missing mongo uri", mutate: func(c *Config) { c.Mongo.URI = "" }, wantErr: "mongo URI"},
		{name: "missing database", mutate: func(c *Config) { c.Mongo.Database = "" }, wantErr: "database name"},
		{name: "bad timeout", mutate: func(c *Config) { c.Mongo.Timeout = 0 }, wantErr: "timeout"},
		{name: "missing redis", mutate: func(c *Config) { c.Redis.Address = "" }, wantErr: "redis address"},
		{name: "short session ttl", mutate: func(c *Config) { c.Session.TTL = time.Minute }, wantErr: "session TTL"},
		{name: "bad log level", mutate: func(c *Config) { c.Logger.Level = "verbose" }, wantErr: "log level"},
		{name: "bad log format", mutate: func(c *Config) { c.Logger.Format = "xml" }, wantErr: "log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
