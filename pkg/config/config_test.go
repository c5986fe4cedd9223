package config

import (
	"strings"
	"testing"
)

func productionConfig() *Config {
	return &Config{
		Environment:          EnvProduction,
		StoreBackend:         StorePostgres,
		LogLevel:             "info",
		AuthRequired:         true,
		JWTSecret:            strings.Repeat("j", 32),
		SessionAuthKey:       strings.Repeat("a", 32),
		SessionEncryptionKey: strings.Repeat("e", 32),
	}
}

func TestValidateForProduction_NonProductionSkips(t *testing.T) {
	cfg := &Config{Environment: EnvDevelopment, LogLevel: "debug", StoreBackend: StoreMemory}
	if err := ValidateForProduction(cfg); err != nil {
		t.Fatalf("expected nil for development, got %v", err)
	}
}

func TestValidateForProduction_Valid(t *testing.T) {
	if err := ValidateForProduction(productionConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateForProduction_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"short session key", func(c *Config) { c.SessionAuthKey = "short" }, "SESSION_AUTH_KEY"},
		{"short encryption key", func(c *Config) { c.SessionEncryptionKey = "short" }, "SESSION_ENCRYPTION_KEY"},
		{"auth disabled", func(c *Config) { c.AuthRequired = false }, "AUTH_REQUIRED"},
		{"short jwt secret", func(c *Config) { c.JWTSecret = "tiny" }, "JWT_SECRET"},
		{"memory store", func(c *Config) { c.StoreBackend = StoreMemory }, "STORE_BACKEND"},
		{"debug logging", func(c *Config) { c.LogLevel = "debug" }, "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := productionConfig()
			tt.mutate(cfg)
			err := ValidateForProduction(cfg)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error to mention %q, got %q", tt.want, err.Error())
			}
		})
	}
}
