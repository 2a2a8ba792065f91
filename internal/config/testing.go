package config

import (
	"testing"

	"go.uber.org/zap"
)

func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestConfig returns a config with a no-op logger and the given table,
// without reading the environment.
func NewTestConfig(t *testing.T, table string) *Config {
	t.Helper()

	cfg := New()
	cfg.Logger = NewTestLogger()
	cfg.DynamoDB = DynamoDBConfig{
		Table:  table,
		Region: "us-east-1",
	}
	return cfg
}
