package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Type identifies a RecordStore implementation
type Type string

const (
	TypeDynamo Type = "dynamo"
	TypeSQLite Type = "sqlite"
	TypeMemory Type = "memory"
)

// Config selects and parameterizes a RecordStore implementation
type Config struct {
	Type       string // "dynamo", "sqlite" or "memory"
	Table      string // DynamoDB table name
	Region     string // AWS region for the dynamo store
	Endpoint   string // optional custom DynamoDB endpoint
	SQLitePath string // database file path for the sqlite store
}

// New creates a RecordStore instance based on the provided configuration
func New(ctx context.Context, config *Config, logger *logrus.Logger) (RecordStore, error) {
	if config == nil {
		return nil, fmt.Errorf("store config is required")
	}

	switch Type(strings.ToLower(config.Type)) {
	case TypeDynamo:
		return NewDynamoStore(ctx, DynamoConfig{
			Table:    config.Table,
			Region:   config.Region,
			Endpoint: config.Endpoint,
		}, logger)
	case TypeSQLite:
		return NewSQLiteStore(config.SQLitePath, logger)
	case TypeMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported store type: %s", config.Type)
	}
}
