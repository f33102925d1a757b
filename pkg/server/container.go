// Package server wires application dependencies for both the standalone
// HTTP server and the Lambda entrypoints.
package server

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/internal/config"
	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/internal/services"
	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/internal/store"
)

// Container holds all application dependencies
type Container struct {
	Config            *config.Config
	Logger            *logrus.Logger
	Store             store.RecordStore
	SubmissionService services.SubmissionService
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	logger := newLogger(cfg)

	recordStore, err := store.New(context.Background(), &store.Config{
		Type:       cfg.Store.Type,
		Table:      cfg.Store.Table,
		Region:     cfg.Store.Region,
		Endpoint:   cfg.Store.Endpoint,
		SQLitePath: cfg.Store.SQLitePath,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create record store: %w", err)
	}

	return &Container{
		Config:            cfg,
		Logger:            logger,
		Store:             recordStore,
		SubmissionService: services.NewSubmissionService(recordStore),
	}, nil
}

// newLogger builds the application logger from configuration
func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	if cfg.Environment == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			return fmt.Errorf("failed to close record store: %w", err)
		}
	}
	return nil
}
