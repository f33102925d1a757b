package lambda

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/internal/config"
	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/pkg/server"
)

// ConnectionManager keeps the service container alive across warm Lambda
// invocations so the store client is built once per container, not once
// per request.
type ConnectionManager struct {
	container   *server.Container
	lastUsed    time.Time
	mu          sync.RWMutex
	initialized bool
	config      *config.Config
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the global connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = &ConnectionManager{}
	})
	return globalConnectionManager
}

// Initialize builds the container for the given configuration. Later calls
// are no-ops until Cleanup tears the container down again.
func (cm *ConnectionManager) Initialize(cfg *config.Config) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.initialized && cm.container != nil {
		return nil
	}

	container, err := server.NewContainer(cfg)
	if err != nil {
		return err
	}

	cm.config = cfg
	cm.container = container
	cm.lastUsed = time.Now()
	cm.initialized = true
	return nil
}

// GetContainer returns the service container, initializing it from the
// environment on the first (cold start) call.
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*server.Container, error) {
	cm.mu.RLock()
	if cm.initialized && cm.container != nil {
		container := cm.container
		cm.mu.RUnlock()
		cm.touch()
		return container, nil
	}
	cm.mu.RUnlock()

	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		return nil, err
	}
	if err := cm.Initialize(cfg); err != nil {
		return nil, err
	}

	cm.mu.RLock()
	defer cm.mu.RUnlock()
	if cm.container == nil {
		return nil, fmt.Errorf("container initialization did not complete")
	}
	return cm.container, nil
}

// IsHealthy reports whether an initialized container is available and has
// been used recently
func (cm *ConnectionManager) IsHealthy() bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	if !cm.initialized || cm.container == nil {
		return false
	}
	return time.Since(cm.lastUsed) < 5*time.Minute
}

// Cleanup closes the container and its store connections
func (cm *ConnectionManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		if err := cm.container.Close(); err != nil {
			return err
		}
		cm.container = nil
	}

	cm.initialized = false
	return nil
}

func (cm *ConnectionManager) touch() {
	cm.mu.Lock()
	cm.lastUsed = time.Now()
	cm.mu.Unlock()
}
