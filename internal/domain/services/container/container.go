package container

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/ritikkamerkar15/residential-security-system/internal/domain/events"
	"github.com/ritikkamerkar15/residential-security-system/internal/domain/services"
	"github.com/ritikkamerkar15/residential-security-system/internal/infrastructure/config"
	"github.com/ritikkamerkar15/residential-security-system/pkg/logger"
)

// ServiceContainer manages dependency injection for all services
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client
	bus    *events.Bus

	// Base services
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService

	// Business services
	directoryService services.InterfaceDirectoryService
	authService      services.InterfaceAuthService

	// MQTT event bridge
	mqttBridgeService services.InterfaceMQTTBridgeService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container. A nil db is allowed:
// the directory then runs entirely on its in-memory demo store.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if cfg == nil {
		panic("configuration is nil")
	}

	// Probe the Redis connection; sessions degrade to stateless JWT checks
	// when the cache is unreachable.
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warning("Redis connection test failed: %v, session cache disabled", err)
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
		bus:    events.NewBus(),
	}
	container.initializeServices()
	return container
}

// initializeServices wires every service in dependency order
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Base services
	c.jwtService = services.NewJWTService(c.config)
	c.redisService = services.NewRedisService(c.config)

	// Directory holds the data plane and publishes change events on the bus
	c.directoryService = services.NewDirectoryService(c.db, c.config, c.bus)

	// Auth rides on top of the directory
	c.authService = services.NewAuthService(c.directoryService, c.jwtService, c.redisService)

	// Optional MQTT bridge for external dashboards
	c.mqttBridgeService = services.NewMQTTBridgeService(c.config, c.bus)
	if err := c.mqttBridgeService.Connect(); err != nil {
		logger.Warning("MQTT bridge connection failed: %v", err)
	}
}

// GetService returns the service registered under the given name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "bus":
		return c.bus
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "directory":
		return c.directoryService
	case "auth":
		return c.authService
	case "mqtt_bridge":
		return c.mqttBridgeService
	default:
		return nil
	}
}

// GetDB returns the database connection, nil in demo mode
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// GetBus returns the in-process event bus
func (c *ServiceContainer) GetBus() *events.Bus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bus
}

// Shutdown releases resources held by long-lived services
func (c *ServiceContainer) Shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mqttBridgeService != nil {
		c.mqttBridgeService.Disconnect()
	}
	if c.redis != nil {
		_ = c.redis.Close()
	}
}
