// @title           Residential Security System API
// @version         1.0
// @description     Visitor request lifecycle service for a residential society: gate registration, resident approval and admin oversight

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ritikkamerkar15/residential-security-system/internal/app/routes"
	"github.com/ritikkamerkar15/residential-security-system/internal/domain/models"
	"github.com/ritikkamerkar15/residential-security-system/internal/infrastructure/config"
	"github.com/ritikkamerkar15/residential-security-system/internal/infrastructure/database"
	"github.com/ritikkamerkar15/residential-security-system/pkg/logger"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := logger.SetupLogger(); err != nil {
		fmt.Printf("failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		logger.Warning("no .env file loaded: %v", err)
	} else {
		logger.Info(".env file loaded")
	}

	cfg := config.GetConfig()

	// A missing database config is not an error: the service then runs on
	// the seeded in-memory store, which is how the demo deployment works.
	var db *gorm.DB
	var pool *database.ConnectionPool
	if cfg.IsDatabaseConfigured() {
		var err error
		pool, err = database.NewConnectionPool(cfg)
		if err != nil {
			logger.Error("failed to create database connection pool: %v", err)
			os.Exit(1)
		}
		db = pool.DB

		if err := autoMigrate(db); err != nil {
			logger.Error("database migration failed: %v", err)
			os.Exit(1)
		}
		ensureAdminExists(db, cfg)
	} else {
		logger.Info("no database configured, serving from the in-memory store")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	r, serviceContainer := routes.SetupRouter(db, cfg, redisClient)
	defer serviceContainer.Shutdown()
	if pool != nil {
		defer pool.Close()
	}

	port := cfg.ServerPort
	logger.Info("server listening on http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		logger.Error("failed to start server: %v", err)
		os.Exit(1)
	}
}

// autoMigrate adds new tables and columns, never drops
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Resident{},
		&models.FamilyMember{},
		&models.TemporaryGuest{},
		&models.Guard{},
		&models.Admin{},
		&models.VisitorRequest{},
		&models.User{},
	)
}

// ensureAdminExists creates the default administrator on first start
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	db.Model(&models.Admin{}).Count(&count)
	if count > 0 {
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("failed to hash default admin password: %v", err)
		os.Exit(1)
	}

	admin := models.Admin{
		AdminID:  "admin001",
		Name:     "Society Admin",
		Password: string(hashedPassword),
	}
	if err := db.Create(&admin).Error; err != nil {
		logger.Error("failed to create default admin: %v", err)
		os.Exit(1)
	}

	logger.Info("created default admin account admin001")
}
