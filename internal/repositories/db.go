// Package repositories provides the data access layer: Postgres via
// gorm for durable records and Redis for cache-aside reads.
package repositories

import (
	"log"
	"os"
	"time"

	"bdn/internal/config"
	"bdn/internal/models"
	"bdn/internal/repositories/cache"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global database instance used across the application.
var DB *gorm.DB

// CacheService is the global Redis-backed cache.
var CacheService *cache.CacheService

// InitDB initializes Postgres and Redis, runs migrations, and wires
// the global handles.
func InitDB() error {
	initPostgres()

	redisCfg := &cache.RedisConfig{
		Host:     config.GetEnv("REDIS_HOST", "localhost"),
		Port:     config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	}
	redisClient := cache.NewRedisClient(redisCfg)
	cacheTTL := time.Duration(config.GetIntEnv("CACHE_TTL_MINUTES", 15)) * time.Minute
	CacheService = cache.NewCacheService(redisClient, cacheTTL)

	err := DB.AutoMigrate(
		&models.Product{},
		&models.Transaction{},
		&models.BDNPlusSubscription{},
		&models.SubscriptionBoxPlan{},
		&models.SubscriptionBox{},
		&models.SubscriptionOrder{},
		&models.Shipment{},
		&models.PaymentMethod{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return nil
}

func initPostgres() {
	dsn := config.MustGetEnv("DATABASE_URL")

	logLevel := logger.Warn
	if config.IsProduction() {
		logLevel = logger.Error
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold: 200 * time.Millisecond,
				LogLevel:      logLevel,
			},
		),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	DB = db
}
