package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/soulverse/profile-server/internal/models"
)

// Service represents a service that interacts with a database.
type Service interface {
	// Health returns a map of health status information.
	// The keys and values in the map are service-specific.
	Health() map[string]string

	// Close terminates the database connection.
	// It returns an error if the connection cannot be closed.
	Close() error

	GetDB() *gorm.DB
}

type service struct {
	db *gorm.DB
}

// New connects using the DATABASE_URL or DB_* environment variables.
func New() (Service, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_SSLMODE"),
		)
	}

	return NewFromDSN(dsn)
}

// NewFromDSN connects to the given Postgres DSN, runs migrations and seeds
// the default profile.
func NewFromDSN(dsn string) (Service, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	log.Println("Database connected successfully")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &service{db: db}, nil
}

// Migrate runs schema migrations and seeds the default profile.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Profile{},
		&models.User{},
		&models.Comment{},
		&models.Vote{},
	)
	if err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	return seedDefaultProfile(db)
}

// seedDefaultProfile creates the initial profile when the table is empty so
// the profile page renders on a fresh database.
func seedDefaultProfile(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Profile{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	profile := models.Profile{
		ID:          1,
		Name:        "A Martinez",
		Description: "Adolph Larrue Martinez III.",
		MBTI:        "ISFJ",
		Enneagram:   "9w3",
		Variant:     "sp/so",
		Tritype:     725,
		Socionics:   "SEE",
		Sloan:       "RCOEN",
		Psyche:      "FEVL",
		Image:       models.DefaultAvatar,
	}
	if err := db.Create(&profile).Error; err != nil {
		return fmt.Errorf("error seeding default profile: %w", err)
	}

	log.Println("Default profile created")
	return nil
}

func (s *service) GetDB() *gorm.DB {
	return s.db
}

// Health checks the health of the database connection by pinging the database.
func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats := make(map[string]string)

	sqlDB, err := s.db.DB()
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db error: %v", err)
		return stats
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	stats["status"] = "up"

	dbStats := sqlDB.Stats()
	stats["open_connections"] = fmt.Sprintf("%d", dbStats.OpenConnections)
	stats["in_use"] = fmt.Sprintf("%d", dbStats.InUse)
	stats["idle"] = fmt.Sprintf("%d", dbStats.Idle)

	return stats
}

// Close closes the database connection.
func (s *service) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	log.Println("Disconnecting from database")
	return sqlDB.Close()
}
