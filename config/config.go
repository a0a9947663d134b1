package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nikhilkumar92976/FOOD-INSTA/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds all application configuration.
type Config struct {
	Port       string
	GinMode    string
	CORSOrigin string

	Database DatabaseConfig
	Auth     AuthConfig
	Media    MediaConfig
	Mail     MailConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	LogLevel string // silent | error | warn | info
}

type AuthConfig struct {
	JWTSecret    string
	CookieSecure bool
}

type MediaConfig struct {
	Region         string
	Bucket         string
	PublicURL      string // CloudFront origin for uploaded objects
	MaxUploadBytes int64
}

type MailConfig struct {
	Region string
	Sender string // SES verified sender; mail is off when empty
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, continuing with environment variables")
	}

	awsRegion := getEnv("AWS_REGION", "ap-south-1")
	maxMB, err := getEnvInt("MAX_UPLOAD_MB", 100)
	if err != nil {
		return nil, err
	}
	secure, err := getEnvBool("COOKIE_SECURE", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:       getEnv("PORT", "3000"),
		GinMode:    getEnv("GIN_MODE", ""),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:5173"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "foodinsta"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			LogLevel: getEnv("DB_LOG_LEVEL", "warn"),
		},
		Auth: AuthConfig{
			JWTSecret:    getEnv("JWT_SECRET", ""),
			CookieSecure: secure,
		},
		Media: MediaConfig{
			Region:         getEnv("S3_REGION", awsRegion),
			Bucket:         getEnv("S3_BUCKET", ""),
			PublicURL:      getEnv("CLOUDFRONT_URL", ""),
			MaxUploadBytes: int64(maxMB) << 20,
		},
		Mail: MailConfig{
			Region: awsRegion,
			Sender: getEnv("SES_EMAIL", ""),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}
	return cfg, nil
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// GormConfig is shared by the postgres connection and test databases.
func GormConfig(level string) *gorm.Config {
	return &gorm.Config{
		Logger: logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogLevel(level),
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		}),
		TranslateError: true,
	}
}

// ConnectDB opens the postgres pool and verifies it with a ping.
func ConnectDB(d DatabaseConfig) (*gorm.DB, error) {
	log.Printf("connecting to database host=%s db=%s user=%s port=%s sslmode=%s", d.Host, d.Name, d.User, d.Port, d.SSLMode)

	db, err := gorm.Open(postgres.Open(d.DSN()), GormConfig(d.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("gorm open: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB(): %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}
	log.Println("database connection established")
	return db, nil
}

// Migrate creates or updates the tables for every model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.FoodPartner{},
		&models.FoodItem{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
		}
		return intVal, nil
	}
	return defaultVal, nil
}

func getEnvBool(key string, defaultVal bool) (bool, error) {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid boolean for %s: %w", key, err)
		}
		return b, nil
	}
	return defaultVal, nil
}

// String masks secrets.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %s, DB: %s@%s/%s, S3: %s, Auth: *** (masked) ***}",
		c.Port, c.Database.User, c.Database.Host, c.Database.Name, c.Media.Bucket)
}
