package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultHTTPPort              = "8080"
	defaultOrderChangedTopic     = "orders.changed"
	defaultOutboxRelaySchedule   = "*/5 * * * * *"
	defaultOutboxBatchSize       = 100
	defaultAccessTokenTTLMinutes = 30
	defaultRefreshTokenTTLHours  = 7 * 24
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	TokenSecret            string
	AccessTokenTTL         time.Duration
	RefreshTokenTTL        time.Duration
	BcryptCost             int
	KafkaHost              string
	KafkaOrderChangedTopic string
	OutboxRelaySchedule    string
	OutboxBatchSize        int
	LogLevel               string
}

// DSN is the gorm postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// LoadConfig reads the environment after loading the env file named by
// --env-file. A missing env file is not an error.
func LoadConfig(args []string) (Config, error) {
	flags := pflag.NewFlagSet("orderdesk", pflag.ContinueOnError)
	envFile := flags.String("env-file", ".env", "path of the env file to load")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading %s: %w", *envFile, err)
	}

	accessMinutes, err := intVariable("ACCESS_TOKEN_EXPIRE_MINUTES", defaultAccessTokenTTLMinutes)
	if err != nil {
		return Config{}, err
	}
	refreshHours, err := intVariable("REFRESH_TOKEN_EXPIRE_HOURS", defaultRefreshTokenTTLHours)
	if err != nil {
		return Config{}, err
	}
	bcryptCost, err := intVariable("BCRYPT_COST", bcrypt.DefaultCost)
	if err != nil {
		return Config{}, err
	}
	batchSize, err := intVariable("OUTBOX_BATCH_SIZE", defaultOutboxBatchSize)
	if err != nil {
		return Config{}, err
	}

	config := Config{
		HTTPPort:               stringVariable("HTTP_PORT", defaultHTTPPort),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 os.Getenv("DB_PORT"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              stringVariable("DB_SSLMODE", "disable"),
		TokenSecret:            os.Getenv("TOKEN_SECRET"),
		AccessTokenTTL:         time.Duration(accessMinutes) * time.Minute,
		RefreshTokenTTL:        time.Duration(refreshHours) * time.Hour,
		BcryptCost:             bcryptCost,
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: stringVariable("KAFKA_ORDER_CHANGED_TOPIC", defaultOrderChangedTopic),
		OutboxRelaySchedule:    stringVariable("OUTBOX_RELAY_SCHEDULE", defaultOutboxRelaySchedule),
		OutboxBatchSize:        batchSize,
		LogLevel:               os.Getenv("LOG_LEVEL"),
	}

	if config.TokenSecret == "" {
		return Config{}, errors.New("TOKEN_SECRET is required")
	}
	if config.AccessTokenTTL <= 0 || config.RefreshTokenTTL <= 0 {
		return Config{}, errors.New("token lifetimes must be positive")
	}

	return config, nil
}

func stringVariable(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func intVariable(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
