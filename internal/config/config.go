package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Database  DatabaseConfig
	Firestore FirestoreConfig
	Gemini    GeminiConfig
	Listing   ListingConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

// StoreConfig selects the document-store backend: "firestore", "postgres"
// or "memory" (demo mode, nothing persisted).
type StoreConfig struct {
	Driver string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type FirestoreConfig struct {
	ProjectID       string
	CredentialsFile string
}

type GeminiConfig struct {
	APIKey        string
	ChatModel     string
	FeedbackModel string
	QuestionModel string
}

type ListingConfig struct {
	DefaultLimit int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Store: StoreConfig{
			Driver: getEnv("STORE_DRIVER", "firestore"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "prepinterview"),
		},
		Firestore: FirestoreConfig{
			ProjectID:       getEnv("FIRESTORE_PROJECT_ID", ""),
			CredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		},
		Gemini: GeminiConfig{
			APIKey:        getEnv("GEMINI_API_KEY", ""),
			ChatModel:     getEnv("GEMINI_CHAT_MODEL", "gemini-2.5-flash"),
			FeedbackModel: getEnv("GEMINI_FEEDBACK_MODEL", "gemini-2.0-flash-001"),
			QuestionModel: getEnv("GEMINI_QUESTION_MODEL", "gemini-2.5-flash"),
		},
		Listing: ListingConfig{
			DefaultLimit: getEnvAsInt("LISTING_DEFAULT_LIMIT", 20),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
