package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Knowledge KnowledgeConfig
	Speech    SpeechConfig
	Logger    LoggerConfig
}

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	WebStaticDir string
}

type DatabaseConfig struct {
	Path string
}

type KnowledgeConfig struct {
	DataFile string
}

type SpeechConfig struct {
	Method string // currently only "browser"
}

type LoggerConfig struct {
	Level string
}

func Load() (*Config, error) {
	// Try to load .env from the current directory or project root; plain
	// environment variables work too (useful for Docker).
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))

	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "127.0.0.1"),
			Port:         getEnv("SERVER_PORT", "5000"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
			WebStaticDir: getEnv("WEB_STATIC_DIR", "web/static"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "data/farm_advisor.db"),
		},
		Knowledge: KnowledgeConfig{
			DataFile: getEnv("KNOWLEDGE_FILE", "data/agricultural_data.json"),
		},
		Speech: SpeechConfig{
			Method: getEnv("SPEECH_METHOD", "browser"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
