package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Host string
	Port string
	Env  string

	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Host:         getEnvOrDefault("HOST", "127.0.0.1"),
		Port:         getEnvOrDefault("PORT", "3001"),
		Env:          getEnvOrDefault("ENV", "development"),
		GeminiAPIKey: mustGetEnv("GEMINI_API_KEY"),
		GeminiModel:  getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
	}

	return cfg
}

// Addr returns the host:port pair the server binds to. An empty HOST
// binds all interfaces.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}
