package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Blockchain BlockchainConfig
	Deploy     DeployConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode + "&prepare_threshold=0"
}

// RedisConfig holds Redis configuration. An empty URL disables the distributed import lock.
type RedisConfig struct {
	URL      string
	PASSWORD string
}

// BlockchainConfig holds RPC provider settings
type BlockchainConfig struct {
	AlchemyAPIKey string
	// RPCTimeout bounds each factory read; zero leaves the client default.
	RPCTimeout time.Duration
}

// DeployConfig holds deployment import settings
type DeployConfig struct {
	Folder         string
	ProjectName    string
	FallbackRPCURL string
	LockTTL        time.Duration
	// MaxParallel limits concurrent artifact imports per network; zero means unlimited.
	MaxParallel int
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "saasadmin"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			PASSWORD: getEnv("REDIS_PASSWORD", ""),
		},
		Blockchain: BlockchainConfig{
			AlchemyAPIKey: getEnv("ALCHEMY_API_KEY", ""),
			RPCTimeout:    getEnvAsDuration("BLOCKCHAIN_RPC_TIMEOUT", 0),
		},
		Deploy: DeployConfig{
			Folder:         getEnv("DEPLOY_FOLDER", "deployments"),
			ProjectName:    getEnv("DEPLOY_PROJECT_NAME", "Hardhat Deployments"),
			FallbackRPCURL: getEnv("DEPLOY_FALLBACK_RPC_URL", ""),
			LockTTL:        getEnvAsDuration("IMPORT_LOCK_TTL", 10*time.Minute),
			MaxParallel:    getEnvAsInt("IMPORT_MAX_PARALLEL", 0),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
