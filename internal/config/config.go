package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	Database   Database
	RateLimit  RateLimit
	Redis      Redis
}

type HTTPServer struct {
	Address string
	Port    int
}

type Database struct {
	URL            string
	MigrationsPath string
}

type RateLimit struct {
	Enabled           bool
	RequestsPerSecond float64
}

type Redis struct {
	Enabled  bool
	Address  string
	Port     int
	Password string
	DB       int
	PoolSize int
	TTL      int
}

// MustLoad reads configuration from an optional config/config.yaml and from the
// environment. The database URL has no default: the service refuses to start
// without one.
func MustLoad() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	viper.SetDefault("env", "dev")

	viper.SetDefault("http_server.address", "0.0.0.0")
	viper.SetDefault("http_server.port", 8080)

	viper.SetDefault("database.migrations_path", "migrations")

	viper.SetDefault("rate_limit.enabled", false)
	viper.SetDefault("rate_limit.requests_per_second", 20)

	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.address", "redis")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.pool_size", 10)
	viper.SetDefault("redis.ttl", 300)

	_ = viper.BindEnv("env", "ENV")
	_ = viper.BindEnv("http_server.address", "HTTP_SERVER_ADDRESS")
	_ = viper.BindEnv("http_server.port", "HTTP_SERVER_PORT")
	_ = viper.BindEnv("database.url", "DATABASE_URL")
	_ = viper.BindEnv("database.migrations_path", "MIGRATIONS_PATH")
	_ = viper.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	_ = viper.BindEnv("redis.enabled", "REDIS_ENABLED")
	_ = viper.BindEnv("redis.address", "REDIS_ADDRESS")
	_ = viper.BindEnv("redis.port", "REDIS_PORT")
	_ = viper.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = viper.BindEnv("redis.db", "REDIS_DB")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Error reading config file: %s", err)
			os.Exit(1)
		}
	}

	if viper.GetString("database.url") == "" {
		log.Print("DATABASE_URL is required")
		os.Exit(1)
	}

	config := &Config{
		Env: viper.GetString("env"),
		HTTPServer: HTTPServer{
			Address: viper.GetString("http_server.address"),
			Port:    viper.GetInt("http_server.port"),
		},
		Database: Database{
			URL:            viper.GetString("database.url"),
			MigrationsPath: viper.GetString("database.migrations_path"),
		},
		RateLimit: RateLimit{
			Enabled:           viper.GetBool("rate_limit.enabled"),
			RequestsPerSecond: viper.GetFloat64("rate_limit.requests_per_second"),
		},
		Redis: Redis{
			Enabled:  viper.GetBool("redis.enabled"),
			Address:  viper.GetString("redis.address"),
			Port:     viper.GetInt("redis.port"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
			PoolSize: viper.GetInt("redis.pool_size"),
			TTL:      viper.GetInt("redis.ttl"),
		},
	}

	return config
}
