package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env         string `env:"ENV" env-default:"local"`
	DatabaseURL string `env:"DATABASE_URL" env-required:"true"`
	HTTPServer
}

type HTTPServer struct {
	Host        string        `env:"SERVER_HOST" env-default:"127.0.0.1"`
	Port        uint16        `env:"SERVER_PORT" env-default:"3000"`
	Timeout     time.Duration `env:"SERVER_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" env-default:"60s"`
}

// MustLoad reads configuration from the environment and exits the
// process if DATABASE_URL is missing. A .env file is loaded first when
// present.
func MustLoad() *Config {
	_ = godotenv.Load()

	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
