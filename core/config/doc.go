// Package config loads typed configuration from environment variables using
// github.com/caarlos0/env struct tags.
//
//	type Config struct {
//		LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
//		MaxURLLength int    `env:"MAX_URL_LENGTH" envDefault:"2048"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// A .env file in the working directory is read once, on first use, with
// github.com/joho/godotenv. Each type is parsed once and cached for the life
// of the process; use Parse to read the environment again.
package config
