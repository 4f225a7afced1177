package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> any (a T value)
	loadMu     sync.Mutex
)

// Load fills cfg from the environment. The first call in a process reads a
// .env file from the working directory if one exists; variables already set
// in the environment win over it. Each type is parsed once and cached, so
// later calls copy the cached value into cfg.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config: nil target")
	}
	dotenvOnce.Do(loadDotenv)

	typ := reflect.TypeFor[T]()
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	loadMu.Lock()
	defer loadMu.Unlock()
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", typ, err)
	}
	cache.Store(typ, parsed)
	*cfg = parsed
	return nil
}

// MustLoad is Load that panics on failure.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Parse fills cfg from the current environment, bypassing the cache and the
// .env file.
func Parse[T any](cfg *T) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", reflect.TypeFor[T](), err)
	}
	return nil
}

// loadDotenv ignores a missing or unreadable .env file.
func loadDotenv() {
	_ = godotenv.Load()
}
