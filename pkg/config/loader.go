package config

import (
	"errors"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Validator is implemented by configuration structs that check their own
// invariants after parsing.
type Validator interface {
	Validate() error
}

type options struct {
	files       []string
	prefix      string
	environment map[string]string
}

// Option customises a single Load call.
type Option func(*options)

// WithEnvFiles loads the given dotenv files before parsing. Missing files are
// skipped; malformed ones are reported. Values already present in the process
// environment win over file values.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		o.files = append(o.files, files...)
	}
}

// WithPrefix prepends prefix to every env tag, e.g. "CONTACT_".
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvironment parses from the given map instead of the process
// environment. Dotenv files are not consulted in this mode.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) {
		o.environment = vars
	}
}

var defaultEnvLoaded sync.Once

// Load parses environment variables into a fresh T using `env` struct tags.
//
// The default .env file in the working directory is loaded once per process
// when present. If T implements Validator, Validate runs after parsing and its
// error is wrapped with ErrInvalidConfig.
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	cfg, err := config.Load[ServerConfig]()
func Load[T any](opts ...Option) (T, error) {
	var zero T

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	parseOpts := env.Options{Prefix: o.prefix}

	if o.environment != nil {
		parseOpts.Environment = o.environment
	} else {
		defaultEnvLoaded.Do(func() {
			// .env is optional
			_ = godotenv.Load()
		})
		if err := loadFiles(o.files); err != nil {
			return zero, err
		}
	}

	cfg, err := env.ParseAsWithOptions[T](parseOpts)
	if err != nil {
		return zero, errors.Join(ErrParsingConfig, err)
	}

	if v, ok := any(&cfg).(Validator); ok {
		if err := v.Validate(); err != nil {
			return zero, errors.Join(ErrInvalidConfig, err)
		}
	}

	return cfg, nil
}

// MustLoad works like Load but panics on failure. Use it for configuration
// the process cannot start without.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic("config: " + err.Error())
	}
	return cfg
}

func loadFiles(files []string) error {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}
