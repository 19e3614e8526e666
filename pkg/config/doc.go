// Package config loads typed configuration from the process environment.
//
// It combines github.com/joho/godotenv for optional .env files with
// github.com/caarlos0/env/v11 for tag-driven parsing:
//
//	type ContactConfig struct {
//	    Recipient string        `env:"CONTACT_EMAIL" envDefault:"contact@devcodecare.in"`
//	    Timeout   time.Duration `env:"CONTACT_SEND_TIMEOUT" envDefault:"10s"`
//	}
//
//	cfg, err := config.Load[ContactConfig]()
//
// Structs implementing Validator are checked after parsing. Errors can be
// matched with errors.Is against ErrParsingConfig, ErrInvalidConfig and
// ErrLoadingEnvFile.
//
// Tests should prefer WithEnvironment, which parses from a map and leaves the
// process environment alone.
package config
