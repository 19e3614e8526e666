package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/devcodecare/site/modules/contact"
	"github.com/devcodecare/site/modules/site"
	"github.com/devcodecare/site/pkg/config"
	"github.com/devcodecare/site/pkg/email"
	"github.com/devcodecare/site/pkg/environment"
	"github.com/devcodecare/site/pkg/httpserver"
	"github.com/devcodecare/site/pkg/ratelimit"
	"github.com/devcodecare/site/pkg/redis"
)

// appConfig is the complete process configuration.
type appConfig struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"devcodecare-site"`
	// LogLevel overrides the environment default, e.g. "debug" or "warn".
	LogLevel string `env:"LOG_LEVEL"`

	Contact   contactConfig
	RateLimit ratelimit.Config
	Email     email.Config
	Redis     redis.Config
	HTTP      httpserver.Config
	Site      site.Config
}

type contactConfig struct {
	Recipient   string        `env:"CONTACT_EMAIL" envDefault:"contact@devcodecare.in"`
	SendTimeout time.Duration `env:"CONTACT_SEND_TIMEOUT" envDefault:"10s"`
	// ExposeErrors overrides the environment default when set.
	ExposeErrors string `env:"CONTACT_EXPOSE_ERRORS"`
}

var errInvalidExposeErrors = errors.New("CONTACT_EXPOSE_ERRORS must be a boolean")

func (c *appConfig) Validate() error {
	if err := c.RateLimit.Validate(); err != nil {
		return err
	}
	if c.Contact.SendTimeout <= 0 {
		return fmt.Errorf("CONTACT_SEND_TIMEOUT must be positive, got %s", c.Contact.SendTimeout)
	}
	if c.Contact.Recipient == "" {
		c.Contact.Recipient = contact.DefaultRecipient
	}
	if _, set, err := c.logLevel(); set && err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if c.Contact.ExposeErrors != "" {
		if _, err := strconv.ParseBool(c.Contact.ExposeErrors); err != nil {
			return errInvalidExposeErrors
		}
	}
	return nil
}

// Environment returns the parsed APP_ENV.
func (c *appConfig) Environment() environment.Environment {
	return environment.Parse(c.Env)
}

func (c *appConfig) logLevel() (level slog.Level, set bool, err error) {
	if c.LogLevel == "" {
		return level, false, nil
	}
	err = level.UnmarshalText([]byte(c.LogLevel))
	return level, true, err
}

// ExposeErrorDetail reports whether delivery errors are shown to visitors.
// Production hides them unless CONTACT_EXPOSE_ERRORS says otherwise.
func (c *appConfig) ExposeErrorDetail() bool {
	if v, err := strconv.ParseBool(c.Contact.ExposeErrors); err == nil {
		return v
	}
	return !c.Environment().IsProduction()
}

func loadConfig(opts ...config.Option) (*appConfig, error) {
	if len(envFiles) > 0 {
		opts = append(opts, config.WithEnvFiles(envFiles...))
	}
	cfg, err := config.Load[appConfig](opts...)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
