package infisical

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/envkit/httpclient"
)

const (
	defaultSecretPath = "/"
	defaultCacheTTL   = 300 * time.Second
)

// Config configures the Infisical provider.
type Config struct {
	// SiteURL is the base URL of the Infisical API.
	SiteURL string `yaml:"site_url" mapstructure:"site_url" validate:"required,http_url"`

	// ClientID is the machine identity client ID.
	ClientID string `yaml:"client_id" mapstructure:"client_id" validate:"required"`

	// ClientSecret is the machine identity client secret.
	ClientSecret string `yaml:"client_secret" mapstructure:"client_secret" validate:"required"`

	// ProjectID is the workspace/project to read secrets from.
	ProjectID string `yaml:"project_id" mapstructure:"project_id" validate:"required"`

	// Environment is the environment slug (e.g. "dev", "prod").
	Environment string `yaml:"environment" mapstructure:"environment" validate:"required"`

	// SecretPath scopes which secrets are fetched. Defaults to "/".
	SecretPath string `yaml:"secret_path" mapstructure:"secret_path"`

	// CacheTTL controls how long fetched secrets stay fresh. Defaults to 300s.
	// Independent of access token expiry.
	CacheTTL time.Duration `yaml:"cache_ttl" mapstructure:"cache_ttl"`

	// HTTP configures the underlying HTTP client. BaseURL defaults to SiteURL.
	HTTP httpclient.Config `yaml:"http" mapstructure:"http" validate:"-"`
}

// ApplyDefaults fills in zero-value fields with defaults.
func (c *Config) ApplyDefaults() {
	if c.SecretPath == "" {
		c.SecretPath = defaultSecretPath
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = defaultCacheTTL
	}
	if c.HTTP.BaseURL == "" {
		c.HTTP.BaseURL = c.SiteURL
	}
	c.HTTP.ApplyDefaults()
}

// Validate checks that the configuration is complete.
func (c *Config) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			return fmt.Errorf("infisical: invalid config: %w", err)
		}
		fields := make([]string, 0, len(errs))
		for _, e := range errs {
			fields = append(fields, fmt.Sprintf("%s (%s)", e.Field(), e.Tag()))
		}
		return fmt.Errorf("infisical: invalid config: %s", strings.Join(fields, ", "))
	}
	return c.HTTP.Validate()
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}
