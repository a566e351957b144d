package signin

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EditionSelfHosted is the community edition, which always offers email login.
const EditionSelfHosted = "SELF_HOSTED"

// Config describes the sign-in configuration. It is read once at start-up.
type Config struct {
	APIURL           string   `env:"SIGNIN_API_URL"            envDefault:"http://localhost:5001/console/api"`
	Edition          string   `env:"SIGNIN_EDITION"            envDefault:"SELF_HOSTED"`
	SupportMailLogin bool     `env:"SIGNIN_SUPPORT_MAIL_LOGIN"`
	HomePath         string   `env:"SIGNIN_HOME_PATH"          envDefault:"/apps"`
	Providers        []string `env:"SIGNIN_PROVIDERS"          envDefault:"github,google" envSeparator:","`
	SessionURL       string   `env:"SIGNIN_SESSION_URL"`
	RedisAddr        string   `env:"SIGNIN_REDIS_ADDR"`
	RedisPrefix      string   `env:"SIGNIN_REDIS_PREFIX"       envDefault:"signin:"`
	LogDebug         bool     `env:"SIGNIN_LOG_DEBUG"`
	LogFormat        string   `env:"SIGNIN_LOG_FORMAT"`
}

// CredentialLoginEnabled reports whether the email and password path is
// offered. OAuth paths are not affected.
func (c *Config) CredentialLoginEnabled() bool {
	return c.Edition == EditionSelfHosted || c.SupportMailLogin
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	ret := &Config{}
	if err := env.Parse(ret); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	ret.Providers = trimCSV(ret.Providers)
	return ret, nil
}

// trimCSV removes empty entries from a string slice.
func trimCSV(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
