package cli

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/signin"
	"gopkg.in/yaml.v3"
)

// Options are the command line options. Values left empty fall back to the
// options file and then to the environment.
type Options struct {
	URL        string   `short:"u" long:"url" description:"console api url" yaml:"url,omitempty" json:"url,omitempty"`
	ConfigURL  string   `short:"c" long:"config" description:"options file (yaml), any afs url" yaml:"-" json:"-"`
	Email      string   `short:"e" long:"email" description:"account email" yaml:"email,omitempty" json:"email,omitempty"`
	Password   string   `short:"p" long:"password" description:"account password" yaml:"password,omitempty" json:"password,omitempty"`
	Remember   bool     `short:"r" long:"remember" description:"remember me" yaml:"remember,omitempty" json:"remember,omitempty"`
	Provider   string   `short:"P" long:"provider" description:"sign in with oauth provider" yaml:"provider,omitempty" json:"provider,omitempty"`
	Providers  []string `long:"providers" description:"configured oauth providers" yaml:"providers,omitempty" json:"providers,omitempty"`
	HomePath   string   `long:"home" description:"route shown after login" yaml:"homePath,omitempty" json:"homePath,omitempty"`
	SessionURL string   `short:"s" long:"session" description:"session file url" yaml:"sessionURL,omitempty" json:"sessionURL,omitempty"`
	RedisAddr  string   `long:"redis" description:"redis address for session tokens" yaml:"redisAddr,omitempty" json:"redisAddr,omitempty"`
	Debug      bool     `short:"d" long:"debug" description:"debug logging" yaml:"debug,omitempty" json:"debug,omitempty"`
	LogFormat  string   `long:"log-format" description:"text or json" yaml:"logFormat,omitempty" json:"logFormat,omitempty"`
}

// Load merges the options file at ConfigURL under the flag values.
func (o *Options) Load(ctx context.Context) error {
	if o.ConfigURL == "" {
		return nil
	}
	data, err := afs.New().DownloadWithURL(ctx, o.ConfigURL)
	if err != nil {
		return fmt.Errorf("failed to load options %v: %w", o.ConfigURL, err)
	}
	fromFile := &Options{}
	if err = yaml.Unmarshal(data, fromFile); err != nil {
		return fmt.Errorf("invalid options %v: %w", o.ConfigURL, err)
	}
	o.merge(fromFile)
	return nil
}

func (o *Options) merge(from *Options) {
	if o.URL == "" {
		o.URL = from.URL
	}
	if o.Email == "" {
		o.Email = from.Email
	}
	if o.Password == "" {
		o.Password = from.Password
	}
	if o.Provider == "" {
		o.Provider = from.Provider
	}
	if len(o.Providers) == 0 {
		o.Providers = from.Providers
	}
	if o.HomePath == "" {
		o.HomePath = from.HomePath
	}
	if o.SessionURL == "" {
		o.SessionURL = from.SessionURL
	}
	if o.RedisAddr == "" {
		o.RedisAddr = from.RedisAddr
	}
	if o.LogFormat == "" {
		o.LogFormat = from.LogFormat
	}
	o.Remember = o.Remember || from.Remember
	o.Debug = o.Debug || from.Debug
}

// Apply overrides config with the options that were set.
func (o *Options) Apply(config *signin.Config) {
	if o.URL != "" {
		config.APIURL = o.URL
	}
	if len(o.Providers) > 0 {
		config.Providers = o.Providers
	}
	if o.HomePath != "" {
		config.HomePath = o.HomePath
	}
	if o.SessionURL != "" {
		config.SessionURL = o.SessionURL
	}
	if o.RedisAddr != "" {
		config.RedisAddr = o.RedisAddr
	}
	if o.LogFormat != "" {
		config.LogFormat = o.LogFormat
	}
	config.LogDebug = config.LogDebug || o.Debug
}
