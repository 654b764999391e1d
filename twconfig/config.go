// Package twconfig loads and saves the twift CLI's profile configuration.
//
// Profiles live in a single YAML file (by default
// ~/.config/twift/config.yaml, overridable with TWIFT_CONFIG_PATH) and
// hold API credentials per account. Environment variables override file
// values so CI and one-off invocations never need a config file.
package twconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profile holds credentials for one account. A profile carries either an
// app-only bearer token, a full OAuth 1.0a credential set, or both.
type Profile struct {
	BearerToken    string `yaml:"bearer_token,omitempty"`
	ConsumerKey    string `yaml:"consumer_key,omitempty"`
	ConsumerSecret string `yaml:"consumer_secret,omitempty"`
	AccessToken    string `yaml:"access_token,omitempty"`
	AccessSecret   string `yaml:"access_secret,omitempty"`
	BaseURL        string `yaml:"base_url,omitempty"`
}

// GlobalConfig is the on-disk shape of the config file.
type GlobalConfig struct {
	Profiles       map[string]Profile `yaml:"profiles"`
	DefaultProfile string             `yaml:"default_profile,omitempty"`
}

// DefaultGlobalConfigPath returns the config file location, honoring
// TWIFT_CONFIG_PATH.
func DefaultGlobalConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv("TWIFT_CONFIG_PATH")); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "twift", "config.yaml"), nil
}

// LoadGlobal loads the config from the default path.
func LoadGlobal() (*GlobalConfig, error) {
	path, err := DefaultGlobalConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadGlobalFrom(path)
}

// LoadGlobalFrom loads the config from path. A missing file is not an
// error; it yields an empty config.
func LoadGlobalFrom(path string) (*GlobalConfig, error) {
	cfg := &GlobalConfig{Profiles: map[string]Profile{}}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Profiles == nil {
		cfg.Profiles = map[string]Profile{}
	}
	return cfg, nil
}

// SaveGlobalTo writes the config to path with mode 0600, creating parent
// directories as needed. The write is atomic (temp file + rename) so a
// crash never leaves a truncated config.
func (c *GlobalConfig) SaveGlobalTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".tmp.config-*")
	if err != nil {
		return fmt.Errorf("create temp config: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp config: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp config: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename config: %w", err)
	}
	return nil
}

// ResolveOptions select which profile Resolve picks and whether
// environment variables may override file values.
type ResolveOptions struct {
	ProfileName       string
	AllowEnvOverrides bool
}

// Selection is a fully resolved credential set ready to hand to the
// client constructors.
type Selection struct {
	Profile        string
	BaseURL        string
	BearerToken    string
	ConsumerKey    string
	ConsumerSecret string
	AccessToken    string
	AccessSecret   string
}

// HasUserContext reports whether the selection carries a complete OAuth
// 1.0a credential set.
func (s *Selection) HasUserContext() bool {
	return s.ConsumerKey != "" && s.ConsumerSecret != "" && s.AccessToken != "" && s.AccessSecret != ""
}

// HasBearerToken reports whether the selection carries an app-only token.
func (s *Selection) HasBearerToken() bool { return s.BearerToken != "" }

// Resolve picks a profile and applies environment overrides. Precedence:
// explicit ProfileName, then DefaultProfile, then a sole configured
// profile. With AllowEnvOverrides, credentials from the environment win
// over file values and suffice on their own when no profile exists.
func Resolve(cfg *GlobalConfig, opts ResolveOptions) (*Selection, error) {
	sel := &Selection{}

	name := strings.TrimSpace(opts.ProfileName)
	if name == "" {
		name = strings.TrimSpace(cfg.DefaultProfile)
	}
	if name == "" && len(cfg.Profiles) == 1 {
		for k := range cfg.Profiles {
			name = k
		}
	}
	if name != "" {
		p, ok := cfg.Profiles[name]
		if !ok {
			return nil, fmt.Errorf("profile %q not found in config", name)
		}
		sel.Profile = name
		sel.BaseURL = p.BaseURL
		sel.BearerToken = p.BearerToken
		sel.ConsumerKey = p.ConsumerKey
		sel.ConsumerSecret = p.ConsumerSecret
		sel.AccessToken = p.AccessToken
		sel.AccessSecret = p.AccessSecret
	}

	if opts.AllowEnvOverrides {
		overrideFromEnv(&sel.BaseURL, "TWIFT_BASE_URL")
		overrideFromEnv(&sel.BearerToken, "TWIFT_BEARER_TOKEN")
		overrideFromEnv(&sel.ConsumerKey, "TWIFT_CONSUMER_KEY")
		overrideFromEnv(&sel.ConsumerSecret, "TWIFT_CONSUMER_SECRET")
		overrideFromEnv(&sel.AccessToken, "TWIFT_ACCESS_TOKEN")
		overrideFromEnv(&sel.AccessSecret, "TWIFT_ACCESS_SECRET")
	}

	if !sel.HasBearerToken() && !sel.HasUserContext() {
		return nil, fmt.Errorf("no credentials configured (set a profile in the config file or TWIFT_BEARER_TOKEN / TWIFT_CONSUMER_* env vars)")
	}
	return sel, nil
}

func overrideFromEnv(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}
