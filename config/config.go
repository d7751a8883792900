package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	CredentialsMemory = "memory"
	CredentialsMongo  = "mongo"
	CredentialsRedis  = "redis"
)

type Config struct {
	Server struct {
		Port           int      `yaml:"port"`
		AllowOrigins   []string `yaml:"allowOrigins"`
		TrustedProxies []string `yaml:"trustedProxies"`
	} `yaml:"server"`

	Openai struct {
		BaseURL        string `yaml:"baseURL"`
		Model          string `yaml:"model"`
		TimeoutSeconds int    `yaml:"timeoutSeconds"`
	} `yaml:"openai"`

	Credentials struct {
		Backend string `yaml:"backend"`
	} `yaml:"credentials"`

	Database struct {
		URI        string `yaml:"uri"`
		Collection string `yaml:"collection"`
	} `yaml:"database"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Sessions struct {
		IdleMinutes int `yaml:"idleMinutes"`
	} `yaml:"sessions"`

	Log struct {
		Mode string `yaml:"mode"`
	} `yaml:"log"`
}

// LoadConfig reads the configuration file, fills defaults and applies
// environment overrides. An empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a configuration made only of defaults and environment
// overrides.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	cfg.applyEnv()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 1313
	}
	if len(c.Server.AllowOrigins) == 0 {
		c.Server.AllowOrigins = []string{"http://localhost:5173"}
	}
	if len(c.Server.TrustedProxies) == 0 {
		c.Server.TrustedProxies = []string{"127.0.0.1"}
	}
	if c.Openai.BaseURL == "" {
		c.Openai.BaseURL = "https://api.openai.com/v1"
	}
	if c.Openai.Model == "" {
		c.Openai.Model = "gpt-4o-mini"
	}
	if c.Openai.TimeoutSeconds == 0 {
		c.Openai.TimeoutSeconds = 120
	}
	if c.Credentials.Backend == "" {
		c.Credentials.Backend = CredentialsMemory
	}
	if c.Database.Collection == "" {
		c.Database.Collection = "credentials"
	}
	if c.Sessions.IdleMinutes == 0 {
		c.Sessions.IdleMinutes = 24 * 60
	}
	if c.Log.Mode == "" {
		c.Log.Mode = "development"
	}
}

func (c *Config) applyEnv() {
	c.Server.Port = envInt("WRITEASSESS_PORT", c.Server.Port)
	if v := envString("WRITEASSESS_ALLOW_ORIGINS"); v != "" {
		c.Server.AllowOrigins = splitList(v)
	}
	if v := envString("OPENAI_BASE_URL"); v != "" {
		c.Openai.BaseURL = v
	}
	if v := envString("OPENAI_MODEL"); v != "" {
		c.Openai.Model = v
	}
	c.Openai.TimeoutSeconds = envInt("OPENAI_TIMEOUT_SECONDS", c.Openai.TimeoutSeconds)
	if v := envString("WRITEASSESS_CREDENTIALS_BACKEND"); v != "" {
		c.Credentials.Backend = strings.ToLower(v)
	}
	if v := envString("MONGO_URI"); v != "" {
		c.Database.URI = v
	}
	if v := envString("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := envString("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := envString("LOG_MODE"); v != "" {
		c.Log.Mode = v
	}
}

// Validate checks that the selected credential backend is usable
func (c *Config) Validate() error {
	switch c.Credentials.Backend {
	case CredentialsMemory:
	case CredentialsMongo:
		if c.Database.URI == "" {
			return fmt.Errorf("credentials backend %q requires database.uri", c.Credentials.Backend)
		}
	case CredentialsRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("credentials backend %q requires redis.addr", c.Credentials.Backend)
		}
	default:
		return fmt.Errorf("unknown credentials backend %q", c.Credentials.Backend)
	}
	return nil
}

// Timeout is the transport-level timeout for model requests
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Openai.TimeoutSeconds) * time.Second
}

// SessionIdle is how long an untouched session is kept in memory
func (c *Config) SessionIdle() time.Duration {
	return time.Duration(c.Sessions.IdleMinutes) * time.Minute
}

func envString(name string) string {
	return strings.TrimSpace(os.Getenv(name))
}

func envInt(name string, def int) int {
	v := envString(name)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
