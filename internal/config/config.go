// Package config loads service settings from config.yaml and the environment.
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   Server   `mapstructure:"server"`
	Settings Settings `mapstructure:"settings"`
	QR       QR       `mapstructure:"qr"`
	Logo     Logo     `mapstructure:"logo"`
	Preview  Preview  `mapstructure:"preview"`
}

type Server struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type Settings struct {
	Debug     bool   `mapstructure:"debug"`
	LogToFile bool   `mapstructure:"log-to-file"`
	LogsDir   string `mapstructure:"logs-dir"`
	Timezone  string `mapstructure:"timezone"`
}

type QR struct {
	Encoder string `mapstructure:"encoder"`
	Verify  bool   `mapstructure:"verify"`
}

type Logo struct {
	Dir      string        `mapstructure:"dir"`
	Timeout  time.Duration `mapstructure:"timeout"`
	MaxBytes int64         `mapstructure:"max-bytes"`
	Coverage float64       `mapstructure:"coverage"`
	// AllowPrivateHosts permits logo URLs on loopback and private networks.
	AllowPrivateHosts bool      `mapstructure:"allow-private-hosts"`
	Cache             LogoCache `mapstructure:"cache"`
}

type LogoCache struct {
	TTL        time.Duration `mapstructure:"ttl"`
	MaxEntries int           `mapstructure:"max-entries"`
	Redis      Redis         `mapstructure:"redis"`
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type Preview struct {
	MaxSessions int `mapstructure:"max-sessions"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("settings.debug", false)
	v.SetDefault("settings.log-to-file", false)
	v.SetDefault("settings.logs-dir", "logs")
	v.SetDefault("settings.timezone", "UTC")
	v.SetDefault("qr.encoder", "yeqown")
	v.SetDefault("qr.verify", false)
	v.SetDefault("logo.dir", "uploads")
	v.SetDefault("logo.timeout", 5*time.Second)
	v.SetDefault("logo.max-bytes", 2<<20)
	v.SetDefault("logo.coverage", 0.2)
	v.SetDefault("logo.allow-private-hosts", false)
	v.SetDefault("logo.cache.ttl", 10*time.Minute)
	v.SetDefault("logo.cache.max-entries", 64)
	v.SetDefault("logo.cache.redis.addr", "")
	v.SetDefault("logo.cache.redis.password", "")
	v.SetDefault("logo.cache.redis.db", 0)
	v.SetDefault("preview.max-sessions", 1024)
}

// Load reads config.yaml from the given directories (the working directory
// when none are given). A missing file is not an error. Environment variables
// prefixed with QRSTUDIO_ override file values, e.g. QRSTUDIO_LOGO_TIMEOUT=2s;
// a bare PORT overrides server.port.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	v.SetEnvPrefix("QRSTUDIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	return &cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Server.Port, ":")
}

// Location resolves settings.timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Settings.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
