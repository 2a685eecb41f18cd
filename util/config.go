package util

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/TASVideos/wikimark/wikitext"
	"github.com/spf13/viper"
)

type Config struct {
	Environment       string        `mapstructure:"ENVIRONMENT"`
	DBSource          string        `mapstructure:"DB_SOURCE"`
	MigrationURL      string        `mapstructure:"MIGRATION_URL"`
	HTTPServerAddress string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	RedisAddress      string        `mapstructure:"REDIS_ADDRESS"`
	TokenSymmetricKey string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	RenderCacheTTL    time.Duration `mapstructure:"RENDER_CACHE_TTL"`
	MaxWarnings       int           `mapstructure:"MAX_WARNINGS"`
	MaxNestingDepth   int           `mapstructure:"MAX_NESTING_DEPTH"`
	ExcerptRadius     int           `mapstructure:"EXCERPT_RADIUS"`
	AllowedOrigins    []string      `mapstructure:"ALLOWED_ORIGINS"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// markup limits fall back to the parser defaults
	viper.SetDefault("RENDER_CACHE_TTL", 10*time.Minute)
	viper.SetDefault("MAX_WARNINGS", wikitext.DefaultMaxWarnings)
	viper.SetDefault("MAX_NESTING_DEPTH", wikitext.DefaultMaxDepth)
	viper.SetDefault("EXCERPT_RADIUS", wikitext.DefaultExcerptRadius)

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}

// ParserOptions returns the parser limits of the config. Zero limits keep the parser defaults.
func (config *Config) ParserOptions() []wikitext.Option {
	var opts []wikitext.Option

	if config.MaxNestingDepth != 0 {
		opts = append(opts, wikitext.WithMaxDepth(config.MaxNestingDepth))
	}

	if config.MaxWarnings != 0 {
		opts = append(opts, wikitext.WithWarningsPolicy(wikitext.WarnOverflowTrunc, config.MaxWarnings))
	}

	return opts
}

// ExtractHostPort parses the HTTP server address and returns the host and port components.
// The scheme is optional. If no port is specified, port will be an empty string.
func (config *Config) ExtractHostPort() (host string, port string, err error) {
	addr := config.HTTPServerAddress
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}

	u, err := url.Parse(addr)
	if err != nil {
		err = fmt.Errorf("error parsing http server url: %w", err)
		return
	}

	host = u.Hostname()
	if host == "" {
		err = fmt.Errorf("http server url %q has no host", config.HTTPServerAddress)
		return
	}

	port = u.Port()
	return
}

// ListenAddress is the host:port pair for the HTTP server, port 8080 by default.
func (config *Config) ListenAddress() (string, error) {
	host, port, err := config.ExtractHostPort()
	if err != nil {
		return "", err
	}

	if port == "" {
		port = "8080"
	}

	return net.JoinHostPort(host, port), nil
}
