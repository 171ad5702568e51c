package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sosodev/duration"
)

type (
	Config struct {
		BotToken      string        `env:"BOT_TOKEN,required"`
		ChannelsFile  string        `env:"CHANNELS_FILE" envDefault:"channels.toml"`
		SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"5s"`
		TitleCacheTTL time.Duration `env:"TITLE_CACHE_TTL" envDefault:"10m"`
		PrintMessages bool          `env:"PRINT_MSGS"`

		IgnoreMigration bool  `env:"IGNORE_SQL_MIGRATION"`
		MySQL           MySQL `envPrefix:"MYSQL_"`
	}

	// MySQL is optional, without MYSQL_DB no audit trail is written.
	MySQL struct {
		Host     string `env:"HOST" envDefault:"localhost"`
		Port     string `env:"PORT" envDefault:"3306"`
		User     string `env:"USER"`
		Password string `env:"PASSWORD"`
		DB       string `env:"DB"`
		TLS      string `env:"TLS" envDefault:"false"`
	}
)

func Load() (*Config, error) {
	return parse(env.Options{})
}

func parse(opts env.Options) (*Config, error) {
	opts.FuncMap = map[reflect.Type]env.ParserFunc{
		reflect.TypeOf(time.Duration(0)): func(v string) (interface{}, error) {
			return ParseDuration(v)
		},
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, err
	}

	if cfg.SweepInterval <= 0 {
		return nil, fmt.Errorf("SWEEP_INTERVAL must be positive, got %s", cfg.SweepInterval)
	}
	if cfg.TitleCacheTTL < 0 {
		return nil, fmt.Errorf("TITLE_CACHE_TTL must not be negative, got %s", cfg.TitleCacheTTL)
	}

	return cfg, nil
}

// ParseDuration accepts Go durations ("500ms") and ISO 8601 ("PT0.5S").
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)

	d, err := time.ParseDuration(s)
	if err == nil {
		return d, nil
	}

	iso, isoErr := duration.Parse(s)
	if isoErr != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return iso.ToTimeDuration(), nil
}

func (m MySQL) Enabled() bool {
	return strings.TrimSpace(m.DB) != ""
}

func (m MySQL) DSN() string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&tls=%s",
		strings.TrimSpace(m.User),
		strings.TrimSpace(m.Password),
		strings.TrimSpace(m.Host),
		strings.TrimSpace(m.Port),
		strings.TrimSpace(m.DB),
		strings.TrimSpace(m.TLS),
	)
}
