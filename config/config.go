package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string
	}
	Redis struct {
		// empty Addr keeps report caching in memory
		Addr     string
		Password string
		DB       int
	}
	Report struct {
		Workers         int
		CacheTTLSeconds int
	}
	Log struct {
		Level string
	}
}

var C Config

// Load reads the yaml file at path (optional when empty) and applies
// POKERLENS_ environment overrides, e.g. POKERLENS_REDIS_ADDR.
func Load(path string) error {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("POKERLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if c.Report.Workers <= 0 {
		return fmt.Errorf("report.workers must be positive, got %d", c.Report.Workers)
	}
	C = c
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", ":8080")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("report.workers", 8)
	v.SetDefault("report.cachettlseconds", 600)
	v.SetDefault("log.level", "info")
}
