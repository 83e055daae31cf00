package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Data     DataConfig     `toml:"data"`
	Journal  JournalConfig  `toml:"journal"`
	Logging  LoggingConfig  `toml:"logging"`
}

type ServerConfig struct {
	Name     string        `toml:"name"`
	ID       int           `toml:"id"`
	Role     string        `toml:"role"` // "server" = network-authoritative, "client" = not
	TickRate time.Duration `toml:"tick_rate"`
}

type DatabaseConfig struct {
	DSN             string        `toml:"dsn"` // empty disables the spawn journal
	MaxOpenConns    int           `toml:"max_open_conns"`
	MaxIdleConns    int           `toml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `toml:"conn_max_lifetime"`
}

type DataConfig struct {
	TemplateList string `toml:"template_list"`
	PoolList     string `toml:"pool_list"`
	ScriptsDir   string `toml:"scripts_dir"` // empty disables spawn hooks
}

type JournalConfig struct {
	FlushInterval int `toml:"flush_interval"` // ticks between journal flushes
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Authoritative reports whether this process holds the server role.
func (c ServerConfig) Authoritative() bool {
	return c.Role == "server"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Name:     "netpoold",
			ID:       1,
			Role:     "server",
			TickRate: 200 * time.Millisecond,
		},
		Database: DatabaseConfig{
			DSN:             "",
			MaxOpenConns:    10,
			MaxIdleConns:    2,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Data: DataConfig{
			TemplateList: "data/yaml/template_list.yaml",
			PoolList:     "data/yaml/pool_list.yaml",
			ScriptsDir:   "scripts/spawn",
		},
		Journal: JournalConfig{
			FlushInterval: 25, // 25 ticks × 200ms = 5 seconds
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
