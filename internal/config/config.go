package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// Storage drivers selectable via LEAD_STORAGE_DRIVER
const (
	StorageDriverMongo    = "mongo"
	StorageDriverPostgres = "postgres"
)

type HTTPCfg struct {
	Port int `env:"HTTP_PORT" envDefault:"5000"`
}

type MongoCfg struct {
	User        string `env:"MONGO_USER"`
	Password    string `env:"MONGO_PASSWORD"`
	Host        string `env:"MONGO_HOST" envDefault:"mongo-leads"`
	Port        int    `env:"MONGO_PORT" envDefault:"27017"`
	Database    string `env:"MONGO_DATABASE" envDefault:"leadflow"`
	MaxPoolSize int    `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`
}

type PostgresCfg struct {
	User        string `env:"POSTGRES_USER"`
	Password    string `env:"POSTGRES_PASSWORD"`
	Database    string `env:"POSTGRES_DB"`
	Host        string `env:"POSTGRES_HOST" envDefault:"pg-leads"`
	SslMode     string `env:"POSTGRES_SLL_MODE" envDefault:"disable"`
	Port        int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PoolMaxConn int    `env:"POSTGRES_POOL_MAX_CONN" envDefault:"100"`
}

type RedisCfg struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"redis-leads:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type LeadCfg struct {
	StorageDriver     string `env:"LEAD_STORAGE_DRIVER" envDefault:"mongo"`
	StrictTransitions bool   `env:"LEAD_STRICT_TRANSITIONS" envDefault:"false"`
}

type Config struct {
	HTTPCfg     HTTPCfg
	MongoCfg    MongoCfg
	PostgresCfg PostgresCfg
	RedisCfg    RedisCfg
	LeadCfg     LeadCfg
}

func Build() (Config, error) {
	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	if d := cfg.LeadCfg.StorageDriver; d != StorageDriverMongo && d != StorageDriverPostgres {
		return cfg, fmt.Errorf("unknown storage driver %q", d)
	}

	return cfg, nil
}
