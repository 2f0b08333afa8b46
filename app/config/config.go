// Package config loads the service's YAML configuration into a package
// var, the same Load(path)-into-C pattern as the teacher's parser
// config, with cmd/api overlaying some of its values with environment
// variables read through os.Getenv.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// AppCfg is the top-level HTTP server configuration.
type AppCfg struct {
	Port string `yaml:"port" json:"port"`
	Env  string `yaml:"env" json:"env"`
}

// MongoCfg points at the persistent directory store.
type MongoCfg struct {
	URL      string `yaml:"url" json:"url"`
	Database string `yaml:"database" json:"database"`
}

// RedisCfg points at the shared L2 cache.
type RedisCfg struct {
	URL string `yaml:"url" json:"url"`
}

// CacheCfg sizes and expires the lookup cache tiers.
type CacheCfg struct {
	L1Size     int `yaml:"l1_size" json:"l1_size"`
	TTLSeconds int `yaml:"ttl_seconds" json:"ttl_seconds"`
}

// IngestCfg configures the bulk directory loader.
type IngestCfg struct {
	DefaultPath string `yaml:"default_path" json:"default_path"`
}

// Config is the full decoded configuration tree.
type Config struct {
	App    AppCfg    `yaml:"app" json:"app"`
	Mongo  MongoCfg  `yaml:"mongo" json:"mongo"`
	Redis  RedisCfg  `yaml:"redis" json:"redis"`
	Cache  CacheCfg  `yaml:"cache" json:"cache"`
	Ingest IngestCfg `yaml:"ingest" json:"ingest"`
}

// C is the process-wide configuration, populated by Load.
var C Config

// Load decodes the YAML file at path into C.
func Load(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, &C)
}

// CacheTTL returns the configured lookup-cache entry lifetime.
func CacheTTL() time.Duration {
	return time.Duration(C.Cache.TTLSeconds) * time.Second
}
