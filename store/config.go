// SPDX-License-Identifier: MIT

package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/graphrox/compress"
	"gopkg.in/yaml.v3"
)

// Backend names accepted in Config.Backend.
const (
	BackendLocal  = "local"
	BackendMemory = "memory"
	BackendMinio  = "minio"
	BackendS3     = "s3"
)

// ErrInvalidConfig indicates a configuration that cannot be opened.
var ErrInvalidConfig = errors.New("store: invalid config")

// Config is the YAML document describing a GraphStore.
type Config struct {
	Backend     string          `yaml:"backend"`
	Compression string          `yaml:"compression"`
	Concurrency int             `yaml:"concurrency"`
	Local       LocalConfig     `yaml:"local"`
	Minio       MinioConfig     `yaml:"minio"`
	S3          S3Config        `yaml:"s3"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
}

// LocalConfig configures the file system backend.
type LocalConfig struct {
	Root string `yaml:"root"`
}

// MinioConfig configures the MinIO backend.
type MinioConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Secure    bool   `yaml:"secure"`
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	Prefix    string `yaml:"prefix"`
}

// S3Config configures the AWS S3 backend. Credentials come from the default
// AWS chain (environment, shared config, instance role).
type S3Config struct {
	Bucket       string `yaml:"bucket"`
	Prefix       string `yaml:"prefix"`
	Region       string `yaml:"region"`
	Endpoint     string `yaml:"endpoint"`
	UsePathStyle bool   `yaml:"use_path_style"`
}

// RateLimitConfig throttles the backend; zero values mean unlimited.
type RateLimitConfig struct {
	OpsPerSecond   float64 `yaml:"ops_per_second"`
	BytesPerSecond int     `yaml:"bytes_per_second"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// ParseConfig decodes a YAML document, applies defaults and validates it.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Backend == "" {
		c.Backend = BackendLocal
	}
	if c.Backend == BackendLocal && c.Local.Root == "" {
		c.Local.Root = "graphs"
	}
	if c.Concurrency == 0 {
		c.Concurrency = DefaultConcurrency
	}
}

// Validate reports the first problem that would make Open fail.
func (c *Config) Validate() error {
	if _, err := compress.ParseAlgorithm(c.Compression); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency %d < 1", ErrInvalidConfig, c.Concurrency)
	}
	if c.RateLimit.OpsPerSecond < 0 || c.RateLimit.BytesPerSecond < 0 {
		return fmt.Errorf("%w: negative rate limit", ErrInvalidConfig)
	}
	switch c.Backend {
	case BackendLocal:
		if c.Local.Root == "" {
			return fmt.Errorf("%w: local.root is required", ErrInvalidConfig)
		}
	case BackendMemory:
	case BackendMinio:
		if c.Minio.Endpoint == "" || c.Minio.Bucket == "" {
			return fmt.Errorf("%w: minio.endpoint and minio.bucket are required", ErrInvalidConfig)
		}
	case BackendS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("%w: s3.bucket is required", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
	}

	return nil
}
