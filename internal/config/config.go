package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultGatewayAddr       = ":8000"
	DefaultStorageAddr       = ":8080"
	DefaultStorageServiceURL = "http://storage-service:8080"
	DefaultStoragePath       = "/data"
	DefaultJournalDSN        = "memory://"
	DefaultGatewayURL        = "http://localhost:8000"
	DefaultGCTTL             = time.Hour
	DefaultGCInterval        = 30 * time.Minute
)

// Config — единый объект конфигурации обоих сервисов и CLI.
// Создаётся один раз при старте процесса и передаётся в конструкторы серверов.
type Config struct {
	GatewayAddr       string        `yaml:"gateway_addr" json:"gateway_addr"`
	StorageAddr       string        `yaml:"storage_addr" json:"storage_addr"`
	StorageServiceURL string        `yaml:"storage_service_url" json:"storage_service_url"`
	StoragePath       string        `yaml:"storage_path" json:"storage_path"`
	JournalDSN        string        `yaml:"journal_dsn" json:"-"`
	GatewayURL        string        `yaml:"gateway_url" json:"gateway_url"`
	GCTTL             time.Duration `yaml:"gc_ttl" json:"gc_ttl"`
	GCInterval        time.Duration `yaml:"gc_interval" json:"gc_interval"`
}

// Default возвращает конфигурацию со значениями по умолчанию.
func Default() *Config {
	return &Config{
		GatewayAddr:       DefaultGatewayAddr,
		StorageAddr:       DefaultStorageAddr,
		StorageServiceURL: DefaultStorageServiceURL,
		StoragePath:       DefaultStoragePath,
		JournalDSN:        DefaultJournalDSN,
		GatewayURL:        DefaultGatewayURL,
		GCTTL:             DefaultGCTTL,
		GCInterval:        DefaultGCInterval,
	}
}

// Load читает .env и YAML-конфигурацию, применяет ENV-переопределения и возвращает актуальную структуру.
// Отсутствие файлов не является ошибкой: остаются значения по умолчанию.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	c := Default()
	path := getenv("CONFIG_PATH", "./config.yaml")
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := c.applyEnv(); err != nil {
		return nil, err
	}

	c.StorageServiceURL = strings.TrimRight(c.StorageServiceURL, "/")
	c.GatewayURL = strings.TrimRight(c.GatewayURL, "/")

	return c, nil
}

// ENV override
func (c *Config) applyEnv() error {
	if v := os.Getenv("GATEWAY_ADDR"); v != "" {
		c.GatewayAddr = v
	}
	if v := os.Getenv("STORAGE_ADDR"); v != "" {
		c.StorageAddr = v
	}
	if v := os.Getenv("STORAGE_SERVICE_URL"); v != "" {
		c.StorageServiceURL = v
	}
	if v := os.Getenv("STORAGE_PATH"); v != "" {
		c.StoragePath = v
	}
	if v := os.Getenv("JOURNAL_DSN"); v != "" {
		c.JournalDSN = v
	}
	if v := os.Getenv("GATEWAY_URL"); v != "" {
		c.GatewayURL = v
	}
	if err := envDuration("GC_TTL", &c.GCTTL); err != nil {
		return err
	}

	return envDuration("GC_INTERVAL", &c.GCInterval)
}

func envDuration(key string, dst *time.Duration) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d

	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}

	return def
}
