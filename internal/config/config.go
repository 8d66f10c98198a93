package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	defaultAddress        = ":4001"
	defaultSettleDelay    = time.Second
	defaultRetryDelay     = 2 * time.Second
	defaultRetryAttempts  = 5
	defaultEntityCacheTTL = 5 * time.Minute
	defaultSyncTokenTTL   = time.Minute
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Firebase struct {
		ProjectID       string `yaml:"project_id"`
		APIKey          string `yaml:"api_key"`
		CredentialsFile string `yaml:"credentials_file"`
	} `yaml:"firebase"`
	Auth struct {
		SettleDelay   time.Duration `yaml:"-"`
		RetryDelay    time.Duration `yaml:"-"`
		RetryAttempts int           `yaml:"retry_attempts"`
	} `yaml:"auth"`
	Sync struct {
		URL        string        `yaml:"url"`
		SigningKey string        `yaml:"signing_key"`
		TokenTTL   time.Duration `yaml:"-"`
	} `yaml:"sync"`
	Storage struct {
		Endpoint  string `yaml:"endpoint"`
		Region    string `yaml:"region"`
		Bucket    string `yaml:"bucket"`
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
	} `yaml:"storage"`
	Redis struct {
		Addr           string        `yaml:"addr"`
		Password       string        `yaml:"password"`
		DB             int           `yaml:"db"`
		EntityCacheTTL time.Duration `yaml:"-"`
	} `yaml:"redis"`
}

// LoadConfig reads the optional YAML file pointed to by CONFIG_PATH and then
// applies environment overrides, so a bare container can run on env alone.
func LoadConfig() (Config, error) {
	cfg := Config{}
	cfg.Server.Address = defaultAddress
	cfg.Auth.SettleDelay = defaultSettleDelay
	cfg.Auth.RetryDelay = defaultRetryDelay
	cfg.Auth.RetryAttempts = defaultRetryAttempts
	cfg.Sync.TokenTTL = defaultSyncTokenTTL
	cfg.Redis.EntityCacheTTL = defaultEntityCacheTTL

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("unmarshal %s: %w", path, err)
		}
	}

	readString("SERVER_ADDRESS", &cfg.Server.Address)
	readString("FIREBASE_PROJECT_ID", &cfg.Firebase.ProjectID)
	readString("FIREBASE_API_KEY", &cfg.Firebase.APIKey)
	readString("FIREBASE_CREDENTIALS_FILE", &cfg.Firebase.CredentialsFile)
	readString("SYNC_URL", &cfg.Sync.URL)
	readString("SYNC_SIGNING_KEY", &cfg.Sync.SigningKey)
	readString("S3_ENDPOINT", &cfg.Storage.Endpoint)
	readString("S3_REGION", &cfg.Storage.Region)
	readString("S3_BUCKET", &cfg.Storage.Bucket)
	readString("S3_ACCESS_KEY", &cfg.Storage.AccessKey)
	readString("S3_SECRET_KEY", &cfg.Storage.SecretKey)
	readString("REDIS_ADDR", &cfg.Redis.Addr)
	readString("REDIS_PASSWORD", &cfg.Redis.Password)

	if err := readInt("REDIS_DB", &cfg.Redis.DB); err != nil {
		return Config{}, err
	}
	if err := readInt("AUTH_RETRY_ATTEMPTS", &cfg.Auth.RetryAttempts); err != nil {
		return Config{}, err
	}
	if err := readMillis("AUTH_SETTLE_DELAY_MS", &cfg.Auth.SettleDelay); err != nil {
		return Config{}, err
	}
	if err := readMillis("AUTH_RETRY_DELAY_MS", &cfg.Auth.RetryDelay); err != nil {
		return Config{}, err
	}
	if err := readSeconds("ENTITY_CACHE_TTL_SECONDS", &cfg.Redis.EntityCacheTTL); err != nil {
		return Config{}, err
	}
	if err := readSeconds("SYNC_TOKEN_TTL_SECONDS", &cfg.Sync.TokenTTL); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func readString(name string, dst *string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

func readInt(name string, dst *int) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	*dst = n
	return nil
}

func readMillis(name string, dst *time.Duration) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	*dst = time.Duration(n) * time.Millisecond
	return nil
}

func readSeconds(name string, dst *time.Duration) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	*dst = time.Duration(n) * time.Second
	return nil
}
