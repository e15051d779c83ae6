package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress = "localhost:5000"
	defaultLogLevel      = "warn"
	defaultEnv           = "local"
	defaultConfigDir     = ".securenest"
	defaultTimeout       = 30 * time.Second
)

type Config struct {
	Env            string        `mapstructure:"app_env"`
	ServerAddress  string        `mapstructure:"server_address"`
	LogLevel       string        `mapstructure:"log_level"`
	ConfigDir      string        `mapstructure:"config_dir"`
	TokenPath      string        `mapstructure:"token_path"`
	CachePath      string        `mapstructure:"cache_path"`
	EnableTLS      bool          `mapstructure:"enable_tls"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// Load собирает конфигурацию клиента из .env, переменных окружения и
// необязательного файла config.yaml в каталоге конфигурации
func Load(configFile string) (*Config, error) {
	// Загружаем .env файл если существует
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	// Устанавливаем значения по умолчанию
	v.SetDefault("app_env", defaultEnv)
	v.SetDefault("server_address", defaultServerAddress)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("config_dir", defaultConfigDir)
	v.SetDefault("enable_tls", false)
	v.SetDefault("request_timeout", defaultTimeout)

	// Вычисляем каталог конфигурации относительно домашней директории
	configDir := v.GetString("config_dir")
	if !filepath.IsAbs(configDir) {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		configDir = filepath.Join(homeDir, configDir)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("ошибка чтения конфигурации: %w", err)
		}
		// Конфиг не найден, используем значения по умолчанию
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return nil, fmt.Errorf("ошибка создания директории конфигурации: %w", err)
	}

	tokenPath := v.GetString("token_path")
	if tokenPath == "" {
		tokenPath = filepath.Join(configDir, "token")
	}
	cachePath := v.GetString("cache_path")
	if cachePath == "" {
		cachePath = filepath.Join(configDir, "cache.db")
	}

	cfg := &Config{
		Env:            v.GetString("app_env"),
		ServerAddress:  v.GetString("server_address"),
		LogLevel:       v.GetString("log_level"),
		ConfigDir:      configDir,
		TokenPath:      tokenPath,
		CachePath:      cachePath,
		EnableTLS:      v.GetBool("enable_tls"),
		RequestTimeout: v.GetDuration("request_timeout"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("ошибка конфигурации: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return errors.New("server_address не может быть пустым")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request_timeout должен быть положительным")
	}
	return nil
}

// BaseURL возвращает адрес API с учётом схемы
func (c *Config) BaseURL() string {
	scheme := "http://"
	if c.EnableTLS {
		scheme = "https://"
	}
	return scheme + c.ServerAddress
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}
