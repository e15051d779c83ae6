package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"securenest/internal/app/server/crypto"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Config is immutable after Load.
type Config struct {
	Env      string
	DB       DB
	Server   Server
	Logger   Logger
	Crypto   Crypto
	Identity Identity
}

type DB struct {
	DatabaseURI  string        `env:"DATABASE_URI"`
	Migrations   string        `env:"MIGRATIONS_PATH"`
	QueryTimeout time.Duration `env:"QUERY_TIMEOUT" envDefault:"5s"`
}

type Server struct {
	RunAddress      string        `env:"RUN_ADDRESS" envDefault:":5000"`
	ClientOrigin    string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type Logger struct {
	LogLevel string `env:"LOG_LEVEL"`
}

type Crypto struct {
	Key crypto.Key `env:"ENCRYPTION_KEY"`
}

type Identity struct {
	Issuer        string        `env:"IDENTITY_ISSUER"`
	Audience      string        `env:"IDENTITY_AUDIENCE"`
	HMACSecret    string        `env:"IDENTITY_HMAC_SECRET"`
	PublicKeyPath string        `env:"IDENTITY_PUBLIC_KEY_PATH"`
	Leeway        time.Duration `env:"IDENTITY_LEEWAY" envDefault:"30s"`
}

// Load reads configuration from the environment and an optional .env file.
// A missing or malformed ENCRYPTION_KEY is an error.
func Load() (*Config, error) {
	v := newViper()

	key, err := crypto.ParseKey(v.GetString("encryption_key"))
	if err != nil {
		return nil, fmt.Errorf("ENCRYPTION_KEY: %w", err)
	}

	cfg := &Config{
		Env: v.GetString("app_env"),
		DB:  dbFrom(v),
		Server: Server{
			RunAddress:      v.GetString("run_address"),
			ClientOrigin:    v.GetString("client_origin"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		},
		Logger:   Logger{LogLevel: v.GetString("log_level")},
		Crypto:   Crypto{Key: key},
		Identity: identityFrom(v),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDB reads only the database settings. Maintenance commands use it so
// they do not need the encryption key.
func LoadDB() (DB, error) {
	db := dbFrom(newViper())
	if db.DatabaseURI == "" {
		return DB{}, errors.New("DATABASE_URI is not set")
	}
	if db.QueryTimeout <= 0 {
		return DB{}, errors.New("QUERY_TIMEOUT must be positive")
	}
	return db, nil
}

// LoadIdentity reads only the token verification settings.
func LoadIdentity() Identity {
	return identityFrom(newViper())
}

func newViper() *viper.Viper {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("run_address", ":5000")
	v.SetDefault("client_origin", "http://localhost:5173")
	v.SetDefault("query_timeout", 5*time.Second)
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("identity_leeway", 30*time.Second)
	return v
}

func dbFrom(v *viper.Viper) DB {
	return DB{
		DatabaseURI:  v.GetString("database_uri"),
		Migrations:   v.GetString("migrations_path"),
		QueryTimeout: v.GetDuration("query_timeout"),
	}
}

func identityFrom(v *viper.Viper) Identity {
	return Identity{
		Issuer:        v.GetString("identity_issuer"),
		Audience:      v.GetString("identity_audience"),
		HMACSecret:    v.GetString("identity_hmac_secret"),
		PublicKeyPath: v.GetString("identity_public_key_path"),
		Leeway:        v.GetDuration("identity_leeway"),
	}
}

// MustLoad is Load that aborts the process on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

func (c *Config) validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("APP_ENV: unknown environment %q", c.Env)
	}
	if c.DB.QueryTimeout <= 0 {
		return errors.New("QUERY_TIMEOUT must be positive")
	}
	return nil
}
