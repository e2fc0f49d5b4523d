package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port               int      `mapstructure:"port"`
		MonitoringPort     int      `mapstructure:"monitoring_port"`
		CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
		CorsAllowedMethods []string `mapstructure:"cors_allowed_methods"`
		CorsAllowedHeaders []string `mapstructure:"cors_allowed_headers"`
	} `mapstructure:"server"`

	Storage struct {
		Backend     string `mapstructure:"backend"` // file, redis, postgres or memory
		FilePath    string `mapstructure:"file_path"`
		RedisAddr   string `mapstructure:"redis_addr"`
		RedisPass   string `mapstructure:"redis_password"`
		PostgresURL string `mapstructure:"postgres_url"`
	} `mapstructure:"storage"`

	JWT struct {
		Secret          string `mapstructure:"secret"`
		ExpirationHours int    `mapstructure:"expiration_hours"`
		Issuer          string `mapstructure:"issuer"`
	} `mapstructure:"jwt"`

	Backup struct {
		Enabled         bool   `mapstructure:"enabled"`
		Endpoint        string `mapstructure:"endpoint"`
		AccessKey       string `mapstructure:"access_key"`
		SecretKey       string `mapstructure:"secret_key"`
		Bucket          string `mapstructure:"bucket"`
		Region          string `mapstructure:"region"`
		IntervalMinutes int    `mapstructure:"interval_minutes"`
	} `mapstructure:"backup"`

	UPI struct {
		ID          string `mapstructure:"id"`
		PayeeName   string `mapstructure:"payee_name"`
	} `mapstructure:"upi"`

	Razorpay struct {
		KeyID     string `mapstructure:"key_id"`
		KeySecret string `mapstructure:"key_secret"`
	} `mapstructure:"razorpay"`
}

func Load() *Config {
	// Load .env file if exists (ignore error in production)
	godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")

	// Auto bind environment variables
	v.AutomaticEnv()

	// Set sensible defaults (binary works without config file)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.monitoring_port", 9090)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("server.cors_allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("server.cors_allowed_headers", []string{"Content-Type", "Authorization"})
	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.file_path", "data/dairy_data.json")
	v.SetDefault("storage.redis_addr", "localhost:6379")
	v.SetDefault("jwt.expiration_hours", 24)
	v.SetDefault("jwt.issuer", "dairy-backend")
	v.SetDefault("backup.region", "auto")
	v.SetDefault("backup.interval_minutes", 60)
	v.SetDefault("upi.payee_name", "Baba Dhudh Bhandar")

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		log.Printf("[Config] No config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("config unmarshal error: %v", err)
	}

	// Storage overrides from environment
	if backend := os.Getenv("STORAGE_BACKEND"); backend != "" {
		cfg.Storage.Backend = backend
	}
	if path := os.Getenv("STORAGE_FILE_PATH"); path != "" {
		cfg.Storage.FilePath = path
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Storage.RedisAddr = addr
	}
	if pass := os.Getenv("REDIS_PASSWORD"); pass != "" {
		cfg.Storage.RedisPass = pass
	}
	if url := os.Getenv("POSTGRES_URL"); url != "" {
		cfg.Storage.PostgresURL = url
	}

	// JWT secret must come from the environment when not in the file
	if cfg.JWT.Secret == "" || cfg.JWT.Secret == "${JWT_SECRET}" {
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		if cfg.JWT.Secret == "" {
			log.Fatal("JWT_SECRET not set in config or environment")
		}
	}

	// R2 backup credentials from environment
	if endpoint := os.Getenv("R2_ENDPOINT"); endpoint != "" {
		cfg.Backup.Endpoint = endpoint
	}
	if key := os.Getenv("R2_ACCESS_KEY"); key != "" {
		cfg.Backup.AccessKey = key
	}
	if secret := os.Getenv("R2_SECRET_KEY"); secret != "" {
		cfg.Backup.SecretKey = secret
	}
	if bucket := os.Getenv("R2_BUCKET"); bucket != "" {
		cfg.Backup.Bucket = bucket
	}
	if interval := os.Getenv("BACKUP_INTERVAL_MINUTES"); interval != "" {
		if n, err := strconv.Atoi(interval); err == nil && n > 0 {
			cfg.Backup.IntervalMinutes = n
		}
	}
	cfg.Backup.Enabled = cfg.Backup.Endpoint != "" && cfg.Backup.AccessKey != "" &&
		cfg.Backup.SecretKey != "" && cfg.Backup.Bucket != ""

	// UPI id for payment QR codes
	if upi := os.Getenv("UPI_ID"); upi != "" {
		cfg.UPI.ID = upi
	}

	// Razorpay payment links (optional)
	if keyID := os.Getenv("RAZORPAY_KEY_ID"); keyID != "" {
		cfg.Razorpay.KeyID = keyID
	}
	if keySecret := os.Getenv("RAZORPAY_KEY_SECRET"); keySecret != "" {
		cfg.Razorpay.KeySecret = keySecret
	}

	return &cfg
}
