package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvLocal = "local"
	EnvProd  = "prod"
)

type Config struct {
	Env        string     `yaml:"env" env:"APP_ENV" env-default:"prod"`
	PostgreSQL PostgreSQL `yaml:"postgresql"`
	HTTPServer HTTPServer `yaml:"http_server"`
	JWT        JWT        `yaml:"jwt"`
	Admin      Admin      `yaml:"admin"`
	Storage    Storage    `yaml:"storage"`
	Minio      Minio      `yaml:"minio"`
}

type PostgreSQL struct {
	Host     string `yaml:"host" env:"POSTGRES_HOST" env-required:"true"`
	Port     string `yaml:"port" env:"POSTGRES_PORT" env-required:"true"`
	Username string `yaml:"username" env:"POSTGRES_USER" env-required:"true"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD" env-required:"true"`
	Database string `yaml:"database" env:"POSTGRES_DB" env-required:"true"`
}

type HTTPServer struct {
	Address        string        `yaml:"address" env:"HTTP_ADDRESS" env-required:"true"`
	Timeout        time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowedOrigins []string      `yaml:"allowed_origins" env-default:"*"`
}

type JWT struct {
	Secret         string        `yaml:"secret" env:"JWT_SECRET" env-required:"true"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env-default:"12h"`
}

// Admin holds the single dashboard account. PasswordHash is a bcrypt hash.
type Admin struct {
	Username     string `yaml:"username" env:"ADMIN_USERNAME" env-required:"true"`
	PasswordHash string `yaml:"password_hash" env:"ADMIN_PASSWORD_HASH" env-required:"true"`
}

type Storage struct {
	Driver        string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"local"`
	PublicDir     string `yaml:"public_dir" env:"STORAGE_PUBLIC_DIR" env-default:"public"`
	MaxUploadSize int64  `yaml:"max_upload_size" env-default:"52428800"`
}

type Minio struct {
	Endpoint        string `yaml:"endpoint" env:"MINIO_ENDPOINT"`
	AccessKeyID     string `yaml:"access_key_id" env:"MINIO_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" env:"MINIO_SECRET_ACCESS_KEY"`
	Bucket          string `yaml:"bucket" env:"MINIO_BUCKET" env-default:"public"`
	UseSSL          bool   `yaml:"use_ssl"`
}

// MustLoad reads the config file named by -config or CONFIG_PATH. Variables
// from a .env file in the working directory, when present, override it.
func MustLoad() *Config {
	_ = godotenv.Load()

	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is empty")
	}

	return MustLoadByPath(configPath)
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("config reading error: " + err.Error())
	}

	return &cfg
}

// fetchConfigPath fetches config path from command line flag or environment variable.
// Priority: flag > env > default.
// Default value is empty string.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
