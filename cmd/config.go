package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"gestion/internal/adapters/out/mail"
	"gestion/internal/adapters/out/minio"
	"gestion/internal/adapters/out/postgres"
	"gestion/internal/adapters/out/redis"
	"gestion/internal/adapters/out/webpush"
	"gestion/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort        string        `mapstructure:"HTTP_PORT"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	AppBaseURL      string        `mapstructure:"APP_BASE_URL"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSslMode  string `mapstructure:"DB_SSLMODE"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	MinioEndpoint  string `mapstructure:"MINIO_ENDPOINT"`
	MinioAccessKey string `mapstructure:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `mapstructure:"MINIO_SECRET_KEY"`
	MinioBucket    string `mapstructure:"MINIO_BUCKET"`
	MinioUseSSL    bool   `mapstructure:"MINIO_USE_SSL"`
	MinioPublicURL string `mapstructure:"MINIO_PUBLIC_URL"`

	JWTSecret          string `mapstructure:"JWT_SECRET"`
	CollaboratorEmails string `mapstructure:"COLLABORATOR_EMAILS"`

	SMTPHost         string `mapstructure:"SMTP_HOST"`
	SMTPPort         int    `mapstructure:"SMTP_PORT"`
	SMTPUsername     string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword     string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom         string `mapstructure:"SMTP_FROM"`
	NotifyRecipients string `mapstructure:"NOTIFY_RECIPIENTS"`

	VAPIDPublicKey  string `mapstructure:"VAPID_PUBLIC_KEY"`
	VAPIDPrivateKey string `mapstructure:"VAPID_PRIVATE_KEY"`
	VAPIDSubscriber string `mapstructure:"VAPID_SUBSCRIBER"`
}

// defaults also registers every key with viper, so that AutomaticEnv picks
// each of them up on Unmarshal.
var defaults = map[string]any{
	"HTTP_PORT":           "8080",
	"SHUTDOWN_TIMEOUT":    "15s",
	"LOG_LEVEL":           "info",
	"APP_BASE_URL":        "http://localhost:8080",
	"DB_HOST":             "localhost",
	"DB_PORT":             "5432",
	"DB_USER":             "postgres",
	"DB_PASSWORD":         "",
	"DB_NAME":             "gestion",
	"DB_SSLMODE":          "disable",
	"REDIS_ADDR":          "localhost:6379",
	"REDIS_PASSWORD":      "",
	"REDIS_DB":            0,
	"MINIO_ENDPOINT":      "localhost:9000",
	"MINIO_ACCESS_KEY":    "",
	"MINIO_SECRET_KEY":    "",
	"MINIO_BUCKET":        "anexos",
	"MINIO_USE_SSL":       false,
	"MINIO_PUBLIC_URL":    "",
	"JWT_SECRET":          "",
	"COLLABORATOR_EMAILS": "",
	"SMTP_HOST":           "",
	"SMTP_PORT":           587,
	"SMTP_USERNAME":       "",
	"SMTP_PASSWORD":       "",
	"SMTP_FROM":           "",
	"NOTIFY_RECIPIENTS":   "",
	"VAPID_PUBLIC_KEY":    "",
	"VAPID_PRIVATE_KEY":   "",
	"VAPID_SUBSCRIBER":    "",
}

// LoadConfig reads, in increasing priority: defaults, config.yaml in dir, a
// .env file in dir and the process environment. Missing files are ignored.
func LoadConfig(dir string) (Config, error) {
	if err := godotenv.Load(dir + "/.env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Validate checks what the server cannot start without.
func (c Config) Validate() error {
	var err error
	if c.HTTPPort == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("HTTP_PORT"))
	}
	if c.DBHost == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("DB_HOST"))
	}
	if c.DBName == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("DB_NAME"))
	}
	if len(c.JWTSecret) < 32 {
		err = errors.Join(err, errs.NewValueIsInvalidError("JWT_SECRET"))
	}
	if c.ShutdownTimeout <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidError("SHUTDOWN_TIMEOUT"))
	}
	return err
}

func (c Config) Database() postgres.ConnectionConfig {
	return postgres.ConnectionConfig{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

func (c Config) Redis() redis.Config {
	return redis.Config{Addr: c.RedisAddr, Password: c.RedisPassword, DB: c.RedisDB}
}

func (c Config) Minio() minio.Config {
	return minio.Config{
		Endpoint:  c.MinioEndpoint,
		AccessKey: c.MinioAccessKey,
		SecretKey: c.MinioSecretKey,
		Bucket:    c.MinioBucket,
		UseSSL:    c.MinioUseSSL,
		PublicURL: c.MinioPublicURL,
	}
}

func (c Config) Mail() mail.Config {
	return mail.Config{
		Host:       c.SMTPHost,
		Port:       c.SMTPPort,
		Username:   c.SMTPUsername,
		Password:   c.SMTPPassword,
		From:       c.SMTPFrom,
		Recipients: splitList(c.NotifyRecipients),
	}
}

func (c Config) WebPush() webpush.Config {
	return webpush.Config{
		PublicKey:  c.VAPIDPublicKey,
		PrivateKey: c.VAPIDPrivateKey,
		Subscriber: c.VAPIDSubscriber,
	}
}

func (c Config) Collaborators() []string {
	return splitList(c.CollaboratorEmails)
}

// splitList parses a comma separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
