// Package config предоставляет структуры и функцию для парсинга и загрузки конфига.
//
// Конфигурация читается один раз на старте и передаётся сервисам явно,
// скрытого глобального состояния нет.
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек.
type Config struct {
	Env                     string `yaml:"env" env:"ENV" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string" env:"DATABASE_URL"`
	MigrationsPath          string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"./migrations"`
	StaticDir               string `yaml:"static_dir" env:"STATIC_DIR" env-default:"./public"`
	AppURL                  string `yaml:"app_url" env:"APP_URL" env-default:"http://localhost:3000"`
	RedisConnection         `yaml:"redis_connection"`
	HTTPServer              `yaml:"http_server"`
	JWTToken                `yaml:"jwttoken"`
	Verification            `yaml:"verification"`
	SMTP                    `yaml:"smtp"`
	TextGen                 `yaml:"textgen"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:"0.0.0.0:3000"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection структура для настройки подключения к redis.
type RedisConnection struct {
	Addr        string        `yaml:"addr" env:"REDIS_ADDR"`
	Password    string        `yaml:"password" env:"REDIS_PASSWORD"`
	User        string        `yaml:"user"`
	DB          int           `yaml:"db"`
	MaxRetries  int           `yaml:"max_retries" env-default:"3"`
	DialTimeout time.Duration `yaml:"dial_timeout" env-default:"5s"`
	Timeout     time.Duration `yaml:"timeout" env-default:"3s"`
}

// JWTToken структура для работы с сессионными jwt-токенами.
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET"`
	SessionTTL   time.Duration `yaml:"session_ttl" env-default:"168h"` // 7 дней
}

// Verification параметры токенов подтверждения email.
type Verification struct {
	TokenTTL time.Duration `yaml:"token_ttl" env-default:"24h"`
}

// SMTP структура для настройки отправки почты.
type SMTP struct {
	SMTPHost    string        `yaml:"smtp_host" env:"SMTP_HOST"`
	SMTPPort    string        `yaml:"smtp_port" env:"SMTP_PORT" env-default:"587"`
	SMTPUser    string        `yaml:"smtp_user" env:"SMTP_USER"`
	SMTPPass    string        `yaml:"smtp_pass" env:"SMTP_PASS"`
	DialTimeout time.Duration `yaml:"smtp_dial_timeout" env-default:"10s"`
}

// TextGen параметры внешнего сервиса генерации текста.
type TextGen struct {
	APIKey      string        `yaml:"api_key" env:"OPENAI_API_KEY"`
	BaseURL     string        `yaml:"base_url" env-default:"https://api.openai.com/v1"`
	Model       string        `yaml:"model" env-default:"gpt-4o-mini"`
	Timeout     time.Duration `yaml:"timeout" env-default:"15s"`
	MaxTokens   int           `yaml:"max_tokens" env-default:"500"`
	Temperature float64       `yaml:"temperature" env-default:"0.8"`
}

// MustLoad функция для загрузки конфига; путь к yaml берётся из CONFIG_PATH.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
