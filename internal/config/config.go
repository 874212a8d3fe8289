// Package config предоставляет структуры и функцию для загрузки
// конфигурации сервиса.
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — общая структура для хранения настроек.
type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	Mongo      `yaml:"mongo"`
	HTTPServer `yaml:"http_server"`
}

// Mongo — настройки подключения к MongoDB.
type Mongo struct {
	URI            string        `yaml:"uri" env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	Database       string        `yaml:"database" env:"MONGO_DATABASE" env-default:"bcrypt"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env-default:"10s"`
}

// HTTPServer — настройки HTTP-сервера.
type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":4000"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// MustLoad загружает конфиг из файла, указанного в CONFIG_PATH,
// и завершает процесс при любой ошибке загрузки.
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
