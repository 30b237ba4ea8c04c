package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	DbDsn    string
	TgToken  string
	TgChatID string
	OutDir   string
}

var (
	config *Config
	once   sync.Once
)

// GetConfig возвращает singleton экземпляр конфигурации
func GetConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file, using environment")
		}

		config = &Config{
			DbDsn:    os.Getenv("DB_DSN"),
			TgToken:  os.Getenv("TG_TOKEN"),
			TgChatID: os.Getenv("TG_CHAT_ID"),
			OutDir:   os.Getenv("OUT_DIR"),
		}
		if config.OutDir == "" {
			config.OutDir = "."
		}
	})
	return config
}
