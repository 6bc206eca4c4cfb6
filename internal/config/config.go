package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	StoreFile string
	NexusHost string
	GameSlug  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	return &Config{
		StoreFile: getEnv("STORE_FILE", "xlgChineseBack.json"),
		NexusHost: getEnv("NEXUS_HOST", "www.nexusmods.com"),
		GameSlug:  getEnv("GAME_SLUG", "stardewvalley"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
