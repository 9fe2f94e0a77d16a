package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config reúne tudo que o processo lê de ambiente.
type Config struct {
	Port        string
	StoreDriver string // file | sqlite | memory
	DataDir     string
	SQLitePath  string
	SupabaseDSN string // vazio = sync em nuvem desligado
}

// Load carrega .env (se existir) e monta a Config a partir do ambiente.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:        getEnv("PORT", "8080"),
		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", "file")),
		DataDir:     getEnv("DATA_DIR", "data"),
		SQLitePath:  getEnv("SQLITE_PATH", "data/rebanho.db"),
		SupabaseDSN: os.Getenv("SUPABASE_DSN"),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
