package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	ServerPort         string
	RedisAddr          string
	RedisPassword      string
	DictionaryURL      string
	DictionaryCacheTTL string
	InferenceURL       string
	InferenceAPIKey    string
	EntailmentModel    string
	EmbeddingModel     string
	ChatAPIKey         string
	ChatAPIURL         string
	ChatModel          string
}

func Load() *Config {
	// .env is optional; deployments usually set the environment directly.
	_ = godotenv.Load()

	return &Config{
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             getEnv("DB_USER", "postgres"),
		DBPassword:         getEnv("DB_PASSWORD", "postgres"),
		DBName:             getEnv("DB_NAME", "categoriesgame"),
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		DictionaryURL:      getEnv("DICTIONARY_URL", "https://api.dictionaryapi.dev/api/v2/entries/en"),
		DictionaryCacheTTL: getEnv("DICTIONARY_CACHE_TTL", "86400"),
		InferenceURL:       getEnv("INFERENCE_URL", "http://localhost:8686/v1"),
		InferenceAPIKey:    getEnv("INFERENCE_API_KEY", ""),
		EntailmentModel:    getEnv("ENTAILMENT_MODEL", "smallentailment"),
		EmbeddingModel:     getEnv("EMBEDDING_MODEL", "minilml6v2"),
		ChatAPIKey:         getEnv("CHAT_API_KEY", ""),
		ChatAPIURL:         getEnv("CHAT_API_URL", "https://api.openai.com/v1"),
		ChatModel:          getEnv("CHAT_MODEL", "gpt-4o-mini"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
