package config

import "os"

type Config struct {
	Addr      string
	StaticDir string
	LogLevel  string
}

func Load() Config {
	return Config{
		Addr:      ":" + getEnv("PORT", "8080"),
		StaticDir: getEnv("STATIC_DIR", "web"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
