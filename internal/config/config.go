package config

import "os"

// AppConfig holds non-database service settings
type AppConfig struct {
	ServerPort string
	SeedDir    string
}

// Load reads application settings from environment variables, falling back
// to defaults where a value is not set.
func Load() *AppConfig {
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}
	seedDir := os.Getenv("SEED_DIR")
	if seedDir == "" {
		seedDir = "data"
	}
	return &AppConfig{ServerPort: port, SeedDir: seedDir}
}
