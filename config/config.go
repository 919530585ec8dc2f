package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Extraction   Extraction
	GeminiApiKey string
	UploadDir    string
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Extraction selects the text-extraction provider and bounds its
// calls. TimeoutSeconds guards the only network-bound slow operation
// in the system.
type Extraction struct {
	Provider       string
	TimeoutSeconds int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("EXTRACTION_PROVIDER", "gemini")
	viper.SetDefault("EXTRACTION_TIMEOUT_SECONDS", 30)
	viper.SetDefault("UPLOAD_DIR", "uploads")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.Extraction.Provider = viper.GetString("EXTRACTION_PROVIDER")
	config.Extraction.TimeoutSeconds = viper.GetInt("EXTRACTION_TIMEOUT_SECONDS")
	config.UploadDir = viper.GetString("UPLOAD_DIR")

	log.Info().
		Str("port", config.Server.Port).
		Str("extraction_provider", config.Extraction.Provider).
		Msg("Config loaded")
	return &config, nil
}
