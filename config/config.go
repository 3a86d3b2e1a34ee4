package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Gemini intent extraction.
	GeminiAPIKey          string `mapstructure:"GEMINI_API_KEY"`
	ExtractionTimeoutSecs int    `mapstructure:"EXTRACTION_TIMEOUT_SECS"`

	// OpenWeather forecast lookup.
	OpenWeatherAPIKey string  `mapstructure:"OPENWEATHER_API_KEY"`
	RestaurantLat     float64 `mapstructure:"RESTAURANT_LAT"`
	RestaurantLon     float64 `mapstructure:"RESTAURANT_LON"`
	RestaurantName    string  `mapstructure:"RESTAURANT_NAME"`

	// SMS notifications (AWS SNS).
	AWSRegion           string `mapstructure:"AWS_REGION"`
	FallbackPhoneNumber string `mapstructure:"FALLBACK_PHONE_NUMBER"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("EXTRACTION_TIMEOUT_SECS", 15)
	viper.SetDefault("OPENWEATHER_API_KEY", "")
	// The Grand Bistro, Chennai.
	viper.SetDefault("RESTAURANT_LAT", 13.0836939)
	viper.SetDefault("RESTAURANT_LON", 80.270186)
	viper.SetDefault("RESTAURANT_NAME", "The Grand Bistro")
	viper.SetDefault("AWS_REGION", "")
	viper.SetDefault("FALLBACK_PHONE_NUMBER", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
