package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB          int    `mapstructure:"REDIS_AUTH_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Appointment scheduling window.
	WorkStartHour       int `mapstructure:"WORK_START_HOUR"`
	WorkEndHour         int `mapstructure:"WORK_END_HOUR"`
	SlotDurationMinutes int `mapstructure:"DEFAULT_SLOT_DURATION_MINUTES"`

	// SMS reminders fire this many minutes before the appointment.
	ReminderLeadMinutes int `mapstructure:"REMINDER_LEAD_MINUTES"`

	// SMS gateway.
	SMSGatewayURL string `mapstructure:"SMS_GATEWAY_URL"`
	SMSGatewayKey string `mapstructure:"SMS_GATEWAY_KEY"`
	SMSSenderID   string `mapstructure:"SMS_SENDER_ID"`
	// IANA zone name for the date phrasing in patient SMS; empty means UTC.
	SMSDisplayTimezone string `mapstructure:"SMS_DISPLAY_TIMEZONE"`

	// Admin passkey gate.
	AdminPasskey        string `mapstructure:"ADMIN_PASSKEY"`
	AdminMaxAttempts    int    `mapstructure:"ADMIN_MAX_ATTEMPTS"`
	AdminLockoutMinutes int    `mapstructure:"ADMIN_LOCKOUT_MINUTES"`
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
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "careplus")
	viper.SetDefault("WORK_START_HOUR", 9)
	viper.SetDefault("WORK_END_HOUR", 17)
	viper.SetDefault("DEFAULT_SLOT_DURATION_MINUTES", 30)
	viper.SetDefault("REMINDER_LEAD_MINUTES", 60)
	viper.SetDefault("SMS_GATEWAY_URL", "")
	viper.SetDefault("SMS_GATEWAY_KEY", "")
	viper.SetDefault("SMS_SENDER_ID", "CarePlus")
	viper.SetDefault("SMS_DISPLAY_TIMEZONE", "")
	viper.SetDefault("ADMIN_PASSKEY", "")
	viper.SetDefault("ADMIN_MAX_ATTEMPTS", 5)
	viper.SetDefault("ADMIN_LOCKOUT_MINUTES", 5)

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
