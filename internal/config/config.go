package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Medibill      Medibill      `mapstructure:",squash"`
	ReportFetch   ReportFetch   `mapstructure:",squash"`
	ReportRefresh ReportRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Medibill holds the upstream billing API location and the service
// credentials. Email and password have no defaults on purpose: they must
// come from the environment and are never hard-coded in a build.
type Medibill struct {
	BaseURL  string `mapstructure:"medibill_base_url"`
	Email    string `mapstructure:"medibill_email"`
	Password string `mapstructure:"medibill_password"`
}

// ReportFetch controls the per-doctor metric fan-out.
type ReportFetch struct {
	// MaxConcurrentRequests caps concurrent upstream report requests per
	// metric batch. 0 means unbounded.
	MaxConcurrentRequests int `mapstructure:"report_fetch_max_concurrent"`
}

// ReportRefresh configures the background snapshot scheduler.
type ReportRefresh struct {
	CronSchedule string `mapstructure:"report_refresh_cron"`
	Enabled      bool   `mapstructure:"report_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("MEDIBILL_BASE_URL", "https://api.medibill.co.za/api/v1")

	// Empty defaults register the credential keys with viper; without a
	// registered key, Unmarshal never consults AutomaticEnv and values
	// set only in the process environment would be dropped
	viper.SetDefault("MEDIBILL_EMAIL", "")
	viper.SetDefault("MEDIBILL_PASSWORD", "")

	viper.SetDefault("REPORT_FETCH_MAX_CONCURRENT", 8)

	viper.SetDefault("REPORT_REFRESH_CRON", "0 6 * * *") // Every day at 6am
	viper.SetDefault("REPORT_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Load the .env file first using godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Reading .env through viper is optional since godotenv already ran
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// HasCredentials reports whether both MediBill credentials are configured
func (c *Config) HasCredentials() bool {
	return c.Medibill.Email != "" && c.Medibill.Password != ""
}

// loadEnvFile loads the .env file from the most likely locations
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine the current directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env file loaded from: ", location)
			return
		}
	}

	logrus.Info("no .env file found, relying on process environment")
}
