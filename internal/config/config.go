package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	AdPlatform          AdPlatform          `mapstructure:",squash"`
	NegativeKeywordSync NegativeKeywordSync `mapstructure:",squash"`
	Dashboard           Dashboard           `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type AdPlatform struct {
	URL            string `mapstructure:"ad_platform_url"`
	CustomerID     string `mapstructure:"ad_platform_customer_id"`
	AccessToken    string `mapstructure:"ad_platform_access_token"`
	TimeoutSeconds int    `mapstructure:"ad_platform_timeout_seconds"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type NegativeKeywordSync struct {
	CronSchedule string `mapstructure:"negative_keyword_sync_cron"`
	Enabled      bool   `mapstructure:"negative_keyword_sync_enabled"`
}

type Dashboard struct {
	CacheTTLSeconds int `mapstructure:"dashboard_cache_ttl_seconds"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/negative_keywords")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AD_PLATFORM_URL", "https://ads.example.com/api/v2")
	viper.SetDefault("AD_PLATFORM_CUSTOMER_ID", "your_customer_id")
	viper.SetDefault("AD_PLATFORM_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("AD_PLATFORM_TIMEOUT_SECONDS", 30)

	// Defaults para o worker de provisionamento de palavras-chave negativas
	viper.SetDefault("NEGATIVE_KEYWORD_SYNC_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("NEGATIVE_KEYWORD_SYNC_ENABLED", true)

	viper.SetDefault("DASHBOARD_CACHE_TTL_SECONDS", 300)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
