package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Ridership   Dataset     `mapstructure:"-"`
	CaseCount   Dataset     `mapstructure:"-"`
	Socrata     Socrata     `mapstructure:",squash"`
	Cache       Cache       `mapstructure:",squash"`
	CacheWarmer CacheWarmer `mapstructure:",squash"`
	Cors        Cors        `mapstructure:",squash"`
	Sources     Sources     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Sources guarda as chaves brutas de cada dataset antes da montagem de Dataset
type Sources struct {
	RidershipURL   string `mapstructure:"ridership_url"`
	RidershipOrder string `mapstructure:"ridership_order"`
	CaseCountURL   string `mapstructure:"case_count_url"`
	CaseCountOrder string `mapstructure:"case_count_order"`
}

type Dataset struct {
	URL   string
	Order string
}

type Socrata struct {
	PageSize int           `mapstructure:"socrata_page_size"`
	AppToken string        `mapstructure:"socrata_app_token"`
	Timeout  time.Duration `mapstructure:"socrata_timeout"`
}

type Cache struct {
	TTL  time.Duration `mapstructure:"cache_ttl"`
	Size int           `mapstructure:"cache_size"`
}

type CacheWarmer struct {
	CronSchedule string `mapstructure:"cache_warmer_cron"`
	Enabled      bool   `mapstructure:"cache_warmer_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("RIDERSHIP_URL", "https://data.ny.gov/resource/vxuj-8kew.json")
	viper.SetDefault("RIDERSHIP_ORDER", "date")
	viper.SetDefault("CASE_COUNT_URL", "https://data.cityofnewyork.us/resource/rc75-m7u3.json")
	viper.SetDefault("CASE_COUNT_ORDER", "date_of_interest")

	viper.SetDefault("SOCRATA_PAGE_SIZE", 50000)
	viper.SetDefault("SOCRATA_APP_TOKEN", "")
	viper.SetDefault("SOCRATA_TIMEOUT", "0s") // 0 = sem timeout, igual ao cliente padrão

	viper.SetDefault("CACHE_TTL", "3600s")
	viper.SetDefault("CACHE_SIZE", 32)

	viper.SetDefault("CACHE_WARMER_CRON", "0 * * * *") // A cada hora cheia
	viper.SetDefault("CACHE_WARMER_ENABLED", false)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis de ambiente e defaults (viper não conseguiu ler .env): ", err)
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

	config.Ridership = Dataset{URL: config.Sources.RidershipURL, Order: config.Sources.RidershipOrder}
	config.CaseCount = Dataset{URL: config.Sources.CaseCountURL, Order: config.Sources.CaseCountOrder}

	if config.Socrata.PageSize <= 0 {
		logrus.WithField("page_size", config.Socrata.PageSize).Warn("config: invalid socrata page size, using 50000")
		config.Socrata.PageSize = 50000
	}

	if config.Cache.TTL <= 0 {
		logrus.WithField("cache_ttl", config.Cache.TTL).Warn("config: invalid cache ttl, using 1h")
		config.Cache.TTL = time.Hour
	}

	return config, nil
}

// loadEnvFile tenta carregar um .env nas localizações mais comuns
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, seguindo com variáveis de ambiente")
}
