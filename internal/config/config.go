package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	CacheBackendPostgres = "postgres"
	CacheBackendRedis    = "redis"

	// Valor de exemplo do .env que nunca é uma chave válida
	PlaceholderAPIKey = "dein-api-key-hier"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Redis     Redis     `mapstructure:",squash"`
	Digistore Digistore `mapstructure:",squash"`
	SalesSync SalesSync `mapstructure:",squash"`
	Cron      Cron      `mapstructure:",squash"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type Digistore struct {
	URL               string        `mapstructure:"digistore_url"`
	APIKey            string        `mapstructure:"digistore_api_key"`
	Language          string        `mapstructure:"digistore_language"`
	Timeout           time.Duration `mapstructure:"digistore_timeout"`
	RangeTimeout      time.Duration `mapstructure:"digistore_range_timeout"`
	MaxPages          int           `mapstructure:"digistore_max_pages"`
	PageSize          int           `mapstructure:"digistore_page_size"`
	RequestsPerSecond float64       `mapstructure:"digistore_requests_per_second"`
	Burst             int           `mapstructure:"digistore_burst"`
	// Pares "id:Grupo" usados como sinal secundário na classificação
	ProductGroupIDs []string `mapstructure:"digistore_product_group_ids"`
}

type App struct {
	LogLevel string         `mapstructure:"log_level"`
	Timezone string         `mapstructure:"app_timezone"`
	Location *time.Location `mapstructure:"-"`
	Cache    string         `mapstructure:"cache_backend"`
}

type SalesSync struct {
	CronSchedule  string        `mapstructure:"sales_sync_cron"`
	Enabled       bool          `mapstructure:"sales_sync_enabled"`
	RunOnStart    bool          `mapstructure:"sales_sync_run_on_start"`
	RetentionDays int           `mapstructure:"sales_sync_retention_days"`
	SeriesDays    int           `mapstructure:"sales_sync_series_days"`
	CycleTimeout  time.Duration `mapstructure:"sales_sync_cycle_timeout"`
	WaitTimeout   time.Duration `mapstructure:"sales_sync_wait_timeout"`

	// Prazo próprio da gravação no livro e no cache, contado após a consulta à API
	PersistTimeout time.Duration `mapstructure:"sales_sync_persist_timeout"`
}

type Cron struct {
	Token string `mapstructure:"cron_token"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 5) // Um ciclo de sync usa no máximo uma transação
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 2)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("CACHE_BACKEND", CacheBackendPostgres)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("DIGISTORE_URL", "https://www.digistore24.com/api/call")
	viper.SetDefault("DIGISTORE_API_KEY", "")
	viper.SetDefault("DIGISTORE_LANGUAGE", "de")
	viper.SetDefault("DIGISTORE_TIMEOUT", "10s")       // Chamadas simples
	viper.SetDefault("DIGISTORE_RANGE_TIMEOUT", "60s") // Consultas por período podem levar até 30s
	viper.SetDefault("DIGISTORE_MAX_PAGES", 10)        // Limite de páginas por listagem
	viper.SetDefault("DIGISTORE_PAGE_SIZE", 500)
	viper.SetDefault("DIGISTORE_REQUESTS_PER_SECOND", 2)
	viper.SetDefault("DIGISTORE_BURST", 4)
	viper.SetDefault("DIGISTORE_PRODUCT_GROUP_IDS", "")

	viper.SetDefault("SALES_SYNC_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("SALES_SYNC_ENABLED", true)
	viper.SetDefault("SALES_SYNC_RUN_ON_START", true)
	viper.SetDefault("SALES_SYNC_RETENTION_DAYS", 365) // Histórico mantido por 1 ano
	viper.SetDefault("SALES_SYNC_SERIES_DAYS", 14)     // Série diária exibida no gráfico
	viper.SetDefault("SALES_SYNC_CYCLE_TIMEOUT", "45s")
	viper.SetDefault("SALES_SYNC_PERSIST_TIMEOUT", "15s")
	viper.SetDefault("SALES_SYNC_WAIT_TIMEOUT", "15s")

	viper.SetDefault("CRON_TOKEN", "")

	viper.SetDefault("APP_TIMEZONE", "Europe/Berlin")
	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	if err := config.finalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// finalize calcula os campos derivados e valida os valores obrigatórios
func (c *Config) finalize() error {
	location, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return fmt.Errorf("fuso horário inválido %q: %w", c.App.Timezone, err)
	}
	c.App.Location = location

	c.App.Cache = strings.ToLower(strings.TrimSpace(c.App.Cache))
	if c.App.Cache != CacheBackendPostgres && c.App.Cache != CacheBackendRedis {
		return fmt.Errorf("CACHE_BACKEND inválido: %q (use postgres ou redis)", c.App.Cache)
	}

	if c.SalesSync.SeriesDays <= 0 {
		c.SalesSync.SeriesDays = 14
	}
	if c.SalesSync.RetentionDays < c.SalesSync.SeriesDays {
		c.SalesSync.RetentionDays = c.SalesSync.SeriesDays
	}
	if c.Digistore.MaxPages <= 0 {
		c.Digistore.MaxPages = 1
	}

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	return nil
}

// HasAPIKey informa se a chave da Digistore24 foi configurada
func (d Digistore) HasAPIKey() bool {
	key := strings.TrimSpace(d.APIKey)
	return key != "" && key != PlaceholderAPIKey
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
