package config

import (
	"flag"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabaseDSN string `env:"DATABASE_URI"`
	AuthSecret  string `env:"AUTH_SECRET"`

	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`
	ServerURL   string `env:"-"` // вычисляется из BaseURL и EnableHTTPS

	// Roster settings
	// Окно активности: игрок неактивен, если не был ни в одном из
	// последних AttendanceWindow рейдовых дней.
	AttendanceWindow int    `env:"ATTENDANCE_WINDOW"`
	ActivityCron     string `env:"ACTIVITY_CRON"` // пусто — пересчёт только после загрузки посещаемости
	DefaultClass     string `env:"DEFAULT_CLASS"` // класс для игроков из выгрузки без суффикса

	// Seed settings
	SeedDataDir string `env:"SEED_DATA_DIR"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base URL of the server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS")
	flag.IntVar(&cfg.AttendanceWindow, "attendance-window", cfg.AttendanceWindow, "сколько последних рейдовых дней образуют окно активности")
	flag.StringVar(&cfg.ActivityCron, "activity-cron", cfg.ActivityCron, "cron-расписание пересчёта активности (опционально)")
	flag.StringVar(&cfg.DefaultClass, "default-class", cfg.DefaultClass, "класс по умолчанию для новых игроков из выгрузки")
	flag.StringVar(&cfg.SeedDataDir, "seed-dir", cfg.SeedDataDir, "каталог с CSV для cmd/seed")

	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.AttendanceWindow <= 0 {
		cfg.AttendanceWindow = 6
	}
	if cfg.DefaultClass == "" {
		cfg.DefaultClass = "Warrior"
	}
	if cfg.SeedDataDir == "" {
		cfg.SeedDataDir = "seed_data"
	}

	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	return cfg
}
