package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// EnvPrefix префикс переменных окружения, переопределяющих значения из файла
// Например: COURTBOOKING_DATABASE_PASSWORD, COURTBOOKING_RABBITMQ_URL
const EnvPrefix = "COURTBOOKING"

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server" envconfig:"server"`
	Database     DatabaseConfig     `toml:"database" envconfig:"database"`
	Logs         LogsConfig         `toml:"logs" envconfig:"logs"`
	Metrics      MetricsConfig      `toml:"metrics" envconfig:"metrics"`
	VenueService VenueServiceConfig `toml:"venue_service" envconfig:"venue_service"`
	RabbitMQ     RabbitMQConfig     `toml:"rabbitmq" envconfig:"rabbitmq"`
	Scheduler    SchedulerConfig    `toml:"scheduler" envconfig:"scheduler"`
	Policy       PolicyConfig       `toml:"policy" envconfig:"policy"`
}

type ServerConfig struct {
	HTTPPort        int    `toml:"http_port" envconfig:"http_port"`
	ReadTimeout     int    `toml:"read_timeout" envconfig:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout" envconfig:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout" envconfig:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout" envconfig:"shutdown_timeout"`
	Timezone        string `toml:"timezone" envconfig:"timezone"` // Часовой пояс площадок (IANA)
}

type DatabaseConfig struct {
	Host            string `toml:"host" envconfig:"host"`
	Port            int    `toml:"port" envconfig:"port"`
	User            string `toml:"user" envconfig:"user"`
	Password        string `toml:"password" envconfig:"password"`
	DBName          string `toml:"dbname" envconfig:"dbname"`
	SSLMode         string `toml:"sslmode" envconfig:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns" envconfig:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns" envconfig:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" envconfig:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к Postgres
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file" envconfig:"file"`
	Level string `toml:"level" envconfig:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" envconfig:"enabled"`
	Path        string `toml:"path" envconfig:"path"`
	ServiceName string `toml:"service_name" envconfig:"service_name"`
}

type VenueServiceConfig struct {
	URL     string `toml:"url" envconfig:"url"`
	Timeout int    `toml:"timeout" envconfig:"timeout"` // секунды
}

type RabbitMQConfig struct {
	Enabled  bool   `toml:"enabled" envconfig:"enabled"`
	URL      string `toml:"url" envconfig:"url"`
	Exchange string `toml:"exchange" envconfig:"exchange"`
	Timeout  int    `toml:"timeout" envconfig:"timeout"` // секунды на публикацию
}

type SchedulerConfig struct {
	Enabled              bool   `toml:"enabled" envconfig:"enabled"`
	CompleteBookingsCron string `toml:"complete_bookings_cron" envconfig:"complete_bookings_cron"`
}

// PolicyConfig глобальная политика бронирований
// Пропущенные значения берутся из domain.DefaultPolicy()
type PolicyConfig struct {
	MinLeadHours        *int     `toml:"min_lead_hours" envconfig:"min_lead_hours"`
	MaxLeadDays         *int     `toml:"max_lead_days" envconfig:"max_lead_days"`
	MinDurationMinutes  *int     `toml:"min_duration_minutes" envconfig:"min_duration_minutes"`
	MaxDurationMinutes  *int     `toml:"max_duration_minutes" envconfig:"max_duration_minutes"`
	SlotDurationMinutes *int     `toml:"slot_duration_minutes" envconfig:"slot_duration_minutes"`
	CommissionRate      *float64 `toml:"commission_rate" envconfig:"commission_rate"`
	FullRefundHours     *float64 `toml:"full_refund_hours" envconfig:"full_refund_hours"`
	PartialRefundHours  *float64 `toml:"partial_refund_hours" envconfig:"partial_refund_hours"`
	PartialRefundRate   *float64 `toml:"partial_refund_rate" envconfig:"partial_refund_rate"`
	RoundingMode        string   `toml:"rounding_mode" envconfig:"rounding_mode"`
}

// ToPolicy собирает политику домена поверх значений по умолчанию
func (p PolicyConfig) ToPolicy() (domain.Policy, error) {
	override := &domain.PolicyOverride{
		MinLeadHours:        p.MinLeadHours,
		MaxLeadDays:         p.MaxLeadDays,
		MinDurationMinutes:  p.MinDurationMinutes,
		MaxDurationMinutes:  p.MaxDurationMinutes,
		SlotDurationMinutes: p.SlotDurationMinutes,
		CommissionRate:      p.CommissionRate,
		FullRefundHours:     p.FullRefundHours,
		PartialRefundHours:  p.PartialRefundHours,
		PartialRefundRate:   p.PartialRefundRate,
	}

	policy := override.Apply(domain.DefaultPolicy())

	rounding, err := domain.ParseRoundingMode(p.RoundingMode)
	if err != nil {
		return domain.Policy{}, err
	}
	policy.Rounding = rounding

	if err := policy.Validate(); err != nil {
		return domain.Policy{}, err
	}
	return policy, nil
}

// Location возвращает часовой пояс площадок
func (s ServerConfig) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid server timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}

// Load читает конфигурацию из TOML файла и применяет переменные окружения
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid server http_port: %d", c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("database host and dbname are required")
	}
	if c.VenueService.URL == "" {
		return fmt.Errorf("venue_service url is required")
	}
	if c.RabbitMQ.Enabled && (c.RabbitMQ.URL == "" || c.RabbitMQ.Exchange == "") {
		return fmt.Errorf("rabbitmq url and exchange are required when rabbitmq is enabled")
	}
	if _, err := c.Server.Location(); err != nil {
		return err
	}
	if _, err := c.Policy.ToPolicy(); err != nil {
		return fmt.Errorf("invalid policy section: %w", err)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			Timezone:        "Asia/Tokyo",
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			File:  "logs/service.log",
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "court_booking_service",
		},
		VenueService: VenueServiceConfig{
			Timeout: 5,
		},
		RabbitMQ: RabbitMQConfig{
			Exchange: "court_booking.events",
			Timeout:  5,
		},
		Scheduler: SchedulerConfig{
			Enabled:              true,
			CompleteBookingsCron: "@every 5m",
		},
	}
}
