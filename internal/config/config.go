package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/types"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig дневная сетка приёма и окно доступности.
// В системе ровно одна сетка - та, что описана здесь.
type ScheduleConfig struct {
	DayStart            string `toml:"day_start"`
	DayEnd              string `toml:"day_end"`
	SlotDurationMinutes int    `toml:"slot_duration_minutes"`
	BookingWindowDays   int    `toml:"booking_window_days"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if _, err := cfg.DomainSchedule(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Schedule.DayStart == "" {
		c.Schedule.DayStart = domain.DefaultDayStart
	}
	if c.Schedule.DayEnd == "" {
		c.Schedule.DayEnd = domain.DefaultDayEnd
	}
	if c.Schedule.SlotDurationMinutes == 0 {
		c.Schedule.SlotDurationMinutes = domain.DefaultSlotDurationMinutes
	}
	if c.Schedule.BookingWindowDays == 0 {
		c.Schedule.BookingWindowDays = domain.DefaultBookingWindowDays
	}
}

// DomainSchedule конвертирует секцию [schedule] в доменную модель сетки
func (c *Config) DomainSchedule() (domain.Schedule, error) {
	dayStart, err := types.NewTimeStringFromString(c.Schedule.DayStart)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("config: invalid schedule.day_start: %w", err)
	}

	dayEnd, err := types.NewTimeStringFromString(c.Schedule.DayEnd)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("config: invalid schedule.day_end: %w", err)
	}

	schedule := domain.Schedule{
		DayStart:            dayStart,
		DayEnd:              dayEnd,
		SlotDurationMinutes: c.Schedule.SlotDurationMinutes,
		BookingWindowDays:   c.Schedule.BookingWindowDays,
	}

	if err := schedule.Validate(); err != nil {
		return domain.Schedule{}, fmt.Errorf("config: invalid [schedule] section: %w", err)
	}

	return schedule, nil
}
