package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/ouleymatou/HMS-ReservationService/pkg/types"
)

var (
	// ErrLoadConfig возвращается при ошибке чтения файла конфигурации
	ErrLoadConfig = errors.New("config: failed to load config file")
	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Hotel    HotelConfig    `toml:"hotel"`
}

// ServerConfig настройки HTTP сервера
// Таймауты заданы в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	DBName       string `toml:"dbname"`
	SSLMode      string `toml:"sslmode"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
	// ConnMaxLifetime время жизни соединения в минутах
	ConnMaxLifetime int `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения для драйвера lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки экспорта метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// HotelConfig доменные настройки отеля
type HotelConfig struct {
	// CheckInTime час заезда (HH:MM), подставляется при полуночном времени прибытия
	CheckInTime types.TimeString `toml:"check_in_time"`
	// CheckOutTime час выезда (HH:MM), подставляется при полуночном времени отъезда
	CheckOutTime types.TimeString `toml:"check_out_time"`
	// RoomNumberPrefix префикс номеров комнат (например, "CH")
	RoomNumberPrefix string `toml:"room_number_prefix"`
}

// Load читает конфигурацию из TOML файла и валидирует ее
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "reservation-service"
	}
	if c.Hotel.CheckInTime.IsZero() {
		c.Hotel.CheckInTime = "14:00"
	}
	if c.Hotel.CheckOutTime.IsZero() {
		c.Hotel.CheckOutTime = "12:00"
	}
	if c.Hotel.RoomNumberPrefix == "" {
		c.Hotel.RoomNumberPrefix = "CH"
	}
}

func (c *Config) validate() error {
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database host and dbname are required", ErrInvalidConfig)
	}
	if err := c.Hotel.CheckInTime.Validate(); err != nil {
		return fmt.Errorf("%w: check_in_time: %v", ErrInvalidConfig, err)
	}
	if err := c.Hotel.CheckOutTime.Validate(); err != nil {
		return fmt.Errorf("%w: check_out_time: %v", ErrInvalidConfig, err)
	}
	return nil
}
