package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"   validate:"required"`
	Logger   LoggerConfig   `yaml:"logger"   validate:"required"`
	Gin      GinConfig      `yaml:"gin"      validate:"required"`
	Telegram TelegramConfig `yaml:"telegram" validate:"required"`
	Booking  BookingConfig  `yaml:"booking"  validate:"required"`
	CORS     CORSConfig     `yaml:"cors"     validate:"required"`
	Dispatch DispatchConfig `yaml:"dispatch" validate:"required"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"release" validate:"required,oneof=debug release test"`
}

type TelegramConfig struct {
	BotToken    string        `yaml:"bot_token"    env:"TELEGRAM_BOT_TOKEN"    validate:"required"`
	ChatIDsRaw  string        `yaml:"chat_ids"     env:"TELEGRAM_CHAT_IDS"     validate:"required"`
	APIEndpoint string        `yaml:"api_endpoint" env:"TELEGRAM_API_ENDPOINT" env-default:"https://api.telegram.org/bot%s/%s"`
	SendTimeout time.Duration `yaml:"send_timeout" env:"TELEGRAM_SEND_TIMEOUT" env-default:"10s" validate:"gt=0"`
}

// ChatIDs разбирает список получателей вида "123,-100456".
func (t TelegramConfig) ChatIDs() ([]int64, error) {
	raw := strings.TrimSpace(t.ChatIDsRaw)
	if raw == "" {
		return nil, errors.New("TELEGRAM_CHAT_IDS is empty")
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse chat id %q: %w", p, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

type BookingConfig struct {
	Timezone string `yaml:"timezone" env:"BOOKING_TIMEZONE" env-default:"Local" validate:"required"`
}

// Location возвращает часовой пояс, по которому считается "сегодня".
func (b BookingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", b.Timezone, err)
	}
	return loc, nil
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins" env:"CORS_ALLOW_ORIGINS" env-separator:"," env-default:"https://paraplangagra.ru,https://paraplangagra.pages.dev,https://www.paraplangagra.ru" validate:"required,min=1"`
}

type DispatchConfig struct {
	DrainTimeout time.Duration `yaml:"drain_timeout" env:"DISPATCH_DRAIN_TIMEOUT" env-default:"15s" validate:"gt=0"`
}

// Validate проверяет то, что нельзя выразить тегами: токен и список чатов
// обязательны, а часовой пояс должен существовать.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Telegram.BotToken) == "" {
		return errors.New("TELEGRAM_BOT_TOKEN is not set")
	}
	if _, err := c.Telegram.ChatIDs(); err != nil {
		return fmt.Errorf("telegram chat ids: %w", err)
	}
	if _, err := c.Booking.Location(); err != nil {
		return err
	}
	if len(c.CORS.AllowOrigins) == 0 {
		return errors.New("CORS_ALLOW_ORIGINS is empty")
	}
	for _, o := range c.CORS.AllowOrigins {
		if !strings.HasPrefix(o, "https://") && !strings.HasPrefix(o, "http://") {
			return fmt.Errorf("cors origin %q must start with http:// or https://", o)
		}
	}
	return nil
}

// Load читает конфиг из окружения. Если задан CONFIG_PATH, сначала читается
// файл, переменные окружения поверх него.
func Load() (*Config, error) {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenvport.LoadPath(path, &cfg); err != nil {
			return nil, err
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read env: %w", err)
		}
		if err := validator.New().Struct(&cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", cleanenvport.ErrConfigValidation, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}
