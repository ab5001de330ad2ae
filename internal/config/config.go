package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server ServerConfig `yaml:"server" validate:"required"`
	Logger LoggerConfig `yaml:"logger" validate:"required"`
	Gin    GinConfig    `yaml:"gin"    validate:"required"`
	API    APIConfig    `yaml:"api"    validate:"required"`
	View   ViewConfig   `yaml:"view"   validate:"required"`
	Probe  ProbeConfig  `yaml:"probe"  validate:"required"`
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
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

// APIConfig points the page controller at the activities API. By default
// that is this same process.
type APIConfig struct {
	BaseURL string        `yaml:"base_url" env:"API_BASE_URL" env-default:"http://localhost:8080" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout"  env:"API_TIMEOUT"  env-default:"0s"                    validate:"gte=0"`
}

type ViewConfig struct {
	MessageTTL  time.Duration `yaml:"message_ttl"  env:"MESSAGE_TTL"  env-default:"5s"  validate:"gt=0"`
	SessionIdle time.Duration `yaml:"session_idle" env:"SESSION_IDLE" env-default:"30m" validate:"gt=0"`
}

type ProbeConfig struct {
	Attempts int           `yaml:"attempts" env:"PROBE_ATTEMPTS" env-default:"5"     validate:"min=1"`
	Delay    time.Duration `yaml:"delay"    env:"PROBE_DELAY"    env-default:"200ms" validate:"gt=0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
