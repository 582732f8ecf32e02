// Package config lee la configuración del proceso desde variables de entorno.
// Se lee una sola vez al arrancar.
package config

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"pet-demo-api/internal/platform/logger"
)

type Config struct {
	Host  string
	Port  int
	Debug bool

	LogLevel  logger.Level
	LogFormat logger.Format
	AppName   string

	// DBDSN vacío => store en memoria.
	DBDSN string

	LoadDemoData    bool
	ShutdownTimeout time.Duration
}

// Addr es host:port para http.Server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Logger arma las opciones del logger. DEBUG=true fuerza nivel debug.
func (c Config) Logger() logger.Options {
	lvl := c.LogLevel
	if c.Debug {
		lvl = logger.Debug
	}
	return logger.Options{Level: lvl, Format: c.LogFormat, App: c.AppName}
}

func defaults(v *viper.Viper) {
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", 5000)
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_NAME", "pet-demo-api")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("LOAD_DEMO_DATA", false)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
}

// Load lee HOST, PORT, DEBUG, LOG_LEVEL, LOG_FORMAT, APP_NAME, DB_DSN,
// LOAD_DEMO_DATA y SHUTDOWN_TIMEOUT del entorno.
func Load() Config {
	v := viper.New()
	defaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) Config {
	port := v.GetInt("PORT")
	if port <= 0 || port > 65535 {
		port = 5000
	}

	timeout := v.GetDuration("SHUTDOWN_TIMEOUT")
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	host := strings.TrimSpace(v.GetString("HOST"))
	if host == "" {
		host = "0.0.0.0"
	}

	return Config{
		Host:            host,
		Port:            port,
		Debug:           v.GetBool("DEBUG"),
		LogLevel:        logger.ParseLevel(v.GetString("LOG_LEVEL")),
		LogFormat:       logger.ParseFormat(v.GetString("LOG_FORMAT")),
		AppName:         strings.TrimSpace(v.GetString("APP_NAME")),
		DBDSN:           strings.TrimSpace(v.GetString("DB_DSN")),
		LoadDemoData:    v.GetBool("LOAD_DEMO_DATA"),
		ShutdownTimeout: timeout,
	}
}
