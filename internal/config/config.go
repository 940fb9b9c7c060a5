// Package config loads service configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Environment string `env:"ENV" envDefault:"development"`
	HTTP        struct {
		Port            int           `env:"HTTP_PORT" envDefault:"8080"`
		ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
		WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
		IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
		ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	}
	Logging struct {
		Level  string `env:"LOG_LEVEL" envDefault:"info"`
		Format string `env:"LOG_FORMAT" envDefault:"json"`
		Output string `env:"LOG_OUTPUT" envDefault:"stderr"`
	}
	Solver struct {
		// MaxIterations caps every solve the service runs; it is the only
		// bound on solver runtime.
		MaxIterations     int     `env:"SOLVER_MAX_ITERATIONS" envDefault:"100"`
		StepTolerance     float64 `env:"SOLVER_STEP_TOLERANCE" envDefault:"1e-9"`
		ResidualTolerance float64 `env:"SOLVER_RESIDUAL_TOLERANCE" envDefault:"1e-9"`
		// Window is the default bracket-scan window width when a request
		// does not supply one.
		Window float64 `env:"SOLVER_DEFAULT_WINDOW" envDefault:"0.1"`
	}
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
