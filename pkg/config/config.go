package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/limaJavier/cycle-timetabling/pkg/sat"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// EnvPrefix is prepended to every key when read from the environment, e.g. TIMETABLE_SOLVER_BACKEND
	EnvPrefix = "TIMETABLE"

	DefaultTimeLimit = time.Minute
)

type Config struct {
	Env    string
	Log    LogConfig
	Solver SolverConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// SolverConfig selects the backend the timetabler runs on
type SolverConfig struct {
	Backend    string
	Executable string // Path to the binary of external backends; empty means the backend name looked up in PATH
	TimeLimit  time.Duration // Zero lets the solver run until it decides
	Workers    int
}

// Load reads settings from the environment (a .env file in the working directory included) and, when path is not empty, from
// that file. A missing file is not an error, a time limit that is not a Go duration is
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	timeLimit, err := time.ParseDuration(v.GetString("SOLVER_TIME_LIMIT"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s_SOLVER_TIME_LIMIT: %w", EnvPrefix, err)
	} else if timeLimit < 0 {
		return nil, fmt.Errorf("invalid %s_SOLVER_TIME_LIMIT: %v is negative", EnvPrefix, timeLimit)
	}

	workers := v.GetInt("SOLVER_WORKERS")
	if workers < 0 {
		workers = 0
	}
	cfg.Solver = SolverConfig{
		Backend:    strings.ToLower(v.GetString("SOLVER_BACKEND")),
		Executable: v.GetString("SOLVER_EXECUTABLE"),
		TimeLimit:  timeLimit,
		Workers:    workers,
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("SOLVER_BACKEND", sat.BackendGophersat)
	v.SetDefault("SOLVER_EXECUTABLE", "")
	v.SetDefault("SOLVER_TIME_LIMIT", DefaultTimeLimit.String())
	v.SetDefault("SOLVER_WORKERS", 0)
}

// Options are the solver settings handed to the backend on every solve
func (cfg SolverConfig) Options() sat.Options {
	return sat.Options{
		TimeLimit: cfg.TimeLimit,
		Workers:   cfg.Workers,
	}
}

// NewSolver builds the configured backend
func (cfg SolverConfig) NewSolver() (sat.Solver, error) {
	return sat.NewSolver(cfg.Backend, cfg.Executable)
}
