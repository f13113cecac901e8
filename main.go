package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	app "github.com/rocketscienceinc/killer-backend/internal"
	"github.com/rocketscienceinc/killer-backend/internal/config"
)

const defaultConfigPath = "config.yml"

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := config.MustLoad(configPath())
	logger := initLogger(conf.LogLevel)

	if err := app.RunApp(logger, conf); err != nil {
		logger.Error("app run failed", "error", err)
		os.Exit(1)
	}
}

// configPath - the -config flag, then CONFIG_PATH, then ./config.yml.
func configPath() string {
	var path string

	flags := flag.NewFlagSet("killer-backend", flag.ExitOnError)
	flags.StringVar(&path, "config", "", "path to the yml config file")
	flags.Usage = cleanenv.FUsage(flags.Output(), &config.Config{}, nil, flags.PrintDefaults)
	_ = flags.Parse(os.Args[1:])

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	if path == "" {
		path = defaultConfigPath
	}

	return path
}

// initLogger - JSON logs to stdout; an unknown level falls back to info.
func initLogger(levelName string) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
