package config

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Environment variables read by the labyrinth binaries
const (
	EnvEnginePath = "LABYRINTH_ENGINE"
	EnvLogLevel   = "LABYRINTH_LOG_LEVEL"
	EnvMapsDir    = "LABYRINTH_MAPS_DIR"

	DefaultLogLevel = "warn"
	DefaultMapsDir  = "maps"
)

// Settings holds defaults taken from the environment. Command-line flags
// override them.
type Settings struct {
	EnginePath string
	LogLevel   string
	MapsDir    string
}

// LoadEnv loads variables from the given .env files (default ".env") into
// the process environment. Missing files are not an error; variables
// already set are not overwritten.
func LoadEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
	}
	return nil
}

// FromEnv builds Settings from the current environment
func FromEnv() Settings {
	s := Settings{
		EnginePath: os.Getenv(EnvEnginePath),
		LogLevel:   os.Getenv(EnvLogLevel),
		MapsDir:    os.Getenv(EnvMapsDir),
	}
	if s.LogLevel == "" {
		s.LogLevel = DefaultLogLevel
	}
	if s.MapsDir == "" {
		s.MapsDir = DefaultMapsDir
	}
	return s
}

// NewLogger returns a logger writing to w at the named level
func NewLogger(level string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log, nil
}

// Version information shared by the labyrinth binaries
const (
	AppName = "Labyrinth Game"
	Version = "1.0.0"
)

// VersionString is the line printed by --version
func VersionString() string {
	return fmt.Sprintf("%s v%s", AppName, Version)
}
