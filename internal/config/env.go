package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// Environment variables read as flag defaults by the CLI.
const (
	EnvConfig   = "FLAPPY_CONFIG"
	EnvFPS      = "FLAPPY_FPS"
	EnvSeed     = "FLAPPY_SEED"
	EnvLogLevel = "FLAPPY_LOG_LEVEL"
	EnvLogFile  = "FLAPPY_LOG_FILE"
)

// LoadEnv reads a dotenv file into the process environment. Variables
// already set are kept. A missing file is not an error.
func LoadEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: env file %s: %w", path, err)
	}
	return nil
}
