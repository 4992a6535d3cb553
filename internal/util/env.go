package util

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads a .env file when present. A missing file is not an error so
// that deployed environments can rely on real environment variables.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}
