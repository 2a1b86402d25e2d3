package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// envFileVar names the variable that points at an alternative dotenv file.
const envFileVar = "CALC_ENV_FILE"

// loadDotEnv loads environment variables from the dotenv file (.env unless
// CALC_ENV_FILE says otherwise). A missing default file is not an error; a
// missing explicitly named file is. Existing process environment variables
// are not overridden.
func loadDotEnv() error {
	path, explicit := os.LookupEnv(envFileVar)
	explicit = explicit && path != ""
	if !explicit {
		path = ".env"
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) && !explicit {
		return nil
	}

	return fmt.Errorf("load %s: %w", path, err)
}
