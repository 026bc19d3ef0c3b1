package dotenv

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Bootstrap loads a .env file from the working directory (if present) and
// returns the value of the given environment variable. Loading is explicit:
// nothing in this module mutates the process environment at import time.
func Bootstrap(varName string) (string, error) {
	// Missing .env is fine; the variable may already be exported.
	_ = godotenv.Load()

	value := strings.TrimSpace(os.Getenv(varName))
	if value == "" {
		return "", fmt.Errorf("environment variable %s is not set; export it or add it to a .env file", varName)
	}

	return value, nil
}

// WriteTemplate creates a .env skeleton listing the given variables so the
// operator can fill them in. It refuses to overwrite an existing file.
func WriteTemplate(path string, varNames ...string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", path)
	}

	var b strings.Builder
	for _, name := range varNames {
		fmt.Fprintf(&b, "%s=\n", name)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
