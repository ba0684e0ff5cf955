package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// loadDotEnv adds CALNOTE_* settings from .env files (./.env by default)
// without overriding variables already set. A missing file is not an error;
// an unreadable or malformed one is reported on warn.
func loadDotEnv(warn io.Writer, files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		err := godotenv.Load(f)
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			continue
		}
		fmt.Fprintln(warn, color.YellowString("Warning: could not load %s: %v", f, err))
	}
}
