// Package paths resolves user-supplied file paths.
package paths

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
)

// HomeEnvKey is the environment variable consulted for the home directory.
const HomeEnvKey = "HOME"

// ErrNotSet is the cause of an EnvVariableError for an unset variable.
var ErrNotSet = errors.New("paths: variable not set")

// EnvVariableError reports that the home directory could not be determined.
type EnvVariableError struct {
	Variable string
	Err      error
}

func (e *EnvVariableError) Error() string {
	return fmt.Sprintf("could not find environment variable %s: %v", e.Variable, e.Err)
}

func (e *EnvVariableError) Unwrap() error {
	return e.Err
}

// Expand replaces a leading "~" with the user's home directory. Paths
// without one are returned unchanged. The home directory is taken from
// $HOME only; an unset or empty $HOME is an *EnvVariableError.
func Expand(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	if os.Getenv(HomeEnvKey) == "" {
		return "", &EnvVariableError{Variable: HomeEnvKey, Err: ErrNotSet}
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expanding %q: %w", path, err)
	}
	return expanded, nil
}
