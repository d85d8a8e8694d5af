package dotenv

import "fmt"

// NotFoundError reports that the .env file does not exist.
type NotFoundError struct {
	Path string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("dotenv: file not found: %s", e.Path)
}
