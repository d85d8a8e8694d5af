package dotenv

import (
	"context"

	"github.com/kbukum/envkit/provider"
)

var _ provider.Provider = (*FileProvider)(nil)

// FileProvider serves values from a .env file, re-parsing it on every
// call. There is no caching: lookups always reflect the file as it
// exists at call time, and a missing file fails every call with a
// *NotFoundError.
type FileProvider struct {
	path string
}

// NewFileProvider creates a provider backed by the .env file at path.
// The file is not touched until the first lookup.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Name returns the provider name.
func (p *FileProvider) Name() string { return "dotenv:" + p.path }

// Path returns the backing file path.
func (p *FileProvider) Path() string { return p.path }

// Get parses the file and returns the value for key.
func (p *FileProvider) Get(_ context.Context, key string) (string, bool, error) {
	values, err := ParseFile(p.path)
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// GetAll parses the file and returns all values.
func (p *FileProvider) GetAll(_ context.Context) (map[string]string, error) {
	return ParseFile(p.path)
}
