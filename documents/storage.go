package documents

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
)

type StorageConfig struct {
	Dir string `envconfig:"UPLOADS_DIR" default:"uploads"`
}

func NewStorageConfig() (*StorageConfig, error) {
	cfg := &StorageConfig{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Storage writes uploaded files under a single flat directory. Files are
// renamed to a generated id so client supplied names can never collide or
// escape the directory.
type Storage struct {
	dir string
}

func NewStorage(cfg *StorageConfig) (*Storage, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create uploads directory: %w", err)
	}
	return &Storage{dir: cfg.Dir}, nil
}

func (s *Storage) Dir() string {
	return s.dir
}

// Save streams src to disk and returns the generated stored name.
func (s *Storage) Save(fileName string, src io.Reader) (string, error) {
	storedName := uuid.NewString() + filepath.Ext(fileName)

	dst, err := os.Create(filepath.Join(s.dir, storedName))
	if err != nil {
		return "", fmt.Errorf("unable to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("unable to write upload file: %w", err)
	}

	return storedName, nil
}
