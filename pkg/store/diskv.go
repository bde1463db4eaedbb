package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"
)

// Disk is a KV backed by diskv, one file per key under a base directory.
type Disk struct {
	d        *diskv.Diskv
	basePath string
	logger   *zap.Logger
}

// Open creates a Disk store using the provided config. A nil config is
// loaded from the environment; a nil logger discards output.
func Open(cfg Config, logger *zap.Logger) (*Disk, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(filepath.Join(basePath, tempDirName), 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	logger.Debug("opened store", zap.String("path", basePath))

	// No read cache: other processes write the same files, and every Read
	// must see their latest value. Writes go through TempDir and a rename,
	// so a reader woken by the watcher never sees a half-written file.
	return &Disk{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		TempDir:      filepath.Join(basePath, tempDirName),
		Transform:    flatTransform,
		CacheSizeMax: 0,
	}), basePath: basePath, logger: logger}, nil
}

// tempDirName is hidden so the watcher ignores it.
const tempDirName = ".tmp"

// Every key is a single file directly under the base path.
func flatTransform(string) []string {
	return []string{}
}

// BasePath is the directory holding the key files.
func (s *Disk) BasePath() string {
	return s.basePath
}

func (s *Disk) Read(key string) ([]byte, error) {
	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

func (s *Disk) Write(key string, val []byte) error {
	if err := s.d.Write(key, val); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	s.logger.Debug("wrote key", zap.String("key", key), zap.Int("bytes", len(val)))
	return nil
}

func (s *Disk) Erase(key string) error {
	if !s.d.Has(key) {
		return nil
	}
	if err := s.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	s.logger.Debug("erased key", zap.String("key", key))
	return nil
}

func (s *Disk) Has(key string) bool {
	return s.d.Has(key)
}
