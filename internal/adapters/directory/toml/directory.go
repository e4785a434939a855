package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/nhileteam/nlt-cli/internal/domain"
	"github.com/nhileteam/nlt-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName        = "config"
	configType        = "toml"
	directoryPathKey  = "directory.path"
	directoryFileMode = 0o600
	directoryDirMode  = 0o700
	stateDir          = ".nlt"
	directoryFile     = "directory.toml"
	tempFilePattern   = ".directory-*.toml.tmp"
)

// Directory is a TOML-backed credential directory. It stands in for what
// would be an identity-provider call in a real deployment; lookup is an
// exact (email, password) match.
type Directory struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.IdentityDirectory = (*Directory)(nil)

func NewDirectory(cfg *viper.Viper) (*Directory, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, stateDir, directoryFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, stateDir))
	cfg.SetDefault(directoryPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	path := cfg.GetString(directoryPathKey)
	if path == "" {
		return nil, errors.New("directory path is empty")
	}
	path, err = normalizePath(path)
	if err != nil {
		return nil, err
	}

	d := &Directory{path: path, mu: lockForPath(path)}
	if err := d.ensureSeeded(); err != nil {
		return nil, err
	}

	return d, nil
}

// Find returns the identity matching the exact credentials, with the
// password stripped. No match means domain.ErrInvalidCredentials.
func (d *Directory) Find(ctx context.Context, email, password string) (domain.Identity, error) {
	if err := ctx.Err(); err != nil {
		return domain.Identity{}, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	file, err := d.readSchema()
	if err != nil {
		return domain.Identity{}, err
	}
	file.applyDefaults()

	for _, entry := range file.Identities {
		if entry.Email == email && entry.Password == password {
			return fromSchema(entry), nil
		}
	}

	return domain.Identity{}, domain.ErrInvalidCredentials
}

// List returns every identity in the directory, secret-free.
func (d *Directory) List(ctx context.Context) ([]domain.Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	file, err := d.readSchema()
	if err != nil {
		return nil, err
	}
	file.applyDefaults()

	identities := make([]domain.Identity, 0, len(file.Identities))
	for _, entry := range file.Identities {
		identities = append(identities, fromSchema(entry))
	}

	return identities, nil
}

// ensureSeeded writes the sample directory on first run so login works out
// of the box. An existing file, whatever its contents, is left alone.
func (d *Directory) ensureSeeded() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, err := os.Stat(d.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat directory file: %w", err)
	}

	return d.writeSchema(seedSchema())
}

func (d *Directory) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read directory file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode directory file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (d *Directory) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(d.path), directoryDirMode); err != nil {
		return fmt.Errorf("create directory file dir: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode directory file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(d.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp directory file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp directory file: %w", err)
	}

	if err := tempFile.Chmod(directoryFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp directory file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp directory file: %w", err)
	}

	if err := os.Rename(tempName, d.path); err != nil {
		return fmt.Errorf("replace directory file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(d.path, directoryFileMode); err != nil {
		return fmt.Errorf("chmod directory file: %w", err)
	}

	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve directory path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
