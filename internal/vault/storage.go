package vault

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const (
	recordExtension = ".json"
	appDirName      = "evm-signer"
	keyDirName      = "keys"

	baseDirPerm = 0o700
	recordPerm  = 0o600
)

// BaseDirFunc resolves the directory that holds encrypted key records.
// Injectable so tests can substitute a temporary location.
type BaseDirFunc func() (string, error)

// DefaultBaseDir resolves the per-user record directory
func DefaultBaseDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve user config directory")
	}

	return filepath.Join(configDir, appDirName, keyDirName), nil
}

// FixedBaseDir returns a BaseDirFunc that always resolves to dir
func FixedBaseDir(dir string) BaseDirFunc {
	return func() (string, error) {
		return dir, nil
	}
}

// Storage persists encrypted key records, one file per identifier.
// No other component touches the filesystem.
type Storage struct {
	baseDir BaseDirFunc
}

// NewStorage creates a Storage backed by the given base directory resolver
func NewStorage(baseDir BaseDirFunc) *Storage {
	if baseDir == nil {
		baseDir = DefaultBaseDir
	}

	return &Storage{baseDir: baseDir}
}

// ResolveBase returns the record directory, creating it if absent
func (s *Storage) ResolveBase() (string, error) {
	dir, err := s.baseDir()
	if err != nil {
		return "", errors.Wrap(ErrStoragePath, err.Error())
	}

	if err := os.MkdirAll(dir, baseDirPerm); err != nil {
		return "", errors.Wrap(ErrStoragePath, err.Error())
	}

	return dir, nil
}

// PathFor maps an identifier to its record file path. The identifier is
// rejected if it could escape the record directory.
func (s *Storage) PathFor(identifier string) (string, error) {
	if !validIdentifier(identifier) {
		return "", errors.Wrapf(ErrInvalidIdentifier, "%q", identifier)
	}

	dir, err := s.ResolveBase()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, identifier+recordExtension), nil
}

// Exists reports whether a record exists for the identifier
func (s *Storage) Exists(identifier string) (bool, error) {
	path, err := s.PathFor(identifier)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "failed to stat key record")
	}

	return true, nil
}

// Read returns the raw record bytes for the identifier
func (s *Storage) Read(identifier string) ([]byte, error) {
	path, err := s.PathFor(identifier)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNotFound, "%q", identifier)
		}
		return nil, errors.Wrap(err, "failed to read key record")
	}

	return data, nil
}

// WriteExclusive atomically creates the record for the identifier. Fails with
// ErrExists when a record is already present, so two concurrent stores for
// the same identifier cannot both succeed.
func (s *Storage) WriteExclusive(identifier string, data []byte) error {
	path, err := s.PathFor(identifier)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, recordPerm)
	if err != nil {
		if os.IsExist(err) {
			return errors.Wrapf(ErrExists, "%q", identifier)
		}
		return errors.Wrap(err, "failed to create key record")
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		return errors.Wrap(err, "failed to write key record")
	}

	return errors.Wrap(file.Close(), "failed to close key record")
}

// validIdentifier rejects identifiers that are empty or could resolve
// outside the record directory
func validIdentifier(identifier string) bool {
	if identifier == "" || identifier == "." || identifier == ".." {
		return false
	}

	if strings.ContainsAny(identifier, `/\`) || strings.ContainsRune(identifier, os.PathSeparator) {
		return false
	}

	return true
}
