package docfile

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"yamlsimple/internal/flat"
	"yamlsimple/internal/rewrite"
)

// defaultMode is used when the file's own mode cannot be determined.
const defaultMode fs.FileMode = 0o644

// Store reads and writes documents on the local file system.
type Store struct {
	Logger *slog.Logger
}

// NewStore returns a Store that logs to logger. A nil logger uses slog.Default.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{Logger: logger}
}

// Load reads the document at path. The boolean is false when the file does
// not exist, in which case the error is nil.
func (s *Store) Load(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.Logger.Debug("Document not found, skipping.", "path", path)
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	s.Logger.Debug("Document loaded.", "path", path, "bytes", len(data))

	return string(data), true, nil
}

// ParseFile flattens the document at path. A missing file yields an empty
// mapping.
func (s *Store) ParseFile(path string) (*flat.Mapping, error) {
	text, ok, err := s.Load(path)
	if err != nil {
		return nil, err
	}

	if !ok {
		return flat.NewMapping(), nil
	}

	m, err := flat.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document %s: %w", path, err)
	}

	s.Logger.Debug("Document parsed.", "path", path, "keys", m.Len())

	return m, nil
}

// CheckFile reports whether key is bound in the document at path. A missing
// file reports false.
func (s *Store) CheckFile(path, key string) (bool, error) {
	text, ok, err := s.Load(path)
	if err != nil || !ok {
		return false, err
	}

	found, err := rewrite.Exists(text, key)
	if err != nil {
		return false, fmt.Errorf("failed to check %q in %s: %w", key, path, err)
	}

	return found, nil
}

// UpdateFile rebinds key to value in the document at path. A missing file is
// left alone.
func (s *Store) UpdateFile(path, key, value string) error {
	return s.transform(path, "update", func(text string) (string, error) {
		return rewrite.Replace(text, key, value)
	})
}

// AddFile inserts key with value into the document at path unless it is
// already bound. A missing file is left alone.
func (s *Store) AddFile(path, key, value string) error {
	return s.transform(path, "add", func(text string) (string, error) {
		return rewrite.Insert(text, key, value)
	})
}

func (s *Store) transform(path, op string, fn func(string) (string, error)) error {
	text, ok, err := s.Load(path)
	if err != nil || !ok {
		return err
	}

	out, err := fn(text)
	if err != nil {
		return fmt.Errorf("failed to %s document %s: %w", op, path, err)
	}

	if out == text {
		s.Logger.Debug("Document unchanged, not writing.", "path", path, "op", op)
		return nil
	}

	return s.write(path, out)
}

// write replaces the file contents, keeping its permission bits.
func (s *Store) write(path, text string) error {
	mode := defaultMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(path, []byte(text), mode); err != nil {
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}

	s.Logger.Debug("Document written.", "path", path, "bytes", len(text))

	return nil
}
