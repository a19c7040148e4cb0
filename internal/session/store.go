package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// ErrInvalidUser is returned for user ids that cannot name a record.
var ErrInvalidUser = errors.New("invalid user id")

var userIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.@-]*$`)

// ValidateUserID reports whether id is usable as a record key. Ids must
// start with a letter or digit and may contain only letters, digits and
// "_.@-", which keeps them inside the sessions directory.
func ValidateUserID(id string) error {
	if !userIDPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidUser, id)
	}
	return nil
}

// Store loads and saves learner records. A missing record loads as
// NewRecord. Concurrent saves for the same user are last-write-wins.
type Store interface {
	Load(ctx context.Context, userID string) (*Record, error)
	Save(ctx context.Context, userID string, r *Record) error
	Delete(ctx context.Context, userID string) error
}

// FileStore keeps one <dir>/<user>.json file per learner.
type FileStore struct {
	dir string
}

// NewFileStore creates dir if needed and returns a store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create sessions dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory holding the session files.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(userID string) (string, error) {
	if err := ValidateUserID(userID); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, userID+".json"), nil
}

func (s *FileStore) Load(_ context.Context, userID string) (*Record, error) {
	p, err := s.path(userID)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return NewRecord(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session %s: %w", userID, err)
	}

	r, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode session %s: %w", userID, err)
	}
	return r, nil
}

// Save replaces the user's file through a temp file and rename, so readers
// see either the old or the new record.
func (s *FileStore) Save(_ context.Context, userID string, r *Record) error {
	p, err := s.path(userID)
	if err != nil {
		return err
	}

	data, err := Encode(r)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", userID, err)
	}

	tmp, err := os.CreateTemp(s.dir, userID+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write session %s: %w", userID, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync session %s: %w", userID, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close session %s: %w", userID, err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		return fmt.Errorf("replace session %s: %w", userID, err)
	}
	return nil
}

// Delete removes the user's file. Deleting an absent record is not an error.
func (s *FileStore) Delete(_ context.Context, userID string) error {
	p, err := s.path(userID)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete session %s: %w", userID, err)
	}
	return nil
}

// Users lists the ids that have a saved record, sorted.
func (s *FileStore) Users(_ context.Context) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	users := make([]string, 0, len(matches))
	for _, m := range matches {
		id := strings.TrimSuffix(filepath.Base(m), ".json")
		if ValidateUserID(id) == nil {
			users = append(users, id)
		}
	}
	sort.Strings(users)
	return users, nil
}
