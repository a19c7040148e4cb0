// Package knowledge loads per-subject lesson content from JSON files and
// caches it for the lifetime of a Store.
package knowledge

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	// ErrSubjectNotFound means no <dataDir>/<subject>.json exists.
	ErrSubjectNotFound = errors.New("subject not found")

	// ErrInvalidContent means the subject file is not valid content JSON.
	ErrInvalidContent = errors.New("invalid subject content")

	// ErrInvalidSubject means the subject id contains disallowed characters.
	ErrInvalidSubject = errors.New("invalid subject id")

	// ErrConceptNotFound means the subject has no concept with that name.
	ErrConceptNotFound = errors.New("concept not found")
)

var subjectPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Store reads subject files from a data directory. Each subject is read
// at most once until it is invalidated.
type Store struct {
	dir    string
	logger *zap.Logger

	mu    sync.RWMutex
	cache map[string]*Content
}

// New returns a Store over dir. logger may be nil.
func New(dir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		dir:    dir,
		logger: logger,
		cache:  make(map[string]*Content),
	}
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dir
}

// Subjects lists the subject ids available in the data directory, sorted.
func (s *Store) Subjects() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}

	subjects := make([]string, 0, len(matches))
	for _, m := range matches {
		id := strings.TrimSuffix(filepath.Base(m), ".json")
		if subjectPattern.MatchString(id) {
			subjects = append(subjects, id)
		}
	}
	sort.Strings(subjects)
	return subjects, nil
}

// Load returns the content of subject, reading it on first use.
func (s *Store) Load(subject string) (*Content, error) {
	if !subjectPattern.MatchString(subject) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSubject, subject)
	}

	s.mu.RLock()
	c, ok := s.cache[subject]
	s.mu.RUnlock()
	if ok {
		return c, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.cache[subject]; ok {
		return c, nil
	}

	c, err := s.read(subject)
	if err != nil {
		return nil, err
	}
	s.cache[subject] = c
	s.logger.Debug("loaded subject",
		zap.String("subject", subject),
		zap.Int("concepts", len(c.Concepts)),
		zap.Int("exercises", len(c.Exercises)))
	return c, nil
}

func (s *Store) read(subject string) (*Content, error) {
	path := filepath.Join(s.dir, subject+".json")

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSubjectNotFound, subject)
	}
	if err != nil {
		return nil, fmt.Errorf("read subject %s: %w", subject, err)
	}

	if err := validateContent(raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidContent, subject, err)
	}

	var c Content
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidContent, subject, err)
	}
	return &c, nil
}

// Concepts returns the concept names of subject in file order.
func (s *Store) Concepts(subject string) ([]string, error) {
	c, err := s.Load(subject)
	if err != nil {
		return nil, err
	}
	return c.ConceptNames(), nil
}

// Concept returns the full concept entry, or ErrConceptNotFound.
func (s *Store) Concept(subject, name string) (Concept, error) {
	c, err := s.Load(subject)
	if err != nil {
		return Concept{}, err
	}
	concept, ok := c.Concept(name)
	if !ok {
		return Concept{}, fmt.Errorf("%w: %s/%s", ErrConceptNotFound, subject, name)
	}
	return concept, nil
}

// Examples returns the examples of a concept. An unknown concept has none.
func (s *Store) Examples(subject, concept string) ([]string, error) {
	c, err := s.Load(subject)
	if err != nil {
		return nil, err
	}
	found, ok := c.Concept(concept)
	if !ok {
		return []string{}, nil
	}
	return append([]string{}, found.Examples...), nil
}

// Exercises returns pool exercises matching concept and level exactly.
func (s *Store) Exercises(subject, concept, level string) ([]PoolExercise, error) {
	c, err := s.Load(subject)
	if err != nil {
		return nil, err
	}
	return c.ExercisesFor(concept, level), nil
}

// Image returns the subject's optional image reference.
func (s *Store) Image(subject string) (string, error) {
	c, err := s.Load(subject)
	if err != nil {
		return "", err
	}
	return c.Image, nil
}

// Invalidate drops the cached content of subject so the next access
// re-reads the file.
func (s *Store) Invalidate(subject string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cache[subject]; ok {
		delete(s.cache, subject)
		s.logger.Debug("invalidated subject", zap.String("subject", subject))
	}
}
