package landing

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// SessionStore is a string key/value store scoped to one browsing session.
type SessionStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// MemorySession is an in-memory SessionStore. The zero value is ready to use.
type MemorySession struct {
	values map[string]string
}

func (s *MemorySession) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *MemorySession) Set(key, value string) {
	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.values[key] = value
}

// FileSession is a SessionStore persisted as a JSON object, so a session can
// outlive one process. Write failures are reported to LogOutput and leave the
// in-memory value in place.
type FileSession struct {
	path string
	mem  MemorySession
}

// OpenFileSession loads path if it exists. A missing file is an empty session.
func OpenFileSession(path string) (*FileSession, error) {
	s := &FileSession{path: path}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &s.mem.values); err != nil {
		return nil, fmt.Errorf("parse session %s: %w", path, err)
	}
	return s, nil
}

func (s *FileSession) Get(key string) (string, bool) {
	return s.mem.Get(key)
}

func (s *FileSession) Set(key, value string) {
	s.mem.Set(key, value)
	data, err := json.Marshal(s.mem.values)
	if err != nil {
		logf("session: %v", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		logf("session: write %s: %v", s.path, err)
	}
}
