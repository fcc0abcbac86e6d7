package blob

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("blob not found")

// Ref is a transient addressable reference to a registered blob.
type Ref struct {
	ID   uuid.UUID
	Name string
	URL  string
}

type Blob struct {
	Name string
	Data []byte
}

// Store keeps uploaded files addressable under opaque URLs until they are released.
type Store struct {
	prefix string

	mu   sync.RWMutex
	byID map[uuid.UUID]*Blob
}

// NewStore creates a store whose references are rooted at prefix, e.g. "/blob".
func NewStore(prefix string) *Store {
	return &Store{
		prefix: prefix,
		byID:   make(map[uuid.UUID]*Blob),
	}
}

func (s *Store) Register(name string, data []byte) Ref {
	guid, err := uuid.NewRandom()
	if err != nil {
		panic(err)
	}

	s.mu.Lock()
	s.byID[guid] = &Blob{Name: name, Data: data}
	s.mu.Unlock()

	return Ref{
		ID:   guid,
		Name: name,
		URL:  fmt.Sprintf("%s/%s", s.prefix, guid),
	}
}

func (s *Store) Open(guid uuid.UUID) (*Blob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if b, ok := s.byID[guid]; ok {
		return b, nil
	}

	return nil, fmt.Errorf("%s: %w", guid, ErrNotFound)
}

// Release frees the blob. Releasing an unknown reference is a no-op.
func (s *Store) Release(guid uuid.UUID) {
	s.mu.Lock()
	delete(s.byID, guid)
	s.mu.Unlock()
}

// Len returns the number of registered blobs.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.byID)
}
