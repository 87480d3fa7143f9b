package resource

import (
	"errors"
	"sync"
)

const (
	// DefaultCapacity is the number of slots in the store.
	DefaultCapacity = 100

	// DefaultMaxContentSize bounds a single resource payload. Content at or
	// above the bound is rejected before any slot is touched.
	DefaultMaxContentSize = 8 * 1024
)

var (
	ErrNotFound = errors.New("resource: not found")
	ErrExists   = errors.New("resource: already exists")
	ErrFull     = errors.New("resource: store full")
	ErrTooLarge = errors.New("resource: content too large")
)

type slot struct {
	inUse   bool
	path    string
	content []byte
}

// Store is a fixed-capacity table of mutable resources keyed by path. Paths
// are unique among live slots. All operations share one lock: the scan then
// mutate sequence must be a single mutual-exclusion domain so two concurrent
// creates for one path cannot both observe "no existing slot".
//
// Lookup is a linear scan, fine for the default capacity of 100 but not a
// scalable primitive; a larger deployment would back this with a map while
// keeping the same operation semantics.
type Store struct {
	mu         sync.Mutex
	slots      []slot
	maxContent int
}

func NewStore(capacity, maxContent int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if maxContent <= 0 {
		maxContent = DefaultMaxContentSize
	}

	return &Store{
		slots:      make([]slot, capacity),
		maxContent: maxContent,
	}
}

// Get returns a copy of the content stored under path.
func (s *Store) Get(path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.find(path)
	if i < 0 {
		return nil, ErrNotFound
	}

	content := make([]byte, len(s.slots[i].content))
	copy(content, s.slots[i].content)
	return content, nil
}

// Create claims a free slot for a path not yet present.
func (s *Store) Create(path string, content []byte) error {
	if len(content) >= s.maxContent {
		return ErrTooLarge
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.find(path) >= 0 {
		return ErrExists
	}
	return s.create(path, content)
}

// Update overwrites the content of an existing resource in place. It never
// changes the slot's path or liveness.
func (s *Store) Update(path string, content []byte) error {
	if len(content) >= s.maxContent {
		return ErrTooLarge
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.find(path)
	if i < 0 {
		return ErrNotFound
	}

	s.slots[i].content = append(s.slots[i].content[:0], content...)
	return nil
}

// Put updates the resource if it exists, otherwise creates it, under a
// single lock acquisition so concurrent puts for one path cannot allocate
// two slots.
func (s *Store) Put(path string, content []byte) (created bool, err error) {
	if len(content) >= s.maxContent {
		return false, ErrTooLarge
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.find(path); i >= 0 {
		s.slots[i].content = append(s.slots[i].content[:0], content...)
		return false, nil
	}
	if err := s.create(path, content); err != nil {
		return false, err
	}
	return true, nil
}

// Delete tombstones the slot holding path.
func (s *Store) Delete(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.find(path)
	if i < 0 {
		return ErrNotFound
	}

	s.slots[i] = slot{}
	return nil
}

// Len counts live resources.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for i := range s.slots {
		if s.slots[i].inUse {
			n++
		}
	}
	return n
}

func (s *Store) create(path string, content []byte) error {
	i := s.findFree()
	if i < 0 {
		return ErrFull
	}

	s.slots[i] = slot{
		inUse:   true,
		path:    path,
		content: append([]byte(nil), content...),
	}
	return nil
}

func (s *Store) find(path string) int {
	for i := range s.slots {
		if s.slots[i].inUse && s.slots[i].path == path {
			return i
		}
	}
	return -1
}

func (s *Store) findFree() int {
	for i := range s.slots {
		if !s.slots[i].inUse {
			return i
		}
	}
	return -1
}
