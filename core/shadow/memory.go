package shadow

import (
	"context"
	"sync"
	"time"

	"shadow-sync/core/apperror"

	"github.com/goccy/go-json"
)

// MemoryStore keeps shadows in process memory.
type MemoryStore struct {
	mu   sync.Mutex
	docs map[string][]byte
	now  func() time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte), now: time.Now}
}

func (s *MemoryStore) Get(_ context.Context, deviceID string) (*Document, error) {
	s.mu.Lock()
	data, ok := s.docs[deviceID]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}
	doc, err := decodeDocument(data)
	if err != nil {
		return nil, apperror.Store(err, "failed to decode shadow %s", deviceID)
	}
	return doc, nil
}

func (s *MemoryStore) Update(_ context.Context, deviceID string, patch Patch) (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var current *Document
	if data, ok := s.docs[deviceID]; ok {
		doc, err := decodeDocument(data)
		if err != nil {
			return nil, apperror.Store(err, "failed to decode shadow %s", deviceID)
		}
		current = doc
	}

	next, err := Apply(current, patch, s.now())
	if err != nil {
		return nil, apperror.Store(err, "failed to update shadow %s", deviceID)
	}
	data, err := json.Marshal(next)
	if err != nil {
		return nil, apperror.Store(err, "failed to encode shadow %s", deviceID)
	}
	s.docs[deviceID] = data
	return decodeDocument(data)
}

// Seed stores a shadow with the given sections, replacing any existing one.
func (s *MemoryStore) Seed(deviceID string, desired, reported map[string]any) error {
	next, err := Apply(nil, Patch{Desired: desired, Reported: reported}, s.now())
	if err != nil {
		return err
	}
	data, err := json.Marshal(next)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.docs[deviceID] = data
	s.mu.Unlock()
	return nil
}

// Len returns the number of stored shadows.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}
