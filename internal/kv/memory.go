package kv

import (
	"context"
	"sync"
)

// Memory keeps blobs in-process. Used in tests and as a throwaway default.
type Memory struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewMemory initializes an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

func (s *Memory) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *Memory) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

func (s *Memory) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

// Compile-time assertion that Memory implements Store.
var _ Store = (*Memory)(nil)
