package config

import "sync/atomic"

// Store holds the live configuration. Readers always see a complete Config;
// the watcher replaces it wholesale.
type Store struct {
	current atomic.Pointer[Config]
}

// NewStore returns a store holding cfg.
func NewStore(cfg *Config) *Store {
	s := &Store{}
	s.current.Store(cfg)
	return s
}

// Get returns the current configuration. The returned value must not be modified.
func (s *Store) Get() *Config {
	return s.current.Load()
}

// Swap replaces the configuration and returns the previous one.
func (s *Store) Swap(cfg *Config) *Config {
	return s.current.Swap(cfg)
}
