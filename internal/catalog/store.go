package catalog

import "sync/atomic"

// Store holds the current vocabulary and role catalogue behind atomic
// pointers. Readers never block; a reload builds complete new values and
// swaps them in, so in-flight requests keep a consistent snapshot.
type Store struct {
	vocab atomic.Pointer[Vocabulary]
	roles atomic.Pointer[Catalog]
}

// NewStore creates a store seeded with the given catalogues.
func NewStore(v *Vocabulary, c *Catalog) *Store {
	s := &Store{}
	s.vocab.Store(v)
	s.roles.Store(c)
	return s
}

// Vocabulary returns the current vocabulary snapshot.
func (s *Store) Vocabulary() *Vocabulary {
	return s.vocab.Load()
}

// Catalog returns the current role catalogue snapshot.
func (s *Store) Catalog() *Catalog {
	return s.roles.Load()
}

// SwapVocabulary atomically replaces the vocabulary.
func (s *Store) SwapVocabulary(v *Vocabulary) {
	s.vocab.Store(v)
}

// SwapCatalog atomically replaces the role catalogue.
func (s *Store) SwapCatalog(c *Catalog) {
	s.roles.Store(c)
}
