package assets

import "sort"

type storeKey struct {
	kind Kind
	key  string
}

// Store resolves the keys gameplay code uses ("logo", "player_idle_1") to
// server handles.
type Store struct {
	handles map[storeKey]Handle
}

func NewStore() *Store {
	return &Store{handles: make(map[storeKey]Handle)}
}

func (s *Store) Set(kind Kind, key string, h Handle) {
	if s == nil || key == "" || !h.Valid() {
		return
	}
	if s.handles == nil {
		s.handles = make(map[storeKey]Handle)
	}
	s.handles[storeKey{kind: kind, key: key}] = h
}

func (s *Store) Lookup(kind Kind, key string) (Handle, bool) {
	if s == nil {
		return 0, false
	}
	h, ok := s.handles[storeKey{kind: kind, key: key}]
	return h, ok
}

func (s *Store) Image(key string) (Handle, bool) {
	return s.Lookup(KindImage, key)
}

func (s *Store) Font(key string) (Handle, bool) {
	return s.Lookup(KindFont, key)
}

func (s *Store) Audio(key string) (Handle, bool) {
	return s.Lookup(KindAudio, key)
}

// Keys returns the sorted keys registered for kind.
func (s *Store) Keys(kind Kind) []string {
	if s == nil {
		return nil
	}
	var keys []string
	for k := range s.handles {
		if k.kind == kind {
			keys = append(keys, k.key)
		}
	}
	sort.Strings(keys)
	return keys
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.handles)
}
