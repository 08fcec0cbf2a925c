package store

import "sort"

// Store keeps description usage counts in memory for the lifetime of a
// session. Nothing is persisted.
type Store struct {
	counts   map[string]int
	lastSeen map[string]int
	clock    int
}

func New() *Store {
	return &Store{
		counts:   make(map[string]int),
		lastSeen: make(map[string]int),
	}
}

func (s *Store) RecordUse(description string) {
	s.clock++
	s.counts[description]++
	s.lastSeen[description] = s.clock
}

// MostUsed returns up to limit descriptions ordered by use count, breaking
// ties by most recent use.
func (s *Store) MostUsed(limit int) []string {
	descriptions := make([]string, 0, len(s.counts))
	for d := range s.counts {
		descriptions = append(descriptions, d)
	}

	sort.Slice(descriptions, func(i, j int) bool {
		a, b := descriptions[i], descriptions[j]
		if s.counts[a] != s.counts[b] {
			return s.counts[a] > s.counts[b]
		}

		return s.lastSeen[a] > s.lastSeen[b]
	})

	if len(descriptions) > limit {
		descriptions = descriptions[:limit]
	}

	return descriptions
}
