// Package matching remembers transaction descriptions so input forms can
// offer them back as suggestions. It has no effect on ledger or balance
// semantics.
package matching

import "strings"

const maxSuggestions = 10

type Repository interface {
	RecordUse(description string)
	MostUsed(limit int) []string
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Learn remembers a description for future suggestions. Blank descriptions
// are ignored.
func (s *Service) Learn(description string) {
	description = strings.TrimSpace(description)
	if description == "" {
		return
	}

	s.repo.RecordUse(description)
}

// Suggestions returns the most frequently used descriptions, most common
// first.
func (s *Service) Suggestions() []string {
	return s.repo.MostUsed(maxSuggestions)
}
