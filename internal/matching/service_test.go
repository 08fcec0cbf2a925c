package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmcardoso/pennyledger/internal/matching"
	"github.com/jmcardoso/pennyledger/internal/matching/store"
)

func TestSuggestions_OrderedByUseThenRecency(t *testing.T) {
	svc := matching.NewService(store.New())

	svc.Learn("Rent")
	svc.Learn("Groceries")
	svc.Learn("Groceries")
	svc.Learn("Salary")

	// Groceries used twice, then the tie between Rent and Salary falls to
	// whichever was seen last.
	assert.Equal(t, []string{"Groceries", "Salary", "Rent"}, svc.Suggestions())
}

func TestLearn_IgnoresBlankDescriptions(t *testing.T) {
	svc := matching.NewService(store.New())

	svc.Learn("")
	svc.Learn("   ")

	assert.Empty(t, svc.Suggestions())
}

func TestSuggestions_Capped(t *testing.T) {
	svc := matching.NewService(store.New())

	for _, d := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		svc.Learn(d)
	}

	assert.Len(t, svc.Suggestions(), 10)
}
