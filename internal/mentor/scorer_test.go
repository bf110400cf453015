package mentor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreListingComplete(t *testing.T) {
	draft := ListingDraft{
		Title:       "iPhone 12 Pro 128GB Blue",
		Description: "Barely used, bought last year. Comes with original box and charger.",
		Price:       85000,
		Images:      []string{"https://example.com/phone.jpg"},
	}

	a := ScoreListing(draft)
	assert.Equal(t, 100, a.Score)
	assert.Empty(t, a.Issues)
	assert.Contains(t, a.Verdict, "Excellent")
	// A clean draft still gets one encouraging suggestion.
	assert.Len(t, a.Suggestions, 1)
	assert.Len(t, a.QuickActions, 1)
}

func TestScoreListingPenalties(t *testing.T) {
	base := ListingDraft{
		Title:       "iPhone 12 Pro 128GB Blue",
		Description: "Barely used, bought last year. Comes with original box and charger.",
		Price:       85000,
		Images:      []string{"https://example.com/phone.jpg"},
	}

	tests := []struct {
		name   string
		mutate func(*ListingDraft)
		score  int
	}{
		{"short title", func(d *ListingDraft) { d.Title = "Phone" }, 80},
		{"short description", func(d *ListingDraft) { d.Description = "Good phone" }, 75},
		{"missing price", func(d *ListingDraft) { d.Price = 0 }, 70},
		{"negative price", func(d *ListingDraft) { d.Price = -100 }, 70},
		{"no images", func(d *ListingDraft) { d.Images = nil }, 75},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			draft := base
			tc.mutate(&draft)
			a := ScoreListing(draft)
			assert.Equal(t, tc.score, a.Score)
			assert.Len(t, a.Issues, 1)
			assert.Len(t, a.Suggestions, 1)
		})
	}
}

func TestScoreListingEmptyDraftFloorsAtZero(t *testing.T) {
	a := ScoreListing(ListingDraft{})
	assert.Equal(t, 0, a.Score)
	assert.Len(t, a.Issues, 4)
	assert.Contains(t, a.Verdict, "improve")
}

func TestScoreListingIssueOrder(t *testing.T) {
	// Issues come out in field order: title, description, price, images.
	a := ScoreListing(ListingDraft{})
	assert.Equal(t, []string{
		"Title is too short - add more details",
		"Description needs more detail",
		"Price not set",
		"No photos uploaded",
	}, a.Issues)
}

func TestScoreListingBoundaryLengths(t *testing.T) {
	draft := ListingDraft{
		Title:       "0123456789",                     // exactly 10
		Description: "012345678901234567890123456789", // exactly 30
		Price:       1,
		Images:      []string{"img"},
	}
	a := ScoreListing(draft)
	assert.Equal(t, 100, a.Score)
}
