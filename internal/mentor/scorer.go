// Package mentor implements the seller mentor: a deterministic listing
// quality scorer and the canned-reply chat engine behind the mentor persona.
package mentor

// Minimum field lengths before a listing draft is penalized.
const (
	MinTitleLen       = 10
	MinDescriptionLen = 30
)

// Fixed penalties per weak field.
const (
	penaltyTitle       = 20
	penaltyDescription = 25
	penaltyPrice       = 30
	penaltyImages      = 25
)

// ListingDraft is the partially-filled product a seller is composing.
// Zero values mean "not provided yet".
type ListingDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Images      []string `json:"images"`
}

// Analysis is the mentor's verdict on a listing draft.
type Analysis struct {
	Score        int      `json:"score"` // 0..100
	Verdict      string   `json:"verdict"`
	Issues       []string `json:"issues"`
	Suggestions  []string `json:"suggestions"`
	QuickActions []string `json:"quickActions"`
}

// ScoreListing starts at 100 and subtracts a fixed penalty per weak field,
// checked in a fixed order: title, description, price, images. The score
// floors at zero. Each triggered penalty contributes one issue and one
// matching suggestion.
func ScoreListing(draft ListingDraft) Analysis {
	a := Analysis{Score: 100}

	if len(draft.Title) < MinTitleLen {
		a.Score -= penaltyTitle
		a.Issues = append(a.Issues, "Title is too short - add more details")
		a.Suggestions = append(a.Suggestions, "Use a descriptive title mentioning brand, model, and condition")
		a.QuickActions = append(a.QuickActions, "Improve title")
	}
	if len(draft.Description) < MinDescriptionLen {
		a.Score -= penaltyDescription
		a.Issues = append(a.Issues, "Description needs more detail")
		a.Suggestions = append(a.Suggestions, "Write a detailed description highlighting key features and benefits")
		a.QuickActions = append(a.QuickActions, "Expand description")
	}
	if draft.Price <= 0 {
		a.Score -= penaltyPrice
		a.Issues = append(a.Issues, "Price not set")
		a.Suggestions = append(a.Suggestions, "Set a fair price - check similar listings for reference")
		a.QuickActions = append(a.QuickActions, "Set price")
	}
	if len(draft.Images) == 0 {
		a.Score -= penaltyImages
		a.Issues = append(a.Issues, "No photos uploaded")
		a.Suggestions = append(a.Suggestions, "Add 3-5 high-quality images showing different angles")
		a.QuickActions = append(a.QuickActions, "Add photos")
	}

	if a.Score < 0 {
		a.Score = 0
	}

	switch {
	case a.Score >= 90:
		a.Verdict = "Excellent listing! Your product looks great and will attract many buyers. 🎉"
	case a.Score >= 70:
		a.Verdict = "Good start! A few quick improvements will make this listing even better. 👍"
	case a.Score >= 50:
		a.Verdict = "Your listing needs some work. Follow the quick actions below to improve it. 💪"
	default:
		a.Verdict = "Let's improve this listing together! Complete the missing information to attract buyers. 🚀"
	}

	if len(a.Issues) == 0 {
		a.Suggestions = append(a.Suggestions, "Your listing looks great! Consider promoting it during peak hours.")
		a.QuickActions = append(a.QuickActions, "Share your listing")
	}

	return a
}
