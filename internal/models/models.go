package models

import "time"

// Condition values accepted for product listings.
const (
	ConditionNew       = "new"
	ConditionAlmostNew = "almostNew"
	ConditionUsed      = "used"
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Avatar       string    `json:"avatar"`
	Bio          string    `json:"bio"`
	Location     string    `json:"location"`
	XP           int       `json:"xp"`
	Level        int       `json:"level"` // always derived from XP, never set directly
	BazaarTokens int       `json:"bazaarTokens"`
	Friends      []string  `json:"friends"` // user IDs, symmetric
	JoinedDate   time.Time `json:"joinedDate"`
}

type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       int       `json:"price"`
	Condition   string    `json:"condition"`
	Category    string    `json:"category"`
	Images      []string  `json:"images"` // first entry is the cover image
	SellerID    string    `json:"sellerId"`
	CreatedAt   time.Time `json:"createdAt"`
	Rating      float64   `json:"rating"`
}

type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	ProductID string    `json:"productId,omitempty"`
	Likes     []string  `json:"likes"` // user IDs, idempotent add/remove
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
}

type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type WishlistItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ProductID string    `json:"productId"`
	AddedAt   time.Time `json:"addedAt"`
}

// Spin reward types, matching the wheel segments.
const (
	SpinDiscount  = "discount"
	SpinShipping  = "shipping"
	SpinToken     = "token"
	SpinExtraSpin = "extraSpin"
	SpinGift      = "gift"
)

type SpinResult struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Value   string `json:"value"`
	Claimed bool   `json:"claimed"` // one-way false -> true
}

// Chat message senders.
const (
	SenderUser = "user"
	SenderAI   = "ai"
)

type ChatMessage struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ValidCondition reports whether s is one of the accepted condition values.
func ValidCondition(s string) bool {
	return s == ConditionNew || s == ConditionAlmostNew || s == ConditionUsed
}
