// Package rewards implements the spin wheel: a fixed segment table and a
// uniform-random selector. Randomness comes from an injected source so tests
// can pin outcomes; it is cosmetic, not adversarial.
package rewards

import (
	mathrand "math/rand"
	"strings"

	"github.com/Kaepilz/ghar-joy/internal/models"
)

// Option is one wheel segment.
type Option struct {
	Label      string `json:"label"`
	Type       string `json:"type"` // models.Spin* value
	Color      string `json:"color"`
	IsFreeGift bool   `json:"isFreeGift,omitempty"`
}

// Wheel is the fixed segment table shown on the spin page.
var Wheel = []Option{
	{Label: "🎁 Free Gift!", Type: models.SpinGift, Color: "text-pink-500", IsFreeGift: true},
	{Label: "💸 99% OFF", Type: models.SpinDiscount, Color: "text-red-500"},
	{Label: "🧦 Free Socks!", Type: models.SpinGift, Color: "text-blue-500", IsFreeGift: true},
	{Label: "🚚 Free Shipping", Type: models.SpinShipping, Color: "text-green-500"},
	{Label: "🎉 Double Spin", Type: models.SpinExtraSpin, Color: "text-purple-500"},
	{Label: "🎁 Mystery Box", Type: models.SpinGift, Color: "text-orange-500", IsFreeGift: true},
}

// Token/XP side effects applied when a spin lands.
const (
	TokensPerTokenPrize = 5
	TokensPerGiftPrize  = 3
	XPPerSpin           = 15
)

// Selector picks wheel segments.
type Selector struct {
	rng *mathrand.Rand
}

// NewSelector returns a selector drawing from rng.
func NewSelector(rng *mathrand.Rand) *Selector {
	return &Selector{rng: rng}
}

// Select picks a uniform-random option from the table. Each call is
// independent; repeats are allowed.
func (s *Selector) Select(table []Option) Option {
	return table[s.rng.Intn(len(table))]
}

// ClassifyPrize maps a prize label onto a SpinResult type. Follows the label
// keyword matching the spin page uses.
func ClassifyPrize(label string) string {
	lower := strings.ToLower(label)
	switch {
	case strings.Contains(lower, "token"):
		return models.SpinToken
	case strings.Contains(lower, "spin"):
		return models.SpinExtraSpin
	case strings.Contains(lower, "gift"), strings.Contains(lower, "box"), strings.Contains(lower, "socks"):
		return models.SpinGift
	case strings.Contains(lower, "shipping"):
		return models.SpinShipping
	default:
		return models.SpinDiscount
	}
}
