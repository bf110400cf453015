// Package bargain implements the negotiation bot's counter-offer policy.
//
// The policy is buyer-offer driven: the discount the buyer asked for decides
// the tier, and the tier decides the counter price. Negotiation rounds are
// tracked and capped at 3 but only influence the wording, never the number.
package bargain

import (
	"errors"
	"fmt"
	"math"
	mathrand "math/rand"
)

var (
	// ErrInvalidOffer is returned for non-positive prices or offers.
	ErrInvalidOffer = errors.New("bargain: price and offer must be positive")
	// ErrOfferAboveAsking is returned when the buyer offers the asking price or more.
	ErrOfferAboveAsking = errors.New("bargain: offer is not below the asking price")
)

// MaxRound caps negotiation rounds; anything higher behaves like round 3.
const MaxRound = 3

// Offer is the bot's response to a buyer offer.
type Offer struct {
	CounterPrice int     `json:"counterPrice"`
	PercentOff   float64 `json:"percentOff"` // discount the buyer asked for
	Round        int     `json:"round"`
	Message      string  `json:"message"`
}

// Resolve computes the counter-offer for a buyer offer against the asking
// price. round is the negotiation turn, starting at 1.
func Resolve(originalPrice, buyerOffer, round int) (Offer, error) {
	if originalPrice <= 0 || buyerOffer <= 0 {
		return Offer{}, ErrInvalidOffer
	}
	if buyerOffer >= originalPrice {
		return Offer{}, ErrOfferAboveAsking
	}
	if round < 1 {
		round = 1
	}
	if round > MaxRound {
		round = MaxRound
	}

	difference := originalPrice - buyerOffer
	percentOff := float64(difference) / float64(originalPrice) * 100

	var counter int
	var message string
	switch {
	case percentOff > 30:
		counter = int(math.Round(float64(originalPrice+buyerOffer) / 2))
		message = fmt.Sprintf(
			"The seller's price is Rs. %d. Your offer is %.1f%% lower. How about meeting at Rs. %d?",
			originalPrice, percentOff, counter)
	case percentOff > 15:
		counter = int(math.Round(float64(originalPrice) * 0.90))
		message = fmt.Sprintf("That's a reasonable offer! I'll suggest Rs. %d to the seller.", counter)
	default:
		counter = buyerOffer + int(math.Round(float64(difference)/2))
		message = fmt.Sprintf(
			"Great! Your offer is close to the asking price. The seller might accept Rs. %d.", counter)
	}

	if round == MaxRound {
		message += " This is my final suggestion, milau na ta! 🤝"
	}

	return Offer{
		CounterPrice: counter,
		PercentOff:   percentOff,
		Round:        round,
		Message:      message,
	}, nil
}

// greetings are the bot's opening lines in the chat flow.
var greetings = []string{
	"Namaste! 🙏 I can help you get a better deal! Tell me which product you're interested in.",
	"Hi there! Ready to negotiate? I'll help you get the best price while keeping it fair for the seller! 😊",
	"Hello! I'm your friendly negotiation assistant. Let's find a price that makes everyone happy! 🤝",
	"Bargain mode activated! 💪 Which product caught your eye? Let's see if we can get you a better deal.",
}

// Greeter picks canned bot greetings with an injected random source.
type Greeter struct {
	rng *mathrand.Rand
}

func NewGreeter(rng *mathrand.Rand) *Greeter {
	return &Greeter{rng: rng}
}

// Greeting returns one of the canned opening lines.
func (g *Greeter) Greeting() string {
	return greetings[g.rng.Intn(len(greetings))]
}
