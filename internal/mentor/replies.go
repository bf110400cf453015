package mentor

import (
	mathrand "math/rand"
	"strings"
)

// topic keys for the canned reply table.
const (
	topicGreeting    = "greeting"
	topicPhotos      = "photos"
	topicPricing     = "pricing"
	topicDescription = "description"
	topicShipping    = "shipping"
	topicDefault     = "default"
)

var replies = map[string][]string{
	topicGreeting: {
		"Namaste! 🙏 I'm here to help you become a successful seller. What would you like to know?",
		"Hello! Ready to boost your sales? Ask me anything about selling on GharJoy!",
		"Hi there! Let's make your products shine! How can I help you today?",
	},
	topicPhotos: {
		"Great question! 📸 Use natural lighting, clean background, and show multiple angles. Customers love clear photos!",
		"Photo tips: 1) Good lighting 2) Clean product 3) Show details 4) Use plain background. This increases trust!",
		"Professional photos can increase sales by 50%! Take photos in daylight near a window. Show front, back, and details.",
	},
	topicPricing: {
		"Pricing tip: Check similar products on GharJoy, consider condition, and be competitive but fair. 💰",
		"For used items: 60-70% of original price is good. For almost new: 80-85%. New items: match market price or slightly lower.",
		"Great question! Look at similar listings, factor in your costs, and remember - fair pricing attracts serious buyers!",
	},
	topicDescription: {
		"Good descriptions answer: What is it? What condition? Why buy it? Include size, color, flaws (if any). Be honest! ✍️",
		"Write like you're talking to a friend. Mention benefits, condition, and anything special. Honesty builds trust!",
		"Pro tip: Use bullet points for features, mention any defects honestly, and explain why you're selling. Buyers appreciate transparency!",
	},
	topicShipping: {
		"For local delivery, offer meetups in safe public places. For shipping, partner with local couriers or use GharJoy partners. 📦",
		"Shipping tips: Pack well, get tracking, and communicate delivery time clearly. Happy buyers leave good reviews!",
		"Offer both pickup and delivery if possible. Local buyers love convenience, and it reduces return chances!",
	},
	topicDefault: {
		"That's a great question! As a general tip: clear photos, honest descriptions, and fair prices are the key to success. What specific area would you like help with?",
		"I'm here to help! 😊 Can you tell me more about what you need assistance with? Pricing, photos, descriptions, or something else?",
		"Good question! The most important things for selling: 1) Clear photos 2) Detailed description 3) Fair price 4) Quick responses. Which one would you like to focus on?",
	},
}

// Replier routes user messages to a topic and picks a canned reply variant
// with an injected random source.
type Replier struct {
	rng *mathrand.Rand
}

func NewReplier(rng *mathrand.Rand) *Replier {
	return &Replier{rng: rng}
}

// Reply returns the mentor's answer to a user message.
func (r *Replier) Reply(userMessage string) string {
	options := replies[routeTopic(userMessage)]
	return options[r.rng.Intn(len(options))]
}

// routeTopic matches keywords in the user's message to a reply topic.
func routeTopic(message string) string {
	lower := strings.ToLower(message)
	switch {
	case containsAny(lower, "photo", "image", "picture"):
		return topicPhotos
	case containsAny(lower, "price", "cost", "kati"):
		return topicPricing
	case containsAny(lower, "description", "detail", "write"):
		return topicDescription
	case containsAny(lower, "ship", "delivery", "courier"):
		return topicShipping
	case containsAny(lower, "hello", "hi", "namaste"):
		return topicGreeting
	default:
		return topicDefault
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
