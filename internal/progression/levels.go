// Package progression implements the XP level system: a static level table
// and the resolver that maps a cumulative XP value onto it.
package progression

// Level is one tier of the static level table.
type Level struct {
	Level      int    `json:"level"`
	Title      string `json:"title"`
	Emoji      string `json:"emoji"`
	XPRequired int    `json:"xpRequired"`
	Color      string `json:"color"`
}

// Levels is ordered ascending by XPRequired and never mutated at runtime.
var Levels = []Level{
	{Level: 1, Title: "Beginner Trader", Emoji: "🌱", XPRequired: 0, Color: "text-green-500"},
	{Level: 2, Title: "Active Shopper", Emoji: "🛍️", XPRequired: 100, Color: "text-blue-500"},
	{Level: 3, Title: "Smart Seller", Emoji: "💼", XPRequired: 300, Color: "text-purple-500"},
	{Level: 4, Title: "Trusted Trader", Emoji: "💎", XPRequired: 600, Color: "text-cyan-500"},
	{Level: 5, Title: "Market Expert", Emoji: "⭐", XPRequired: 1000, Color: "text-yellow-500"},
	{Level: 6, Title: "Elite Merchant", Emoji: "👑", XPRequired: 1500, Color: "text-amber-500"},
	{Level: 7, Title: "Market Legend", Emoji: "🔥", XPRequired: 2500, Color: "text-orange-500"},
}

// Info describes where a given XP value sits in the level table.
type Info struct {
	Level           `json:"current"`
	NextLevel       *Level  `json:"nextLevel,omitempty"` // nil at max level
	ProgressPercent float64 `json:"progressPercent"`     // 0..100, 100 at max level
}

// Resolve returns the level info for a cumulative XP value. XP exactly at a
// threshold maps to that level. Negative values are treated as zero.
func Resolve(xp int) Info {
	if xp < 0 {
		xp = 0
	}

	idx := 0
	for i := len(Levels) - 1; i >= 0; i-- {
		if xp >= Levels[i].XPRequired {
			idx = i
			break
		}
	}

	info := Info{Level: Levels[idx], ProgressPercent: 100}
	if idx < len(Levels)-1 {
		next := Levels[idx+1]
		info.NextLevel = &next
		span := next.XPRequired - Levels[idx].XPRequired
		info.ProgressPercent = float64(xp-Levels[idx].XPRequired) / float64(span) * 100
	}
	return info
}

// LevelFor is a shorthand for Resolve(xp).Level.Level.
func LevelFor(xp int) int {
	return Resolve(xp).Level.Level
}
