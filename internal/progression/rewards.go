package progression

import "fmt"

// Action names XP-earning activities.
type Action string

const (
	ActionProductView     Action = "productView"
	ActionProductPurchase Action = "productPurchase"
	ActionProductListed   Action = "productListed"
	ActionProductSold     Action = "productSold"
	ActionSpinWheel       Action = "spinWheel"
	ActionCompleteProfile Action = "completeProfile"
	ActionDailyLogin      Action = "dailyLogin"
	ActionShareProduct    Action = "shareProduct"
	ActionWriteReview     Action = "writeReview"
)

// xpRewards maps actions to the XP they grant.
var xpRewards = map[Action]int{
	ActionProductView:     2,
	ActionProductPurchase: 50,
	ActionProductListed:   30,
	ActionProductSold:     80,
	ActionSpinWheel:       10,
	ActionCompleteProfile: 100,
	ActionDailyLogin:      15,
	ActionShareProduct:    20,
	ActionWriteReview:     25,
}

// XPForAction returns the XP granted for a named action.
func XPForAction(a Action) (int, error) {
	xp, ok := xpRewards[a]
	if !ok {
		return 0, fmt.Errorf("unknown xp action %q", a)
	}
	return xp, nil
}
