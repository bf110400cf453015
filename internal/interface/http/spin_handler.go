package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kaepilz/ghar-joy/internal/models"
	"github.com/Kaepilz/ghar-joy/internal/rewards"
	"github.com/Kaepilz/ghar-joy/internal/store"
)

// GetSpins returns the spin allowance and every recorded result.
func (h *HTTPHandler) GetSpins(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"spinsAvailable": h.store.SpinsAvailable(),
		"results":        h.store.SpinResults(),
	})
}

// Spin consumes one spin, picks a wheel segment, applies its side effects,
// and records the unclaimed result. With zero spins left it fails without
// touching any state.
func (h *HTTPHandler) Spin(c *gin.Context) {
	var req struct {
		UserID string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, ok := h.store.UserByID(req.UserID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	left, err := h.store.UseSpin()
	if errors.Is(err, store.ErrNoSpinsLeft) {
		c.JSON(http.StatusConflict, gin.H{"error": "No spins available"})
		return
	}

	prize := h.selector.Select(rewards.Wheel)

	// Prize side effects, as on the original spin page.
	switch prize.Type {
	case models.SpinToken:
		// No wheel segment carries this type today; ClassifyPrize can still
		// produce it for token-labelled prizes.
		_ = h.store.AddBazaarTokens(req.UserID, rewards.TokensPerTokenPrize)
	case models.SpinGift:
		_ = h.store.AddBazaarTokens(req.UserID, rewards.TokensPerGiftPrize)
	case models.SpinExtraSpin:
		left = h.store.GrantSpin()
	}

	grant, err := h.store.AddXP(req.UserID, rewards.XPPerSpin)
	if err != nil {
		h.log.Warnw("spin xp grant failed", "user", req.UserID, "error", err)
	}

	result := h.store.AddSpinResult(models.SpinResult{
		Type:  prize.Type,
		Value: prize.Label,
	})

	c.JSON(http.StatusOK, gin.H{
		"result":         result,
		"spinsAvailable": left,
		"xp":             grant,
	})
}

// GrantSpin adds one spin to the allowance.
func (h *HTTPHandler) GrantSpin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"spinsAvailable": h.store.GrantSpin()})
}

// ClaimSpin flips a result to claimed; the transition is one-way.
func (h *HTTPHandler) ClaimSpin(c *gin.Context) {
	result, err := h.store.ClaimSpinResult(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Spin result not found"})
		return
	}
	c.JSON(http.StatusOK, result)
}
