package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kaepilz/ghar-joy/internal/models"
	"github.com/Kaepilz/ghar-joy/internal/progression"
	"github.com/Kaepilz/ghar-joy/internal/store"
)

// BootstrapSession creates the session user on first visit or re-binds an
// existing account as the current user. This replaces the auth sync the
// hosted version would do against a real identity provider.
func (h *HTTPHandler) BootstrapSession(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Avatar   string `json:"avatar"`
		Bio      string `json:"bio"`
		Location string `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if existing, ok := h.store.UserByUsername(req.Username); ok {
		if err := h.store.SetCurrentUser(existing.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, existing)
		return
	}

	u := h.store.AddUser(models.User{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Avatar:   req.Avatar,
		Bio:      req.Bio,
		Location: req.Location,
	})
	if err := h.store.SetCurrentUser(u.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, u)
}

// GetUsers returns all users
func (h *HTTPHandler) GetUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Users())
}

// GetUserByID returns a user by ID
func (h *HTTPHandler) GetUserByID(c *gin.Context) {
	u, ok := h.store.UserByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateProfile edits the editable profile fields. Name and email are
// required; everything else may be blanked.
func (h *HTTPHandler) UpdateProfile(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Avatar   string `json:"avatar"`
		Bio      string `json:"bio"`
		Location string `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := h.store.UpdateProfile(c.Param("id"), store.ProfileUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Avatar:   req.Avatar,
		Bio:      req.Bio,
		Location: req.Location,
	})
	if errors.Is(err, store.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, u)
}

// GetUserLevel resolves the user's XP against the level table.
func (h *HTTPHandler) GetUserLevel(c *gin.Context) {
	u, ok := h.store.UserByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, progression.Resolve(u.XP))
}

// GrantXP awards XP either by named action or by raw amount.
func (h *HTTPHandler) GrantXP(c *gin.Context) {
	var req struct {
		Action string `json:"action"`
		Amount int    `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amount := req.Amount
	if req.Action != "" {
		xp, err := progression.XPForAction(progression.Action(req.Action))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		amount = xp
	}
	if amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "action or positive amount required"})
		return
	}

	grant, err := h.store.AddXP(c.Param("id"), amount)
	if errors.Is(err, store.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, grant)
}

// EarnTokens credits bazaar tokens.
func (h *HTTPHandler) EarnTokens(c *gin.Context) {
	var req struct {
		Amount int `json:"amount" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.AddBazaarTokens(c.Param("id"), req.Amount); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	u, _ := h.store.UserByID(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"bazaarTokens": u.BazaarTokens})
}

// SpendTokens debits bazaar tokens; an uncovered spend fails and leaves the
// balance untouched.
func (h *HTTPHandler) SpendTokens(c *gin.Context) {
	var req struct {
		Amount int `json:"amount" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.store.SpendBazaarTokens(c.Param("id"), req.Amount)
	if errors.Is(err, store.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if errors.Is(err, store.ErrInsufficientTokens) {
		c.JSON(http.StatusConflict, gin.H{"error": "Insufficient bazaar tokens"})
		return
	}
	u, _ := h.store.UserByID(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"bazaarTokens": u.BazaarTokens})
}

// AddFriend links two users; the relation is symmetric.
func (h *HTTPHandler) AddFriend(c *gin.Context) {
	var req struct {
		UserID   string `json:"userId" binding:"required"`
		FriendID string `json:"friendId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.store.AddFriend(req.UserID, req.FriendID)
	if errors.Is(err, store.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "friends"})
}

// RemoveFriend unlinks both directions.
func (h *HTTPHandler) RemoveFriend(c *gin.Context) {
	var req struct {
		UserID   string `json:"userId" binding:"required"`
		FriendID string `json:"friendId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.RemoveFriend(req.UserID, req.FriendID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

// GetMutualFriends returns users befriended by both query users.
func (h *HTTPHandler) GetMutualFriends(c *gin.Context) {
	user1 := c.Query("user1")
	user2 := c.Query("user2")
	if user1 == "" || user2 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user1 and user2 are required"})
		return
	}
	mutual := h.store.MutualFriends(user1, user2)
	if mutual == nil {
		mutual = []models.User{}
	}
	c.JSON(http.StatusOK, mutual)
}
