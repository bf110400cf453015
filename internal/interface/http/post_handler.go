package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kaepilz/ghar-joy/internal/models"
	"github.com/Kaepilz/ghar-joy/internal/store"
)

// GetPosts returns the community feed, newest first.
func (h *HTTPHandler) GetPosts(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Posts())
}

// GetUserPosts returns one user's posts.
func (h *HTTPHandler) GetUserPosts(c *gin.Context) {
	posts := h.store.PostsByUser(c.Param("id"))
	if posts == nil {
		posts = []models.Post{}
	}
	c.JSON(http.StatusOK, posts)
}

// CreatePost publishes a post, optionally linked to a product.
func (h *HTTPHandler) CreatePost(c *gin.Context) {
	var req struct {
		UserID    string `json:"userId" binding:"required"`
		Content   string `json:"content" binding:"required"`
		ProductID string `json:"productId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, ok := h.store.UserByID(req.UserID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if req.ProductID != "" {
		if _, ok := h.store.ProductByID(req.ProductID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
	}

	p := h.store.AddPost(models.Post{
		UserID:    req.UserID,
		Content:   req.Content,
		ProductID: req.ProductID,
	})
	c.JSON(http.StatusCreated, p)
}

// LikePost records a like; liking twice changes nothing.
func (h *HTTPHandler) LikePost(c *gin.Context) {
	var req struct {
		UserID string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.store.LikePost(c.Param("id"), req.UserID)
	if errors.Is(err, store.ErrPostNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// UnlikePost removes a like; unliking a non-liker is a no-op.
func (h *HTTPHandler) UnlikePost(c *gin.Context) {
	var req struct {
		UserID string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.store.UnlikePost(c.Param("id"), req.UserID)
	if errors.Is(err, store.ErrPostNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// AddComment appends a comment to a post.
func (h *HTTPHandler) AddComment(c *gin.Context) {
	var req struct {
		UserID  string `json:"userId" binding:"required"`
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.store.AddComment(c.Param("id"), models.Comment{
		UserID:  req.UserID,
		Content: req.Content,
	})
	if errors.Is(err, store.ErrPostNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// AddToWishlist saves a (user, product) pair; duplicates are a no-op.
func (h *HTTPHandler) AddToWishlist(c *gin.Context) {
	var req struct {
		UserID    string `json:"userId" binding:"required"`
		ProductID string `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, ok := h.store.UserByID(req.UserID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if _, ok := h.store.ProductByID(req.ProductID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	item := h.store.AddToWishlist(req.UserID, req.ProductID)
	c.JSON(http.StatusOK, item)
}

// RemoveFromWishlist drops a pair; a missing pair is a no-op.
func (h *HTTPHandler) RemoveFromWishlist(c *gin.Context) {
	var req struct {
		UserID    string `json:"userId" binding:"required"`
		ProductID string `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.store.RemoveFromWishlist(req.UserID, req.ProductID)
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

// GetUserWishlist returns a user's wishlist entries.
func (h *HTTPHandler) GetUserWishlist(c *gin.Context) {
	items := h.store.WishlistByUser(c.Param("id"))
	if items == nil {
		items = []models.WishlistItem{}
	}
	c.JSON(http.StatusOK, items)
}
