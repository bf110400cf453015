package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kaepilz/ghar-joy/internal/bargain"
	"github.com/Kaepilz/ghar-joy/internal/mentor"
	"github.com/Kaepilz/ghar-joy/internal/models"
	"github.com/Kaepilz/ghar-joy/internal/store"
)

// AnalyzeListing scores a listing draft with the mentor's rule engine.
func (h *HTTPHandler) AnalyzeListing(c *gin.Context) {
	var req struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Price       int      `json:"price"`
		Images      []string `json:"images"`
		ProductID   string   `json:"productId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft := mentor.ListingDraft{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
	}
	// Analyzing an existing listing by ID beats re-sending its fields.
	if req.ProductID != "" {
		p, ok := h.store.ProductByID(req.ProductID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		draft = mentor.ListingDraft{
			Title:       p.Title,
			Description: p.Description,
			Price:       p.Price,
			Images:      p.Images,
		}
	}

	c.JSON(http.StatusOK, mentor.ScoreListing(draft))
}

// botTurn appends the user message, pauses for the simulated thinking
// delay, then appends and returns the bot reply.
func (h *HTTPHandler) botTurn(c *gin.Context, log store.ChatLog, content, reply string) {
	h.store.AppendChatMessage(log, models.ChatMessage{
		Sender:  models.SenderUser,
		Content: content,
	})

	if err := h.delay(c.Request.Context(), h.thinkDelay); err != nil {
		// Client went away mid-"thinking"; the user message is already
		// recorded, so just stop.
		c.Status(http.StatusRequestTimeout)
		return
	}

	msg := h.store.AppendChatMessage(log, models.ChatMessage{
		Sender:  models.SenderAI,
		Content: reply,
	})
	c.JSON(http.StatusOK, msg)
}

// MentorMessage runs one mentor chat turn.
func (h *HTTPHandler) MentorMessage(c *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.botTurn(c, store.MentorChat, req.Content, h.replier.Reply(req.Content))
}

// GetMentorMessages returns the mentor conversation log.
func (h *HTTPHandler) GetMentorMessages(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ChatMessages(store.MentorChat))
}

// ClearMentorMessages empties the mentor conversation log.
func (h *HTTPHandler) ClearMentorMessages(c *gin.Context) {
	h.store.ClearChat(store.MentorChat)
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// BargainCounter computes a counter-offer. Non-positive inputs are an
// explicit rejection, not a silent no-op.
func (h *HTTPHandler) BargainCounter(c *gin.Context) {
	var req struct {
		OriginalPrice int `json:"originalPrice"`
		Offer         int `json:"offer"`
		Round         int `json:"round"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	offer, err := bargain.Resolve(req.OriginalPrice, req.Offer, req.Round)
	if errors.Is(err, bargain.ErrInvalidOffer) || errors.Is(err, bargain.ErrOfferAboveAsking) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, offer)
}

// BargainMessage runs one bargain chat turn. With prices attached it
// negotiates; without, the bot introduces itself.
func (h *HTTPHandler) BargainMessage(c *gin.Context) {
	var req struct {
		Content       string `json:"content" binding:"required"`
		OriginalPrice int    `json:"originalPrice"`
		Offer         int    `json:"offer"`
		Round         int    `json:"round"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply := h.greeter.Greeting()
	if req.OriginalPrice != 0 || req.Offer != 0 {
		offer, err := bargain.Resolve(req.OriginalPrice, req.Offer, req.Round)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		reply = offer.Message
	}
	h.botTurn(c, store.BargainChat, req.Content, reply)
}

// GetBargainMessages returns the bargain conversation log.
func (h *HTTPHandler) GetBargainMessages(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ChatMessages(store.BargainChat))
}

// ClearBargainMessages empties the bargain conversation log.
func (h *HTTPHandler) ClearBargainMessages(c *gin.Context) {
	h.store.ClearChat(store.BargainChat)
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
