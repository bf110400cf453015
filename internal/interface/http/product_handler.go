package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kaepilz/ghar-joy/internal/models"
	"github.com/Kaepilz/ghar-joy/internal/progression"
)

// GetProducts returns all listings.
func (h *HTTPHandler) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Products())
}

// GetProductByID returns a listing by ID.
func (h *HTTPHandler) GetProductByID(c *gin.Context) {
	p, ok := h.store.ProductByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetUserProducts returns a seller's listings.
func (h *HTTPHandler) GetUserProducts(c *gin.Context) {
	products := h.store.ProductsBySeller(c.Param("id"))
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}

// CreateProduct uploads a listing. Title, positive price, and at least one
// image are required; the seller must exist; products are immutable after
// this point. Listing grants the seller the productListed XP reward.
func (h *HTTPHandler) CreateProduct(c *gin.Context) {
	var req struct {
		Title       string   `json:"title" binding:"required"`
		Description string   `json:"description"`
		Price       int      `json:"price" binding:"required,min=1"`
		Condition   string   `json:"condition" binding:"required"`
		Category    string   `json:"category"`
		Images      []string `json:"images" binding:"required,min=1"`
		SellerID    string   `json:"sellerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidCondition(req.Condition) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "condition must be new, almostNew, or used"})
		return
	}
	if _, ok := h.store.UserByID(req.SellerID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Seller not found"})
		return
	}

	p := h.store.AddProduct(models.Product{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Condition:   req.Condition,
		Category:    req.Category,
		Images:      req.Images,
		SellerID:    req.SellerID,
	})

	if xp, err := progression.XPForAction(progression.ActionProductListed); err == nil {
		if _, err := h.store.AddXP(req.SellerID, xp); err != nil {
			h.log.Warnw("listing xp grant failed", "seller", req.SellerID, "error", err)
		}
	}

	c.JSON(http.StatusCreated, p)
}
