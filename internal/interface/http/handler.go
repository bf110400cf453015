// Package http is the gin surface over the store and the rule engines.
// Handlers stay thin: bind, call a store mutator or engine, reply.
package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Kaepilz/ghar-joy/internal/bargain"
	"github.com/Kaepilz/ghar-joy/internal/mentor"
	"github.com/Kaepilz/ghar-joy/internal/rewards"
	"github.com/Kaepilz/ghar-joy/internal/store"
)

// Delayer simulates bot thinking time before a reply. It must honor ctx
// cancellation so tests and shutdown never hang on a cosmetic pause.
type Delayer func(ctx context.Context, d time.Duration) error

// SleepDelayer waits on a timer or the context, whichever fires first.
func SleepDelayer(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NoDelay skips the pause entirely. Used by tests.
func NoDelay(context.Context, time.Duration) error { return nil }

// HTTPHandler represents the HTTP server
type HTTPHandler struct {
	store      *store.Store
	selector   *rewards.Selector
	replier    *mentor.Replier
	greeter    *bargain.Greeter
	log        *zap.SugaredLogger
	thinkDelay time.Duration
	delay      Delayer
}

// Options wires the handler's collaborators.
type Options struct {
	Store    *store.Store
	Selector *rewards.Selector
	Replier  *mentor.Replier
	Greeter  *bargain.Greeter
	Logger   *zap.SugaredLogger
	// ThinkDelay is the simulated bot thinking time before chat replies.
	ThinkDelay time.Duration
	// Delay defaults to SleepDelayer.
	Delay Delayer
}

// NewHTTPHandler creates a new HTTP handler
func NewHTTPHandler(opts Options) *HTTPHandler {
	delay := opts.Delay
	if delay == nil {
		delay = SleepDelayer
	}
	return &HTTPHandler{
		store:      opts.Store,
		selector:   opts.Selector,
		replier:    opts.Replier,
		greeter:    opts.Greeter,
		log:        opts.Logger,
		thinkDelay: opts.ThinkDelay,
		delay:      delay,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *HTTPHandler) RegisterRoutes(router *gin.Engine, limiter *RateLimiter) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// Bot websockets sit outside the /api group: the upgrade handshake
	// must not be rate limited per request.
	router.GET("/ws/mentor", h.MentorSocket)
	router.GET("/ws/bargain", h.BargainSocket)

	api := router.Group("/api")
	if limiter != nil {
		api.Use(limiter.Middleware())
	}
	{
		// Session & user routes
		api.POST("/session", h.BootstrapSession)
		api.GET("/users", h.GetUsers)
		api.GET("/users/:id", h.GetUserByID)
		api.PUT("/users/:id", h.UpdateProfile)
		api.GET("/users/:id/products", h.GetUserProducts)
		api.GET("/users/:id/posts", h.GetUserPosts)
		api.GET("/users/:id/wishlist", h.GetUserWishlist)
		api.GET("/users/:id/level", h.GetUserLevel)
		api.POST("/users/:id/xp", h.GrantXP)
		api.POST("/users/:id/tokens", h.EarnTokens)
		api.POST("/users/:id/tokens/spend", h.SpendTokens)

		// Friend routes
		api.POST("/friends", h.AddFriend)
		api.DELETE("/friends", h.RemoveFriend)
		api.GET("/friends/mutual", h.GetMutualFriends)

		// Product routes
		api.GET("/products", h.GetProducts)
		api.GET("/products/:id", h.GetProductByID)
		api.POST("/products", h.CreateProduct)

		// Post routes
		api.GET("/posts", h.GetPosts)
		api.POST("/posts", h.CreatePost)
		api.POST("/posts/:id/likes", h.LikePost)
		api.DELETE("/posts/:id/likes", h.UnlikePost)
		api.POST("/posts/:id/comments", h.AddComment)

		// Wishlist routes
		api.POST("/wishlist", h.AddToWishlist)
		api.DELETE("/wishlist", h.RemoveFromWishlist)

		// Spin routes
		api.GET("/spins", h.GetSpins)
		api.POST("/spins", h.Spin)
		api.POST("/spins/grant", h.GrantSpin)
		api.POST("/spins/:id/claim", h.ClaimSpin)

		// Mentor routes
		api.POST("/mentor/analyze", h.AnalyzeListing)
		api.POST("/mentor/messages", h.MentorMessage)
		api.GET("/mentor/messages", h.GetMentorMessages)
		api.DELETE("/mentor/messages", h.ClearMentorMessages)

		// Bargain routes
		api.POST("/bargain/counter", h.BargainCounter)
		api.POST("/bargain/messages", h.BargainMessage)
		api.GET("/bargain/messages", h.GetBargainMessages)
		api.DELETE("/bargain/messages", h.ClearBargainMessages)
	}
}

// CORSMiddleware mirrors the permissive CORS setup of the original frontend
// pairing: any origin, preflight short-circuited.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	}
}
