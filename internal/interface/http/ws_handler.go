package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Kaepilz/ghar-joy/internal/bargain"
	"github.com/Kaepilz/ghar-joy/internal/models"
	"github.com/Kaepilz/ghar-joy/internal/store"
)

const (
	wsWriteWait      = 10 * time.Second
	wsMaxMessageSize = 2048
)

var upgrader = websocket.Upgrader{
	// Same trust model as the REST CORS setup: any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsTurn is one inbound chat frame from the client.
type wsTurn struct {
	Content       string `json:"content"`
	OriginalPrice int    `json:"originalPrice,omitempty"`
	Offer         int    `json:"offer,omitempty"`
	Round         int    `json:"round,omitempty"`
}

// MentorSocket streams mentor chat turns over a websocket.
func (h *HTTPHandler) MentorSocket(c *gin.Context) {
	h.botSocket(c, store.MentorChat, func(turn wsTurn) (string, error) {
		return h.replier.Reply(turn.Content), nil
	})
}

// BargainSocket streams bargain chat turns over a websocket.
func (h *HTTPHandler) BargainSocket(c *gin.Context) {
	h.botSocket(c, store.BargainChat, func(turn wsTurn) (string, error) {
		if turn.OriginalPrice == 0 && turn.Offer == 0 {
			return h.greeter.Greeting(), nil
		}
		offer, err := bargain.Resolve(turn.OriginalPrice, turn.Offer, turn.Round)
		if err != nil {
			return "", err
		}
		return offer.Message, nil
	})
}

// botSocket runs the read loop for one bot conversation: read a turn,
// record it, pause for the thinking delay, reply. The loop ends when the
// client disconnects.
func (h *HTTPHandler) botSocket(c *gin.Context, log store.ChatLog, respond func(wsTurn) (string, error)) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warnw("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(wsMaxMessageSize)

	ctx := c.Request.Context()
	for {
		var turn wsTurn
		if err := conn.ReadJSON(&turn); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warnw("websocket read failed", "log", log, "error", err)
			}
			return
		}
		if turn.Content == "" {
			continue
		}

		h.store.AppendChatMessage(log, models.ChatMessage{
			Sender:  models.SenderUser,
			Content: turn.Content,
		})

		reply, err := respond(turn)
		if err != nil {
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if werr := conn.WriteJSON(gin.H{"error": err.Error()}); werr != nil {
				return
			}
			continue
		}

		if err := h.delay(ctx, h.thinkDelay); err != nil {
			return
		}

		msg := h.store.AppendChatMessage(log, models.ChatMessage{
			Sender:  models.SenderAI,
			Content: reply,
		})
		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		if err := conn.WriteJSON(msg); err != nil {
			return
		}
	}
}
