package http

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kaepilz/ghar-joy/internal/models"
	"github.com/Kaepilz/ghar-joy/internal/store"
)

func dialWS(t *testing.T, srv *httptest.Server, path string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + path
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestMentorSocketTurn(t *testing.T) {
	router, st := newTestRouter(t)
	srv := httptest.NewServer(router)
	defer srv.Close()

	conn := dialWS(t, srv, "/ws/mentor")
	require.NoError(t, conn.WriteJSON(wsTurn{Content: "any tips for photos?"}))

	var msg models.ChatMessage
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, models.SenderAI, msg.Sender)
	assert.NotEmpty(t, msg.Content)

	// Both sides of the turn landed in the shared log.
	assert.Len(t, st.ChatMessages(store.MentorChat), 2)
}

func TestBargainSocketCounters(t *testing.T) {
	router, _ := newTestRouter(t)
	srv := httptest.NewServer(router)
	defer srv.Close()

	conn := dialWS(t, srv, "/ws/bargain")
	require.NoError(t, conn.WriteJSON(wsTurn{
		Content: "can you do 800?", OriginalPrice: 1000, Offer: 800, Round: 1,
	}))

	var msg models.ChatMessage
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Contains(t, msg.Content, "900")
}

func TestBargainSocketRejectsBadOffer(t *testing.T) {
	router, _ := newTestRouter(t)
	srv := httptest.NewServer(router)
	defer srv.Close()

	conn := dialWS(t, srv, "/ws/bargain")
	require.NoError(t, conn.WriteJSON(wsTurn{
		Content: "free please", OriginalPrice: 1000, Offer: 1500, Round: 1,
	}))

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&resp))
	assert.NotEmpty(t, resp.Error)
}
