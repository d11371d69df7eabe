package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/d60-Lab/lazybook/internal/api/middleware"
	"github.com/d60-Lab/lazybook/internal/chat"
	"github.com/d60-Lab/lazybook/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// Cross-origin policy is handled at the edge; the token requirement below
	// is what actually gates the connection.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Chat upgrades the request to a websocket connection for sending and
// receiving direct messages. The connection only opens for callers that
// passed the auth middleware (bearer header or access_token query); it then
// stays registered in the hub until the peer goes away.
func (h *Handler) Chat(c *gin.Context) {
	userID := middleware.UserID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	client := chat.NewClient(h.hub, conn, userID)
	h.hub.Register(client)
	go client.WriteLoop()

	logger.Info("chat connection open", zap.String("user", userID))
	client.ReadLoop(func(payload []byte) {
		h.handleChatFrame(client, payload)
	})

	h.hub.Unregister(client)
	client.Close()
	logger.Info("chat connection closed", zap.String("user", userID))
}

// handleChatFrame processes one inbound send-message frame. All failures are
// reported to the calling connection only; nothing is persisted on error.
func (h *Handler) handleChatFrame(client *chat.Client, payload []byte) {
	var req chat.SendMessageRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		client.Enqueue(chat.ErrorEvent("malformed message"))
		return
	}
	// Length is in characters, matching the validator max= semantics on the
	// HTTP side and the column width.
	if req.RecipientUsername == "" || req.Text == "" || utf8.RuneCountInString(req.Text) > 1000 {
		client.Enqueue(chat.ErrorEvent("recipient_username and text (at most 1000 chars) are required"))
		return
	}
	// The request context died with the upgrade; each frame gets its own.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	view, recipientID, err := h.chatService.SendMessage(
		ctx, client.UserID(), req.RecipientUsername, req.Text)
	if err != nil {
		client.Enqueue(chat.ErrorEvent(err.Error()))
		return
	}
	event := chat.MessageEvent(view)
	// Every open connection of the recipient gets the event; the sender's
	// other connections do not, only the one that made the call.
	h.hub.SendToUser(recipientID, event)
	client.Enqueue(event)
}
