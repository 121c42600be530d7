package handlers

import (
	"log"
	"net/http"

	"blog-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// FeedHandler serves the live post feed: browsers connect once and receive a
// JSON event whenever a post is created, updated or deleted.
type FeedHandler struct {
	mgr *ws.Manager
}

func NewFeedHandler(mgr *ws.Manager) *FeedHandler {
	return &FeedHandler{mgr: mgr}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleFeedWS upgrades to websocket and keeps the subscription open until
// the client goes away. Inbound messages are discarded; the feed is one-way.
// GET /ws
func (h *FeedHandler) HandleFeedWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	clientID := uuid.New().String()
	h.mgr.Register(clientID, conn)
	log.Printf("feed client connected: %s", clientID)

	defer func() {
		h.mgr.Unregister(clientID)
		log.Printf("feed client disconnected: %s", clientID)
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("feed client %s closed connection", clientID)
			}
			return
		}
	}
}
