package ws

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"creatorlab/internal/logger"
	"creatorlab/internal/model"
	"creatorlab/internal/repository"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for dev
	},
}

// ContentLookup checks that a watched content item exists
type ContentLookup interface {
	Get(ctx context.Context, id string) (*model.Content, error)
}

// Handler handles WebSocket connections
type Handler struct {
	hub      *Hub
	contents ContentLookup
	log      *logger.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, contents ContentLookup, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{
		hub:      hub,
		contents: contents,
		log:      log.With("service", "WSHandler"),
	}
}

// FeedWS handles GET /v1/ws/feed
func (h *Handler) FeedWS(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, FeedTopic)
}

// ContentWS handles GET /v1/ws/contents/{id}
func (h *Handler) ContentWS(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := h.contents.Get(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "content not found", http.StatusNotFound)
			return
		}
		h.log.Error("content lookup failed", "content_id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.serve(w, r, ContentTopic(id))
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, topic string) {
	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", "topic", topic, "error", err)
		return
	}

	conn := &Connection{
		Topic: topic,
		Send:  make(chan []byte, 256),
		Hub:   h.hub,
	}
	h.hub.Register(conn)

	go h.writePump(wsConn, conn)
	go h.readPump(wsConn, conn)
}

func (h *Handler) readPump(wsConn *websocket.Conn, conn *Connection) {
	defer func() {
		h.hub.Unregister(conn)
		wsConn.Close()
	}()

	wsConn.SetReadLimit(maxMessageSize)
	wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		wsConn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, _, err := wsConn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Warn("websocket read error", "topic", conn.Topic, "error", err)
			}
			break
		}
		// watchers are receive-only
	}
}

func (h *Handler) writePump(wsConn *websocket.Conn, conn *Connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		wsConn.Close()
	}()

	for {
		select {
		case message, ok := <-conn.Send:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				wsConn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := wsConn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wsConn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
