package ws

import (
	"encoding/json"
	"sync"

	"creatorlab/internal/logger"
)

// FeedTopic receives every newly published content item
const FeedTopic = "feed"

// ContentTopic is the topic for watchers of one content item
func ContentTopic(contentID string) string {
	return "content:" + contentID
}

// Message is the WebSocket envelope format
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans messages out to WebSocket watchers grouped by topic
type Hub struct {
	// topic -> connections
	topics map[string]map[*Connection]struct{}

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
	quit       chan struct{}
	closeOnce  sync.Once

	log *logger.Logger
}

// Connection represents a WebSocket connection
type Connection struct {
	Topic string
	Send  chan []byte
	Hub   *Hub
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	Topic   string
	Message *Message
}

// NewHub creates a new WebSocket hub
func NewHub(log *logger.Logger) *Hub {
	if log == nil {
		log = logger.Nop()
	}
	h := &Hub{
		topics:     make(map[string]map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
		quit:       make(chan struct{}),
		log:        log.With("service", "WSHub"),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case <-h.quit:
			h.mu.Lock()
			for topic, conns := range h.topics {
				for conn := range conns {
					close(conn.Send)
				}
				delete(h.topics, topic)
			}
			h.mu.Unlock()
			return

		case conn := <-h.register:
			h.mu.Lock()
			if h.topics[conn.Topic] == nil {
				h.topics[conn.Topic] = make(map[*Connection]struct{})
			}
			h.topics[conn.Topic][conn] = struct{}{}
			h.mu.Unlock()
			h.log.Debug("watcher connected", "topic", conn.Topic)

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.topics[conn.Topic]; ok {
				if _, ok := conns[conn]; ok {
					delete(conns, conn)
					close(conn.Send)
					if len(conns) == 0 {
						delete(h.topics, conn.Topic)
					}
				}
			}
			h.mu.Unlock()
			h.log.Debug("watcher disconnected", "topic", conn.Topic)

		case msg := <-h.broadcast:
			data, err := json.Marshal(msg.Message)
			if err != nil {
				h.log.Error("failed to encode broadcast", "topic", msg.Topic, "error", err)
				continue
			}
			h.mu.RLock()
			for conn := range h.topics[msg.Topic] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.quit:
		close(conn.Send)
	}
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.quit:
	}
}

// Close disconnects every watcher and stops the hub
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.quit) })
}

// Subscribers reports how many watchers a topic has
func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// BroadcastToFeed sends a message to feed watchers (implements service.Broadcaster)
func (h *Hub) BroadcastToFeed(msgType string, payload interface{}) {
	h.publish(FeedTopic, msgType, payload)
}

// BroadcastToContent sends a message to watchers of one content item (implements service.Broadcaster)
func (h *Hub) BroadcastToContent(contentID string, msgType string, payload interface{}) {
	h.publish(ContentTopic(contentID), msgType, payload)
}

func (h *Hub) publish(topic, msgType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.log.Error("failed to encode payload", "topic", topic, "type", msgType, "error", err)
		return
	}
	msg := &BroadcastMessage{
		Topic: topic,
		Message: &Message{
			Type:    msgType,
			Payload: data,
		},
	}
	select {
	case h.broadcast <- msg:
	case <-h.quit:
	default:
		h.log.Warn("broadcast queue full, dropping message", "topic", topic, "type", msgType)
	}
}
