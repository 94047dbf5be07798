package service

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToFeed(msgType string, payload interface{})
	BroadcastToContent(contentID string, msgType string, payload interface{})
}

// Message types pushed to watchers
const (
	MsgContentPublished = "content_published"
	MsgCommentAdded     = "comment_added"
)

type nopBroadcaster struct{}

func (nopBroadcaster) BroadcastToFeed(string, interface{})            {}
func (nopBroadcaster) BroadcastToContent(string, string, interface{}) {}
