package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"creatorlab/internal/llm"
	"creatorlab/internal/validation"
)

type fakeFetcher struct {
	text string
	urls []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, videoURL string) string {
	f.urls = append(f.urls, videoURL)
	return f.text
}

type recordedMessage struct {
	contentID string
	msgType   string
	payload   interface{}
}

type recordingBroadcaster struct {
	mu      sync.Mutex
	feed    []recordedMessage
	content []recordedMessage
}

func (b *recordingBroadcaster) BroadcastToFeed(msgType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.feed = append(b.feed, recordedMessage{msgType: msgType, payload: payload})
}

func (b *recordingBroadcaster) BroadcastToContent(contentID string, msgType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.content = append(b.content, recordedMessage{contentID: contentID, msgType: msgType, payload: payload})
}

const scenarioAnswer = `{
  "deliverySuggestions": ["Tighten the opening."],
  "topicRelevanceFeedback": "Relevant to young adult audiences.",
  "audienceFriendlinessSuggestions": ["Add content warnings."],
  "overallScore": 0.73
}`

func scriptPayload() validation.Payload {
	return validation.Payload{
		"kind":        "text",
		"title":       "My First Script",
		"description": "A short drama piece",
		"category":    "Script",
		"body":        strings.Repeat("x", 60),
	}
}

func videoPayload(videoURL string) validation.Payload {
	return validation.Payload{
		"kind":        "video",
		"title":       "Weekend vlog",
		"description": "A walk through the market",
		"videoUrl":    videoURL,
	}
}

func newTestPipeline(provider llm.Provider, fetcher TranscriptFetcher) *FeedbackPipeline {
	client := llm.NewClient(provider, nil, time.Second, nil)
	return NewFeedbackPipeline(nil, fetcher, client, "", nil)
}
