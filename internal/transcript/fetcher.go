package transcript

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"creatorlab/internal/logger"
)

// ErrNoTranscript is returned by a Service when a video has no usable captions
var ErrNoTranscript = errors.New("transcript: no segments")

// Segment is one timed fragment of spoken text
type Segment struct {
	Text       string `json:"text"`
	StartMs    int    `json:"startMs"`
	DurationMs int    `json:"durationMs"`
}

// Service retrieves ordered transcript segments for a video URL
type Service interface {
	Segments(ctx context.Context, videoURL string) ([]Segment, error)
}

// Error describes a failed retrieval. It never leaves this package.
type Error struct {
	VideoURL string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("transcript %s: %v", e.VideoURL, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

var sentinels = map[string]string{
	"Korean":  "스크립트를 가져오는 데 실패했습니다. 비디오에 스크립트가 없거나 비공개일 수 있습니다.",
	"English": "Failed to fetch the transcript. The video may have no captions or may be private.",
}

// Sentinel returns the placeholder text used when retrieval fails
func Sentinel(language string) string {
	if s, ok := sentinels[language]; ok {
		return s
	}
	return sentinels["English"]
}

// Fetcher turns a Service into a total function: Fetch always yields text
type Fetcher struct {
	svc      Service
	timeout  time.Duration
	sentinel string
	log      *logger.Logger
}

// NewFetcher creates a fetcher. A zero timeout leaves the caller's deadline in place.
func NewFetcher(svc Service, language string, timeout time.Duration, log *logger.Logger) *Fetcher {
	if log == nil {
		log = logger.Nop()
	}
	return &Fetcher{
		svc:      svc,
		timeout:  timeout,
		sentinel: Sentinel(language),
		log:      log.With("service", "TranscriptFetcher"),
	}
}

// SentinelText is the placeholder this fetcher returns on failure
func (f *Fetcher) SentinelText() string {
	return f.sentinel
}

// Fetch returns the transcript text, or the sentinel string on any failure
func (f *Fetcher) Fetch(ctx context.Context, videoURL string) (text string) {
	defer func() {
		if r := recover(); r != nil {
			f.log.Error("transcript fetch panicked", "video_url", videoURL, "panic", r)
			text = f.sentinel
		}
	}()

	text, err := f.fetch(ctx, videoURL)
	if err != nil {
		f.log.Warn("transcript unavailable, using placeholder", "video_url", videoURL, "error", err)
		return f.sentinel
	}
	return text
}

func (f *Fetcher) fetch(ctx context.Context, videoURL string) (string, error) {
	if f.svc == nil {
		return "", &Error{VideoURL: videoURL, Err: errors.New("no transcript service configured")}
	}
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}
	segments, err := f.svc.Segments(ctx, videoURL)
	if err != nil {
		return "", &Error{VideoURL: videoURL, Err: err}
	}
	text := Join(segments)
	if text == "" {
		return "", &Error{VideoURL: videoURL, Err: ErrNoTranscript}
	}
	return text, nil
}

// Join concatenates segment texts in order, separated by single spaces
func Join(segments []Segment) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		t := strings.Join(strings.Fields(s.Text), " ")
		if t == "" {
			continue
		}
		parts = append(parts, t)
	}
	return strings.Join(parts, " ")
}
