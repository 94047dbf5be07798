package transcript

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kkdai/youtube/v2"
)

// YouTubeService fetches caption tracks from YouTube
type YouTubeService struct {
	client    *youtube.Client
	languages []string
}

// NewYouTubeService creates a service trying caption languages in order
func NewYouTubeService(httpClient *http.Client, languages ...string) *YouTubeService {
	if len(languages) == 0 {
		languages = []string{"en"}
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &YouTubeService{
		client:    &youtube.Client{HTTPClient: httpClient},
		languages: languages,
	}
}

func (s *YouTubeService) Segments(ctx context.Context, videoURL string) ([]Segment, error) {
	video, err := s.client.GetVideoContext(ctx, videoURL)
	if err != nil {
		return nil, fmt.Errorf("load video: %w", err)
	}

	lastErr := ErrNoTranscript
	for _, lang := range s.languages {
		tr, err := s.client.GetTranscriptCtx(ctx, video, lang)
		if err != nil {
			lastErr = fmt.Errorf("captions %s: %w", lang, err)
			continue
		}
		if len(tr) == 0 {
			continue
		}
		segments := make([]Segment, 0, len(tr))
		for _, seg := range tr {
			segments = append(segments, Segment{
				Text:       seg.Text,
				StartMs:    seg.StartMs,
				DurationMs: seg.Duration,
			})
		}
		return segments, nil
	}
	return nil, lastErr
}

// CaptionLanguages maps a working language to preferred caption codes
func CaptionLanguages(language string) []string {
	switch language {
	case "Korean":
		return []string{"ko", "en"}
	default:
		return []string{"en"}
	}
}
