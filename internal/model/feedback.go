package model

import "math"

// RequestKind selects the feedback flow
type RequestKind string

const (
	KindText  RequestKind = "text"
	KindVideo RequestKind = "video"
)

// FeedbackRequest is a validated request for AI feedback.
// Body is set only for KindText, VideoURL only for KindVideo.
type FeedbackRequest struct {
	Kind        RequestKind `json:"kind"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    Category    `json:"category,omitempty"`
	Body        string      `json:"body,omitempty"`
	VideoURL    string      `json:"videoUrl,omitempty"`
}

// AIFeedback is the canonical feedback shape produced by every flow
type AIFeedback struct {
	DeliverySuggestions             []string `json:"deliverySuggestions" bson:"deliverySuggestions" yaml:"deliverySuggestions"`
	TopicRelevanceFeedback          string   `json:"topicRelevanceFeedback" bson:"topicRelevanceFeedback" yaml:"topicRelevanceFeedback"`
	AudienceFriendlinessSuggestions []string `json:"audienceFriendlinessSuggestions" bson:"audienceFriendlinessSuggestions" yaml:"audienceFriendlinessSuggestions"`
	OverallScore                    float64  `json:"overallScore" bson:"overallScore" yaml:"overallScore"`
}

// ScorePercent converts OverallScore to a 0-100 integer
func (f AIFeedback) ScorePercent() int {
	return int(math.Round(ClampScore(f.OverallScore) * 100))
}

// ClampScore bounds a model score to [0, 1]
func ClampScore(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// CategorySuggestion is the output of the category suggestion flow
type CategorySuggestion struct {
	Categories []string `json:"categories" yaml:"categories" validate:"required,min=1,dive,required"`
	Reasoning  string   `json:"reasoning" yaml:"reasoning" validate:"required"`
}

// CommunitySummary is the output of the community feedback summary flow
type CommunitySummary struct {
	Summary   string `json:"summary" yaml:"summary" validate:"required"`
	Themes    string `json:"themes" yaml:"themes"`
	Sentiment string `json:"sentiment" yaml:"sentiment" validate:"required"`
}
