package prompt

type Name string

const (
	// Feedback
	ContentAnalysis Name = "content_analysis"
	VideoAnalysis   Name = "video_analysis"

	// Discovery + Community
	CategorySuggestion Name = "category_suggestion"
	CommunitySummary   Name = "community_summary"
)

// Field keys accepted by the templates
const (
	FieldTitle          = "title"
	FieldDescription    = "description"
	FieldCategory       = "category"
	FieldBody           = "body"
	FieldTranscript     = "transcript"
	FieldLanguage       = "language"
	FieldContentSnippet = "contentSnippet"
	FieldFeedback       = "feedback"
)
