package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"creatorlab/internal/llm"
	"creatorlab/internal/logger"
	"creatorlab/internal/model"
	"creatorlab/internal/prompt"
	"creatorlab/internal/validation"
)

var tracer = otel.Tracer("creatorlab/service")

// TranscriptFetcher returns transcript text for a video, or a placeholder; it never fails
type TranscriptFetcher interface {
	Fetch(ctx context.Context, videoURL string) string
}

// ModelInvoker sends a prompt to the model and decodes the validated answer into out
type ModelInvoker interface {
	Invoke(ctx context.Context, p prompt.Prompt, out any) error
}

// feedbackOutput is the model's answer before normalization
type feedbackOutput struct {
	DeliverySuggestions             []string `json:"deliverySuggestions" validate:"required,min=1,dive,required"`
	TopicRelevanceFeedback          *string  `json:"topicRelevanceFeedback" validate:"required"`
	AudienceFriendlinessSuggestions []string `json:"audienceFriendlinessSuggestions" validate:"required,dive,required"`
	OverallScore                    *float64 `json:"overallScore" validate:"required"`
}

// normalize maps the answer onto AIFeedback. Scores outside [0, 1] are clamped.
func (o feedbackOutput) normalize() model.AIFeedback {
	return model.AIFeedback{
		DeliverySuggestions:             append([]string(nil), o.DeliverySuggestions...),
		TopicRelevanceFeedback:          *o.TopicRelevanceFeedback,
		AudienceFriendlinessSuggestions: append([]string{}, o.AudienceFriendlinessSuggestions...),
		OverallScore:                    model.ClampScore(*o.OverallScore),
	}
}

// FeedbackPipeline validates a request, picks the text or video flow and asks the model
type FeedbackPipeline struct {
	validate    *validation.Validator
	transcripts TranscriptFetcher
	model       ModelInvoker
	language    string
	log         *logger.Logger
}

// NewFeedbackPipeline creates a pipeline. language is the reply language for the video flow.
func NewFeedbackPipeline(v *validation.Validator, transcripts TranscriptFetcher, invoker ModelInvoker, language string, log *logger.Logger) *FeedbackPipeline {
	if v == nil {
		v = validation.New()
	}
	if log == nil {
		log = logger.Nop()
	}
	if language == "" {
		language = DefaultLanguage
	}
	return &FeedbackPipeline{
		validate:    v,
		transcripts: transcripts,
		model:       invoker,
		language:    language,
		log:         log.With("service", "FeedbackPipeline"),
	}
}

// Run executes one request. It returns a *validation.ValidationError for bad
// input, a *llm.ModelError for model failures, and nothing partial.
func (p *FeedbackPipeline) Run(ctx context.Context, raw validation.Payload) (model.AIFeedback, error) {
	ctx, span := tracer.Start(ctx, "feedback.pipeline")
	defer span.End()

	req, err := p.validate.FeedbackRequest(raw)
	if err != nil {
		span.SetAttributes(attribute.String("feedback.outcome", "rejected"))
		return model.AIFeedback{}, err
	}
	span.SetAttributes(attribute.String("feedback.kind", string(req.Kind)))

	fb, err := p.generate(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("feedback.outcome", "model_error"))
		return model.AIFeedback{}, err
	}
	span.SetAttributes(attribute.String("feedback.outcome", "ok"))
	return fb, nil
}

func (p *FeedbackPipeline) generate(ctx context.Context, req model.FeedbackRequest) (model.AIFeedback, error) {
	pr, err := p.render(ctx, req)
	if err != nil {
		return model.AIFeedback{}, &llm.ModelError{Op: "render", Err: err}
	}

	var out feedbackOutput
	if err := p.model.Invoke(ctx, pr, &out); err != nil {
		return model.AIFeedback{}, err
	}
	return out.normalize(), nil
}

func (p *FeedbackPipeline) render(ctx context.Context, req model.FeedbackRequest) (prompt.Prompt, error) {
	if req.Kind == model.KindVideo {
		transcript := p.fetchTranscript(ctx, req.VideoURL)
		return prompt.Build(prompt.VideoAnalysis, prompt.Fields{
			prompt.FieldTitle:       req.Title,
			prompt.FieldDescription: req.Description,
			prompt.FieldTranscript:  transcript,
			prompt.FieldLanguage:    p.language,
		})
	}
	return prompt.Build(prompt.ContentAnalysis, prompt.Fields{
		prompt.FieldTitle:       req.Title,
		prompt.FieldDescription: req.Description,
		prompt.FieldCategory:    string(req.Category),
		prompt.FieldBody:        req.Body,
	})
}

func (p *FeedbackPipeline) fetchTranscript(ctx context.Context, videoURL string) string {
	ctx, span := tracer.Start(ctx, "transcript.fetch", trace.WithAttributes(attribute.String("video.url", videoURL)))
	defer span.End()

	text := p.transcripts.Fetch(ctx, videoURL)
	span.SetAttributes(attribute.Int("transcript.length", len(text)))
	return text
}
