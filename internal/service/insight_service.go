package service

import (
	"context"
	"strings"

	"creatorlab/internal/llm"
	"creatorlab/internal/logger"
	"creatorlab/internal/mockdata"
	"creatorlab/internal/model"
	"creatorlab/internal/prompt"
	"creatorlab/internal/repository"
	"creatorlab/internal/validation"
)

// InsightService runs the auxiliary model flows: category suggestions and
// community feedback summaries. Both fall back to canned answers like feedback does.
type InsightService struct {
	hasCredential bool
	validate      *validation.Validator
	model         ModelInvoker
	store         repository.ContentStore
	corpus        *mockdata.Corpus
	language      string
	log           *logger.Logger
}

// InsightConfig configures an InsightService
type InsightConfig struct {
	HasCredential bool
	Validator     *validation.Validator
	Model         ModelInvoker
	Store         repository.ContentStore
	Corpus        *mockdata.Corpus
	Language      string
	Logger        *logger.Logger
}

func NewInsightService(cfg InsightConfig) *InsightService {
	if cfg.Validator == nil {
		cfg.Validator = validation.New()
	}
	if cfg.Corpus == nil {
		cfg.Corpus = mockdata.MustLoad()
	}
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}
	return &InsightService{
		hasCredential: cfg.HasCredential && cfg.Model != nil,
		validate:      cfg.Validator,
		model:         cfg.Model,
		store:         cfg.Store,
		corpus:        cfg.Corpus,
		language:      cfg.Language,
		log:           cfg.Logger.With("service", "InsightService"),
	}
}

// SuggestCategories proposes categories for a draft. Only validation errors are returned.
func (s *InsightService) SuggestCategories(ctx context.Context, raw validation.Payload) (model.CategorySuggestion, error) {
	in, err := s.validate.Suggestion(raw)
	if err != nil {
		return model.CategorySuggestion{}, err
	}
	if !s.hasCredential {
		return s.corpus.CannedSuggestion(), nil
	}

	ctx, span := tracer.Start(ctx, "insight.categories")
	defer span.End()

	p, err := prompt.Build(prompt.CategorySuggestion, prompt.Fields{
		prompt.FieldTitle:          in.Title,
		prompt.FieldDescription:    in.Description,
		prompt.FieldContentSnippet: in.ContentSnippet,
	})
	if err != nil {
		s.log.Warn("category suggestion failed, using defaults", "error", err)
		return s.corpus.CannedSuggestion(), nil
	}
	var out model.CategorySuggestion
	if err := s.model.Invoke(ctx, p, &out); err != nil {
		span.RecordError(err)
		s.log.Warn("category suggestion failed, using defaults", "error", err)
		return s.corpus.CannedSuggestion(), nil
	}
	return out, nil
}

// SummarizeCommunityFeedback summarizes the comments on a content item.
// Store errors are returned; model failures yield a placeholder summary.
func (s *InsightService) SummarizeCommunityFeedback(ctx context.Context, contentID string) (model.CommunitySummary, error) {
	content, err := s.store.GetByID(ctx, contentID)
	if err != nil {
		return model.CommunitySummary{}, err
	}

	comments := make([]string, 0, len(content.CommunityFeedback))
	for _, c := range content.CommunityFeedback {
		if t := strings.TrimSpace(c.Comment); t != "" {
			comments = append(comments, t)
		}
	}
	if len(comments) == 0 {
		return s.corpus.EmptySummary, nil
	}
	if !s.hasCredential {
		return s.corpus.DegradedSummary, nil
	}

	ctx, span := tracer.Start(ctx, "insight.community_summary")
	defer span.End()

	p, err := prompt.Build(prompt.CommunitySummary, prompt.Fields{
		prompt.FieldTitle:    content.Title,
		prompt.FieldFeedback: strings.Join(comments, "\n"),
		prompt.FieldLanguage: s.language,
	})
	if err == nil {
		var out model.CommunitySummary
		if err = s.model.Invoke(ctx, p, &out); err == nil {
			return out, nil
		}
	}
	span.RecordError(err)
	if me, ok := llm.AsModelError(err); ok {
		s.log.Warn("community summary failed, using placeholder", "content_id", contentID, "op", me.Op, "error", me.Err)
	} else {
		s.log.Warn("community summary failed, using placeholder", "content_id", contentID, "error", err)
	}
	return s.corpus.DegradedSummary, nil
}
