package service

import (
	"context"
	"errors"
	"fmt"

	"creatorlab/internal/llm"
	"creatorlab/internal/logger"
	"creatorlab/internal/mockdata"
	"creatorlab/internal/model"
	"creatorlab/internal/validation"
)

// DefaultLanguage is the working language of prompts and placeholders
const DefaultLanguage = "Korean"

// Outcome tags a FeedbackResult
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeRejected
	OutcomeDegraded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeRejected:
		return "rejected"
	case OutcomeDegraded:
		return "degraded"
	default:
		return "unknown"
	}
}

// FeedbackResult is the outcome of one feedback request.
// Rejected carries Rejection; Degraded carries the canned Feedback and its Cause.
type FeedbackResult struct {
	Outcome   Outcome
	Feedback  model.AIFeedback
	Rejection *validation.ValidationError
	Cause     error
}

// FeedbackResponse is the envelope returned to clients
type FeedbackResponse struct {
	Success  bool              `json:"success"`
	Feedback *model.AIFeedback `json:"feedback,omitempty"`
	Error    string            `json:"error,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
}

// FeedbackRunner runs the feedback pipeline for one raw request
type FeedbackRunner interface {
	Run(ctx context.Context, raw validation.Payload) (model.AIFeedback, error)
}

// FeedbackPolicy configures the FeedbackService. HasCredential is resolved once at startup.
type FeedbackPolicy struct {
	HasCredential bool
	Pipeline      FeedbackRunner
	Canned        model.AIFeedback
	Logger        *logger.Logger
}

// FeedbackService decides when the pipeline runs and what replaces its failures
type FeedbackService struct {
	hasCredential bool
	pipeline      FeedbackRunner
	canned        model.AIFeedback
	log           *logger.Logger
}

func NewFeedbackService(p FeedbackPolicy) *FeedbackService {
	log := p.Logger
	if log == nil {
		log = logger.Nop()
	}
	s := &FeedbackService{
		hasCredential: p.HasCredential && p.Pipeline != nil,
		pipeline:      p.Pipeline,
		canned:        p.Canned,
		log:           log.With("service", "FeedbackService"),
	}
	if !s.hasCredential {
		s.log.Warn("no model credential configured, serving canned feedback")
	}
	return s
}

// Evaluate runs one request through the fallback policy
func (s *FeedbackService) Evaluate(ctx context.Context, raw validation.Payload) (res FeedbackResult) {
	if !s.hasCredential {
		return s.degrade(&llm.ModelError{Op: "invoke", Err: llm.ErrNoCredential})
	}

	defer func() {
		if r := recover(); r != nil {
			res = s.degrade(fmt.Errorf("pipeline panic: %v", r))
		}
	}()

	fb, err := s.pipeline.Run(ctx, raw)
	if err == nil {
		return FeedbackResult{Outcome: OutcomeOK, Feedback: fb}
	}
	if ve, ok := validation.AsValidationError(err); ok {
		return FeedbackResult{Outcome: OutcomeRejected, Rejection: ve}
	}
	return s.degrade(err)
}

func (s *FeedbackService) degrade(cause error) FeedbackResult {
	// missing credential was already reported at startup
	if errors.Is(cause, llm.ErrNoCredential) {
		s.log.Debug("serving canned feedback", "error", cause)
	} else {
		s.log.Warn("feedback generation failed, substituting canned feedback", "error", cause)
	}
	return FeedbackResult{Outcome: OutcomeDegraded, Feedback: mockdata.CopyFeedback(s.canned), Cause: cause}
}

// GetAIFeedback returns the client envelope. Only validation failures are unsuccessful.
func (s *FeedbackService) GetAIFeedback(ctx context.Context, raw validation.Payload) FeedbackResponse {
	res := s.Evaluate(ctx, raw)
	if res.Outcome == OutcomeRejected {
		return FeedbackResponse{
			Success: false,
			Error:   res.Rejection.Error(),
			Fields:  res.Rejection.Fields,
		}
	}
	fb := res.Feedback
	return FeedbackResponse{Success: true, Feedback: &fb}
}
