package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"creatorlab/internal/logger"
	"creatorlab/internal/mockdata"
	"creatorlab/internal/model"
	"creatorlab/internal/repository"
	"creatorlab/internal/validation"
)

const (
	DefaultThumbnailURL = "https://placehold.co/600x400.png"
	videoContentPrefix  = "YouTube video: "
)

// PublishResponse is the envelope returned to clients after publishing
type PublishResponse struct {
	Success   bool              `json:"success"`
	ContentID string            `json:"contentId,omitempty"`
	Error     string            `json:"error,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
}

// CommentAdded is the realtime payload for a new comment
type CommentAdded struct {
	ContentID string                 `json:"contentId"`
	Comment   model.CommunityComment `json:"comment"`
}

// ContentService publishes content and manages community comments
type ContentService struct {
	store       repository.ContentStore
	validate    *validation.Validator
	broadcaster Broadcaster
	log         *logger.Logger
	now         func() time.Time
}

func NewContentService(store repository.ContentStore, v *validation.Validator, b Broadcaster, log *logger.Logger) *ContentService {
	if v == nil {
		v = validation.New()
	}
	if b == nil {
		b = nopBroadcaster{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ContentService{
		store:       store,
		validate:    v,
		broadcaster: b,
		log:         log.With("service", "ContentService"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Publish validates and stores a new content item. feedback may be nil.
func (s *ContentService) Publish(ctx context.Context, raw validation.Payload, feedback *model.AIFeedback, author model.Author) (*model.Content, error) {
	if author.Name == "" {
		return nil, validation.FieldError("author", "is required")
	}
	form, err := s.validate.PublishForm(raw)
	if err != nil {
		return nil, err
	}

	req := form.Request
	content := &model.Content{
		Title:             req.Title,
		Description:       req.Description,
		Category:          req.Category,
		Content:           req.Body,
		Author:            author,
		ThumbnailURL:      form.ThumbnailURL,
		CreatedAt:         s.now(),
		CommunityFeedback: []model.CommunityComment{},
	}
	if req.Kind == model.KindVideo {
		content.VideoURL = req.VideoURL
		content.Content = videoContentPrefix + req.VideoURL
	}
	if content.ThumbnailURL == "" {
		content.ThumbnailURL = DefaultThumbnailURL
	}
	if feedback != nil {
		fb := mockdata.CopyFeedback(*feedback)
		fb.OverallScore = model.ClampScore(fb.OverallScore)
		content.AIFeedback = &fb
	}

	if _, err := s.store.Save(ctx, content); err != nil {
		return nil, err
	}
	s.log.Info("content published", "content_id", content.ID, "author", author.Name, "category", content.Category, "with_feedback", feedback != nil)
	s.broadcaster.BroadcastToFeed(MsgContentPublished, content)
	return content, nil
}

// PublishContent wraps Publish in the client envelope
func (s *ContentService) PublishContent(ctx context.Context, raw validation.Payload, feedback *model.AIFeedback, author model.Author) PublishResponse {
	content, err := s.Publish(ctx, raw, feedback, author)
	if err == nil {
		return PublishResponse{Success: true, ContentID: content.ID}
	}
	if ve, ok := validation.AsValidationError(err); ok {
		return PublishResponse{Success: false, Error: ve.Error(), Fields: ve.Fields}
	}
	s.log.Error("failed to publish content", "author", author.Name, "error", err)
	return PublishResponse{Success: false, Error: "failed to publish content"}
}

// AddComment appends a community comment to an existing content item
func (s *ContentService) AddComment(ctx context.Context, contentID string, author model.Author, text string) (*model.CommunityComment, error) {
	if author.Name == "" {
		return nil, validation.FieldError("author", "is required")
	}
	body, err := s.validate.Comment(text)
	if err != nil {
		return nil, err
	}

	comment := model.CommunityComment{
		ID:        uuid.NewString(),
		Author:    author,
		Comment:   body,
		CreatedAt: s.now(),
	}
	if _, err := s.store.AppendComment(ctx, contentID, comment); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Error("failed to add comment", "content_id", contentID, "error", err)
		}
		return nil, err
	}
	s.broadcaster.BroadcastToContent(contentID, MsgCommentAdded, CommentAdded{ContentID: contentID, Comment: comment})
	return &comment, nil
}

func (s *ContentService) List(ctx context.Context) ([]*model.Content, error) {
	return s.store.List(ctx)
}

func (s *ContentService) Get(ctx context.Context, id string) (*model.Content, error) {
	return s.store.GetByID(ctx, id)
}

// ListByAuthor returns an author's content, newest first
func (s *ContentService) ListByAuthor(ctx context.Context, authorName string) ([]*model.Content, error) {
	return s.store.ListByAuthor(ctx, authorName)
}
