package validation

import (
	"fmt"
	"strings"

	"creatorlab/internal/model"
)

// Payload is a raw, untyped request body
type Payload map[string]any

type textForm struct {
	Title       string `json:"title" validate:"min=5"`
	Description string `json:"description" validate:"min=10"`
	Category    string `json:"category" validate:"required,textcategory"`
	Body        string `json:"body" validate:"min=50,max=5000"`
}

type videoForm struct {
	Title       string `json:"title" validate:"min=5"`
	Description string `json:"description" validate:"min=10"`
	VideoURL    string `json:"videoUrl" validate:"required,url,videohost"`
}

type thumbnailForm struct {
	ThumbnailURL string `json:"thumbnailUrl" validate:"omitempty,url"`
}

type commentForm struct {
	Comment string `json:"comment" validate:"required,max=2000"`
}

type sessionForm struct {
	Name      string `json:"name" validate:"required,max=50"`
	AvatarURL string `json:"avatarUrl" validate:"omitempty,url"`
}

type suggestionForm struct {
	Title          string `json:"title" validate:"required"`
	Description    string `json:"description" validate:"required"`
	ContentSnippet string `json:"contentSnippet" validate:"required,max=5000"`
}

// PublishForm is a validated publish request
type PublishForm struct {
	Request      model.FeedbackRequest
	ThumbnailURL string
}

// SuggestionInput is a validated category suggestion request
type SuggestionInput struct {
	Title          string
	Description    string
	ContentSnippet string
}

// FeedbackRequest validates a raw payload and returns the typed request.
// Every violated field is reported; nothing is returned on failure.
func (v *Validator) FeedbackRequest(raw Payload) (model.FeedbackRequest, error) {
	ve := &ValidationError{}
	req := v.feedbackRequest(raw, ve)
	if !ve.empty() {
		return model.FeedbackRequest{}, ve
	}
	return req, nil
}

// PublishForm validates a publish payload: the feedback request fields plus
// an optional thumbnail URL.
func (v *Validator) PublishForm(raw Payload) (PublishForm, error) {
	ve := &ValidationError{}
	req := v.feedbackRequest(raw, ve)
	thumb := thumbnailForm{ThumbnailURL: tokenField(raw, "thumbnailUrl", ve)}
	v.collect(thumb, ve)
	if !ve.empty() {
		return PublishForm{}, ve
	}
	return PublishForm{Request: req, ThumbnailURL: thumb.ThumbnailURL}, nil
}

// Comment validates a community comment body
func (v *Validator) Comment(text string) (string, error) {
	form := commentForm{Comment: strings.TrimSpace(text)}
	if err := v.Struct(form); err != nil {
		return "", err
	}
	return form.Comment, nil
}

// Session validates a creator session request
func (v *Validator) Session(req model.SessionRequest) (model.SessionRequest, error) {
	form := sessionForm{
		Name:      strings.TrimSpace(req.Name),
		AvatarURL: strings.TrimSpace(req.AvatarURL),
	}
	if err := v.Struct(form); err != nil {
		return model.SessionRequest{}, err
	}
	return model.SessionRequest(form), nil
}

// Suggestion validates a category suggestion payload
func (v *Validator) Suggestion(raw Payload) (SuggestionInput, error) {
	ve := &ValidationError{}
	form := suggestionForm{
		Title:          tokenField(raw, "title", ve),
		Description:    tokenField(raw, "description", ve),
		ContentSnippet: tokenField(raw, "contentSnippet", ve),
	}
	v.collect(form, ve)
	if !ve.empty() {
		return SuggestionInput{}, ve
	}
	return SuggestionInput(form), nil
}

func (v *Validator) feedbackRequest(raw Payload, ve *ValidationError) model.FeedbackRequest {
	title := stringField(raw, "title", ve)
	description := stringField(raw, "description", ve)
	category := model.Category(tokenField(raw, "category", ve))
	kind := resolveKind(tokenField(raw, "kind", ve), category, ve)

	if kind == model.KindVideo {
		if category != "" && category != model.CategoryVideo {
			ve.add("category", fmt.Sprintf("must be %s for video requests", model.CategoryVideo))
		}
		form := videoForm{
			Title:       title,
			Description: description,
			VideoURL:    tokenField(raw, "videoUrl", ve),
		}
		v.collect(form, ve)
		return model.FeedbackRequest{
			Kind:        model.KindVideo,
			Title:       form.Title,
			Description: form.Description,
			Category:    model.CategoryVideo,
			VideoURL:    form.VideoURL,
		}
	}

	form := textForm{
		Title:       title,
		Description: description,
		Category:    string(category),
		Body:        stringField(raw, "body", ve),
	}
	v.collect(form, ve)
	return model.FeedbackRequest{
		Kind:        model.KindText,
		Title:       form.Title,
		Description: form.Description,
		Category:    model.Category(form.Category),
		Body:        form.Body,
	}
}

// resolveKind prefers an explicit kind and otherwise derives it from category
func resolveKind(raw string, category model.Category, ve *ValidationError) model.RequestKind {
	switch model.RequestKind(strings.ToLower(raw)) {
	case model.KindText:
		return model.KindText
	case model.KindVideo:
		return model.KindVideo
	case "":
		if category == model.CategoryVideo {
			return model.KindVideo
		}
		return model.KindText
	default:
		ve.add("kind", "must be one of: text, video")
		if category == model.CategoryVideo {
			return model.KindVideo
		}
		return model.KindText
	}
}

// stringField coerces a payload value to a string, unmodified so length
// rules apply to exactly what the user sent. Missing and null values become
// empty; any other non-string type is a field violation.
func stringField(raw Payload, key string, ve *ValidationError) string {
	val, ok := raw[key]
	if !ok || val == nil {
		return ""
	}
	s, ok := val.(string)
	if !ok {
		ve.add(key, "must be a string")
		return ""
	}
	return s
}

// tokenField is stringField for identifier-like values (kind, category, URLs)
// where surrounding whitespace carries no meaning.
func tokenField(raw Payload, key string, ve *ValidationError) string {
	return strings.TrimSpace(stringField(raw, key, ve))
}
