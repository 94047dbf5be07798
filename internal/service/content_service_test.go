package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"creatorlab/internal/mockdata"
	"creatorlab/internal/model"
	"creatorlab/internal/repository"
	"creatorlab/internal/validation"
)

var alice = model.Author{Name: "Alice", AvatarURL: "https://i.pravatar.cc/150?u=alice"}

func newContentService(t *testing.T) (*ContentService, repository.ContentStore, *recordingBroadcaster) {
	t.Helper()
	store := repository.NewMemoryStore(mockdata.MustLoad().CloneContents())
	b := &recordingBroadcaster{}
	return NewContentService(store, nil, b, nil), store, b
}

func TestPublish_TextWithFeedback(t *testing.T) {
	svc, store, b := newContentService(t)
	fb := &model.AIFeedback{
		DeliverySuggestions: []string{"Tighten the opening."},
		OverallScore:        1.4,
	}

	resp := svc.PublishContent(context.Background(), scriptPayload(), fb, alice)
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.ContentID)

	c, err := store.GetByID(context.Background(), resp.ContentID)
	require.NoError(t, err)
	require.Equal(t, "My First Script", c.Title)
	require.Equal(t, model.CategoryScript, c.Category)
	require.Equal(t, strings.Repeat("x", 60), c.Content)
	require.Equal(t, DefaultThumbnailURL, c.ThumbnailURL)
	require.Equal(t, alice, c.Author)
	require.NotNil(t, c.AIFeedback)
	require.Equal(t, 1.0, c.AIFeedback.OverallScore)
	require.Empty(t, c.CommunityFeedback)

	require.Len(t, b.feed, 1)
	require.Equal(t, MsgContentPublished, b.feed[0].msgType)

	list, err := store.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, resp.ContentID, list[0].ID)
}

func TestPublish_VideoWithoutFeedback(t *testing.T) {
	svc, _, _ := newContentService(t)
	raw := videoPayload("https://www.youtube.com/watch?v=abc")
	raw["thumbnailUrl"] = "https://img.example.com/t.png"

	c, err := svc.Publish(context.Background(), raw, nil, alice)
	require.NoError(t, err)
	require.Equal(t, model.CategoryVideo, c.Category)
	require.Equal(t, "https://www.youtube.com/watch?v=abc", c.VideoURL)
	require.Equal(t, "YouTube video: https://www.youtube.com/watch?v=abc", c.Content)
	require.Equal(t, "https://img.example.com/t.png", c.ThumbnailURL)
	require.Nil(t, c.AIFeedback)
}

func TestPublish_ValidationFailure(t *testing.T) {
	svc, store, b := newContentService(t)
	raw := scriptPayload()
	raw["title"] = "abc"

	resp := svc.PublishContent(context.Background(), raw, nil, alice)
	require.False(t, resp.Success)
	require.Contains(t, resp.Fields, "title")
	require.Empty(t, b.feed)

	list, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	_, err = svc.Publish(context.Background(), scriptPayload(), nil, model.Author{})
	ve, ok := validation.AsValidationError(err)
	require.True(t, ok)
	require.Contains(t, ve.Fields, "author")
}

type failingStore struct {
	repository.ContentStore
}

func (failingStore) Save(context.Context, *model.Content) (string, error) {
	return "", &repository.StoreError{Op: "save", Err: errors.New("connection refused")}
}

func TestPublish_StoreErrorIsDistinct(t *testing.T) {
	svc := NewContentService(failingStore{}, nil, nil, nil)

	_, err := svc.Publish(context.Background(), scriptPayload(), nil, alice)
	var se *repository.StoreError
	require.True(t, errors.As(err, &se))
	_, isValidation := validation.AsValidationError(err)
	require.False(t, isValidation)

	resp := svc.PublishContent(context.Background(), scriptPayload(), nil, alice)
	require.False(t, resp.Success)
	require.Equal(t, "failed to publish content", resp.Error)
	require.Empty(t, resp.Fields)
}

func TestAddComment(t *testing.T) {
	svc, _, b := newContentService(t)
	bob := model.Author{Name: "Bob"}

	comment, err := svc.AddComment(context.Background(), "2", bob, "  Love the concept  ")
	require.NoError(t, err)
	require.NotEmpty(t, comment.ID)
	require.Equal(t, "Love the concept", comment.Comment)
	require.Zero(t, comment.Likes)
	require.False(t, comment.IsAccepted)

	c, err := svc.Get(context.Background(), "2")
	require.NoError(t, err)
	require.Len(t, c.CommunityFeedback, 2)

	require.Len(t, b.content, 1)
	require.Equal(t, "2", b.content[0].contentID)
	require.Equal(t, MsgCommentAdded, b.content[0].msgType)
}

func TestAddComment_Errors(t *testing.T) {
	svc, _, b := newContentService(t)

	_, err := svc.AddComment(context.Background(), "2", alice, "   ")
	_, ok := validation.AsValidationError(err)
	require.True(t, ok)

	_, err = svc.AddComment(context.Background(), "404", alice, "hello")
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.AddComment(context.Background(), "2", model.Author{}, "hello")
	_, ok = validation.AsValidationError(err)
	require.True(t, ok)

	require.Empty(t, b.content)
}

func TestListByAuthor(t *testing.T) {
	svc, _, _ := newContentService(t)
	_, err := svc.Publish(context.Background(), scriptPayload(), nil, alice)
	require.NoError(t, err)

	list, err := svc.ListByAuthor(context.Background(), "Alice")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "My First Script", list[0].Title)
}
