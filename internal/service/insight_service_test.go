package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"creatorlab/internal/llm"
	"creatorlab/internal/mockdata"
	"creatorlab/internal/model"
	"creatorlab/internal/repository"
	"creatorlab/internal/validation"
)

func newInsightService(hasCredential bool, provider llm.Provider) (*InsightService, repository.ContentStore) {
	corpus := mockdata.MustLoad()
	store := repository.NewMemoryStore(corpus.CloneContents())
	return NewInsightService(InsightConfig{
		HasCredential: hasCredential,
		Model:         llm.NewClient(provider, nil, time.Second, nil),
		Store:         store,
		Corpus:        corpus,
	}), store
}

func suggestionPayload() validation.Payload {
	return validation.Payload{
		"title":          "Oven District",
		"description":    "Baking after work",
		"contentSnippet": "No-oven baking, ten minute desserts",
	}
}

func TestSuggestCategories_FromModel(t *testing.T) {
	provider := &llm.StaticProvider{Answer: `{"categories":["Baking","Lifestyle"],"reasoning":"Recipes for office workers."}`}
	svc, _ := newInsightService(true, provider)

	out, err := svc.SuggestCategories(context.Background(), suggestionPayload())
	require.NoError(t, err)
	require.Equal(t, []string{"Baking", "Lifestyle"}, out.Categories)
	require.Contains(t, provider.Prompts[0], "Content Snippet: No-oven baking")
}

func TestSuggestCategories_Fallbacks(t *testing.T) {
	canned := mockdata.MustLoad().CannedSuggestion()

	svc, _ := newInsightService(false, &llm.StaticProvider{Answer: "{}"})
	out, err := svc.SuggestCategories(context.Background(), suggestionPayload())
	require.NoError(t, err)
	require.Equal(t, canned, out)

	svc, _ = newInsightService(true, &llm.StaticProvider{Answer: `{"categories":[],"reasoning":"none"}`})
	out, err = svc.SuggestCategories(context.Background(), suggestionPayload())
	require.NoError(t, err)
	require.Equal(t, canned, out)

	svc, _ = newInsightService(true, &llm.StaticProvider{Err: errors.New("boom")})
	out, err = svc.SuggestCategories(context.Background(), suggestionPayload())
	require.NoError(t, err)
	require.Equal(t, canned, out)
}

func TestSuggestCategories_ValidationPropagates(t *testing.T) {
	provider := &llm.StaticProvider{Answer: "{}"}
	svc, _ := newInsightService(true, provider)
	_, err := svc.SuggestCategories(context.Background(), validation.Payload{"title": "x"})
	ve, ok := validation.AsValidationError(err)
	require.True(t, ok)
	require.Contains(t, ve.Fields, "description")
	require.Contains(t, ve.Fields, "contentSnippet")
	require.Zero(t, provider.Calls())
}

func TestSummarize_FromModel(t *testing.T) {
	provider := &llm.StaticProvider{Answer: `{"summary":"Readers love it.","themes":"plot","sentiment":"positive"}`}
	svc, store := newInsightService(true, provider)
	_, err := store.AppendComment(context.Background(), "1", model.CommunityComment{ID: "c5", Comment: "Pacing drags in act two"})
	require.NoError(t, err)

	out, err := svc.SummarizeCommunityFeedback(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, "positive", out.Sentiment)
	require.Contains(t, provider.Prompts[0], "플롯이 정말 흥미로워요! 다음 내용이 기대됩니다.\nPacing drags in act two")
	require.Contains(t, provider.Prompts[0], "Please write the summary in Korean.")
}

func TestSummarize_NoCommentsSkipsModel(t *testing.T) {
	provider := &llm.StaticProvider{Answer: "{}"}
	svc, store := newInsightService(true, provider)
	id, err := store.Save(context.Background(), &model.Content{Title: "quiet"})
	require.NoError(t, err)

	out, err := svc.SummarizeCommunityFeedback(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, mockdata.MustLoad().EmptySummary, out)
	require.Zero(t, provider.Calls())
}

func TestSummarize_Fallbacks(t *testing.T) {
	degraded := mockdata.MustLoad().DegradedSummary

	svc, _ := newInsightService(true, &llm.StaticProvider{Answer: `{"summary":""}`})
	out, err := svc.SummarizeCommunityFeedback(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, degraded, out)

	svc, _ = newInsightService(false, nil)
	out, err = svc.SummarizeCommunityFeedback(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, degraded, out)
}

func TestSummarize_StoreErrorPropagates(t *testing.T) {
	svc, _ := newInsightService(true, &llm.StaticProvider{Answer: "{}"})
	_, err := svc.SummarizeCommunityFeedback(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
