package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"creatorlab/internal/llm"
	"creatorlab/internal/mockdata"
	"creatorlab/internal/model"
	"creatorlab/internal/repository"
	"creatorlab/internal/service"
	"creatorlab/internal/transport/ws"
	"creatorlab/internal/validation"
)

type staticFetcher struct{}

func (staticFetcher) Fetch(context.Context, string) string { return "transcript text" }

const modelAnswer = `{"deliverySuggestions":["Tighten the opening."],"topicRelevanceFeedback":"Relevant.","audienceFriendlinessSuggestions":[],"overallScore":0.73}`

func newTestRouter(t *testing.T, hasCredential bool) http.Handler {
	t.Helper()
	corpus := mockdata.MustLoad()
	store := repository.NewMemoryStore(corpus.CloneContents())
	v := validation.New()
	hub := ws.NewHub(nil)
	t.Cleanup(hub.Close)

	client := llm.NewClient(&llm.StaticProvider{Answer: modelAnswer}, v, time.Second, nil)
	pipeline := service.NewFeedbackPipeline(v, staticFetcher{}, client, "", nil)

	return NewRouter(&Container{
		AuthService: service.NewAuthService("test-secret", v),
		FeedbackService: service.NewFeedbackService(service.FeedbackPolicy{
			HasCredential: hasCredential,
			Pipeline:      pipeline,
			Canned:        corpus.CannedFeedback(),
		}),
		ContentService: service.NewContentService(store, v, hub, nil),
		InsightService: service.NewInsightService(service.InsightConfig{
			HasCredential: hasCredential,
			Validator:     v,
			Model:         client,
			Store:         store,
			Corpus:        corpus,
		}),
		WSHub: hub,
	})
}

func do(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func session(t *testing.T, h http.Handler, name string) string {
	t.Helper()
	rec := do(t, h, "POST", "/v1/auth/session", "", map[string]string{"name": name})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Token
}

func scriptRequest() map[string]interface{} {
	return map[string]interface{}{
		"kind":        "text",
		"title":       "My First Script",
		"description": "A short drama piece",
		"category":    "Script",
		"body":        strings.Repeat("x", 60),
	}
}

func TestFeedbackEndpoint(t *testing.T) {
	h := newTestRouter(t, true)

	rec := do(t, h, "POST", "/v1/feedback", "", scriptRequest())
	require.Equal(t, http.StatusOK, rec.Code)
	var resp service.FeedbackResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, 0.73, resp.Feedback.OverallScore)

	bad := scriptRequest()
	bad["body"] = "short"
	rec = do(t, h, "POST", "/v1/feedback", "", bad)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp = service.FeedbackResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Contains(t, resp.Fields, "body")

	rec = do(t, h, "POST", "/v1/feedback", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFeedbackEndpoint_NoCredential(t *testing.T) {
	h := newTestRouter(t, false)
	rec := do(t, h, "POST", "/v1/feedback", "", map[string]interface{}{"title": "anything"})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp service.FeedbackResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, 0.85, resp.Feedback.OverallScore)
}

func TestPublishRequiresSession(t *testing.T) {
	h := newTestRouter(t, true)
	rec := do(t, h, "POST", "/v1/contents", "", map[string]interface{}{"request": scriptRequest()})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, "POST", "/v1/contents", "garbage", map[string]interface{}{"request": scriptRequest()})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPublishCommentAndRead(t *testing.T) {
	h := newTestRouter(t, true)
	token := session(t, h, "Dana")

	fb := map[string]interface{}{
		"deliverySuggestions":             []string{"Tighten the opening."},
		"topicRelevanceFeedback":          "Relevant.",
		"audienceFriendlinessSuggestions": []string{},
		"overallScore":                    0.73,
	}
	rec := do(t, h, "POST", "/v1/contents", token, map[string]interface{}{"request": scriptRequest(), "feedback": fb})
	require.Equal(t, http.StatusCreated, rec.Code)
	var pub service.PublishResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pub))
	require.True(t, pub.Success)

	rec = do(t, h, "GET", "/v1/contents/"+pub.ContentID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var c model.Content
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	require.Equal(t, "Dana", c.Author.Name)
	require.Equal(t, 0.73, c.AIFeedback.OverallScore)

	rec = do(t, h, "POST", "/v1/contents/"+pub.ContentID+"/comments", token, map[string]string{"comment": "Great start"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, "GET", "/v1/authors/Dana/contents", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var mine []model.Content
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &mine))
	require.Len(t, mine, 1)
	require.Len(t, mine[0].CommunityFeedback, 1)

	rec = do(t, h, "GET", "/v1/contents", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all []model.Content
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 3)
	require.Equal(t, pub.ContentID, all[0].ID)
}

func TestPublishValidation(t *testing.T) {
	h := newTestRouter(t, true)
	token := session(t, h, "Dana")

	req := scriptRequest()
	delete(req, "kind")
	req["category"] = "Video"
	rec := do(t, h, "POST", "/v1/contents", token, map[string]interface{}{"request": req})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var pub service.PublishResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pub))
	require.False(t, pub.Success)
	require.Contains(t, pub.Fields, "videoUrl")
}

func TestNotFoundAndComments(t *testing.T) {
	h := newTestRouter(t, true)
	token := session(t, h, "Dana")

	rec := do(t, h, "GET", "/v1/contents/missing", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, "POST", "/v1/contents/missing/comments", token, map[string]string{"comment": "hi"})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, "POST", "/v1/contents/1/comments", token, map[string]string{"comment": " "})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCommunitySummaryAndCategories(t *testing.T) {
	h := newTestRouter(t, false)

	rec := do(t, h, "GET", "/v1/contents/1/community-summary", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var summary model.CommunitySummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	require.Equal(t, mockdata.MustLoad().DegradedSummary, summary)

	rec = do(t, h, "GET", "/v1/contents/missing/community-summary", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, "POST", "/v1/ai/categories", "", map[string]string{
		"title":          "Oven District",
		"description":    "Baking after work",
		"contentSnippet": "No-oven baking",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var suggestion model.CategorySuggestion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &suggestion))
	require.Len(t, suggestion.Categories, len(model.Categories))

	rec = do(t, h, "POST", "/v1/ai/categories", "", map[string]string{"title": "x"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthAndCORS(t *testing.T) {
	h := newTestRouter(t, false)
	rec := do(t, h, "GET", "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = do(t, h, "OPTIONS", "/v1/contents", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}
