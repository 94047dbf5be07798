package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"creatorlab/internal/config"
	"creatorlab/internal/service"
	"creatorlab/internal/validation"
)

func testConfig() *config.Config {
	return &config.Config{
		MongoDB:     "creatorlab",
		JWTSecret:   "test-secret",
		CORSOrigins: "*",
		AI:          &config.AIConfig{Model: "gemini-2.0-flash", TimeoutMS: 1000, TranscriptTimeout: 1000},
	}
}

func TestNew_MemoryStoreWithoutCredential(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, testConfig(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close(ctx) })

	list, err := a.Contents.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	res := a.Feedback.Evaluate(ctx, validation.Payload{"title": "anything"})
	require.Equal(t, service.OutcomeDegraded, res.Outcome)

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNew_WithRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.RedisAddr = mr.Addr()

	ctx := context.Background()
	a, err := New(ctx, cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close(ctx) })

	_, err = a.Contents.Get(ctx, "1")
	require.NoError(t, err)
	require.True(t, mr.Exists("content:1"))
}

func TestNew_RedisUnreachable(t *testing.T) {
	cfg := testConfig()
	cfg.RedisAddr = "127.0.0.1:1"

	_, err := New(context.Background(), cfg, nil)
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "ping redis"))
}

func TestClose_RunsHooks(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, testConfig(), nil)
	require.NoError(t, err)

	called := false
	a.OnClose(func(context.Context) error {
		called = true
		return nil
	})
	a.Close(ctx)
	require.True(t, called)
}
