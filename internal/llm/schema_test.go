package llm

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/require"

	"creatorlab/internal/prompt"
)

func TestToGenaiSchema_AIFeedback(t *testing.T) {
	s, err := ToGenaiSchema(prompt.AIFeedbackSchema())
	require.NoError(t, err)
	require.Equal(t, genai.TypeObject, s.Type)
	require.Len(t, s.Properties, 4)
	require.Equal(t, genai.TypeArray, s.Properties["deliverySuggestions"].Type)
	require.Equal(t, genai.TypeString, s.Properties["deliverySuggestions"].Items.Type)
	require.Equal(t, genai.TypeNumber, s.Properties["overallScore"].Type)
	require.NotEmpty(t, s.Properties["overallScore"].Description)
	require.ElementsMatch(t, []string{
		"deliverySuggestions",
		"topicRelevanceFeedback",
		"audienceFriendlinessSuggestions",
		"overallScore",
	}, s.Required)
}

func TestToGenaiSchema_Enum(t *testing.T) {
	s, err := ToGenaiSchema(map[string]any{"type": "string", "enum": []any{"a", "b"}})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, s.Enum)
}

func TestToGenaiSchema_Errors(t *testing.T) {
	_, err := ToGenaiSchema(map[string]any{"type": "tuple"})
	require.Error(t, err)

	_, err = ToGenaiSchema(map[string]any{"type": "array"})
	require.Error(t, err)

	_, err = ToGenaiSchema(map[string]any{
		"type":       "object",
		"properties": map[string]any{"x": "string"},
	})
	require.Error(t, err)

	_, err = ToGenaiSchema(map[string]any{"type": "object", "required": []any{1}})
	require.Error(t, err)
}

func TestNewGeminiProvider_RequiresKey(t *testing.T) {
	_, err := NewGeminiProvider(context.Background(), " ", "gemini-2.0-flash")
	require.ErrorIs(t, err, ErrNoCredential)
}
