package prompt

func ObjectSchema(properties map[string]any, required ...string) map[string]any {
	req := make([]any, 0, len(required))
	for _, r := range required {
		req = append(req, r)
	}
	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   req,
	}
}

func StringSchema(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func StringArraySchema(description string) map[string]any {
	return map[string]any{
		"type":        "array",
		"description": description,
		"items":       map[string]any{"type": "string"},
	}
}

func NumberSchema(description string) map[string]any {
	return map[string]any{"type": "number", "description": description}
}

// AIFeedbackSchema describes the canonical feedback answer
func AIFeedbackSchema() map[string]any {
	return ObjectSchema(map[string]any{
		"deliverySuggestions":             StringArraySchema("Suggestions for improving the delivery of the content."),
		"topicRelevanceFeedback":          StringSchema("Feedback on the relevance of the topic to the target audience."),
		"audienceFriendlinessSuggestions": StringArraySchema("Suggestions for making the content more audience-friendly."),
		"overallScore":                    NumberSchema("Overall quality score between 0 and 1, higher is better."),
	}, "deliverySuggestions", "topicRelevanceFeedback", "audienceFriendlinessSuggestions", "overallScore")
}

func CategorySuggestionSchema() map[string]any {
	return ObjectSchema(map[string]any{
		"categories": StringArraySchema("Relevant categories for the content, one plain string each."),
		"reasoning":  StringSchema("Brief explanation of which aspects of the content led to these categories."),
	}, "categories", "reasoning")
}

func CommunitySummarySchema() map[string]any {
	return ObjectSchema(map[string]any{
		"summary":   StringSchema("Concise summary of the community feedback."),
		"themes":    StringSchema("Common themes identified in the feedback."),
		"sentiment": StringSchema("Overall sentiment, e.g. positive, negative, mixed."),
	}, "summary", "themes", "sentiment")
}
