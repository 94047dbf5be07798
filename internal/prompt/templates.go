package prompt

const analysisCriteria = `You are an AI content analysis tool designed to provide feedback to content creators.

You will analyze the {{if .transcript}}video transcript{{else}}content{{end}} provided based on the following criteria:
- Delivery: How well the content is delivered (e.g. clarity, pacing, engagement).
- Topic Relevance: How relevant the topic is to the target audience.
- Audience Friendliness: How friendly the content is to the target audience (e.g. accessibility, inclusivity).

Provide specific and actionable suggestions for improvement in each of these areas.
Also provide an overall score between 0 and 1, where 1 is the best possible score, representing the overall quality of the content.
`

func registerAll() {
	register(Spec{
		Name:   ContentAnalysis,
		Schema: AIFeedbackSchema,
		Text: analysisCriteria + `
Content Title: {{.title}}
Content Description: {{.description}}
Content Category: {{.category}}
Content: {{.body}}`,
		Required: []string{FieldTitle, FieldDescription, FieldCategory, FieldBody},
	})

	register(Spec{
		Name:   VideoAnalysis,
		Schema: AIFeedbackSchema,
		Text: analysisCriteria + `
Content Title: {{.title}}
Content Description: {{.description}}
Video Transcript: {{.transcript}}

Please provide all feedback in {{.language}}.`,
		Required: []string{FieldTitle, FieldDescription, FieldTranscript, FieldLanguage},
	})

	register(Spec{
		Name:   CategorySuggestion,
		Schema: CategorySuggestionSchema,
		Text: `You are an expert in content categorization. Given the title, description, and a snippet of content, you will suggest relevant categories for the content.

Title: {{.title}}
Description: {{.description}}
Content Snippet: {{.contentSnippet}}

Please provide a list of categories and a brief explanation of your reasoning. Focus on categories that improve content discoverability.
Categories should be a simple array of strings, avoid bulleted lists or other formatting.
Reasoning should be clear and concise.`,
		Required: []string{FieldTitle, FieldDescription, FieldContentSnippet},
	})

	register(Spec{
		Name:   CommunitySummary,
		Schema: CommunitySummarySchema,
		Text: `You are an AI assistant tasked with summarizing community feedback on content.

Analyze the provided feedback to identify common themes, overall sentiment, and key points.
Provide a concise summary that captures the essence of the community's reaction to the content.

Title: {{.title}}
Feedback:
{{.feedback}}
{{if .language}}
Please write the summary in {{.language}}.{{end}}`,
		Required: []string{FieldTitle, FieldFeedback},
	})
}
