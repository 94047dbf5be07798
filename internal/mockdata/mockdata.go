package mockdata

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"creatorlab/internal/model"
)

//go:embed corpus.yaml
var corpusYAML []byte

// Corpus is the static sample data set
type Corpus struct {
	Contents          []model.Content        `yaml:"contents"`
	CategoryReasoning string                 `yaml:"categoryReasoning"`
	EmptySummary      model.CommunitySummary `yaml:"emptySummary"`
	DegradedSummary   model.CommunitySummary `yaml:"degradedSummary"`
}

// Load parses the embedded corpus
func Load() (*Corpus, error) {
	return Parse(corpusYAML)
}

// MustLoad is Load for process start; the corpus is compiled in, so failure is a build defect
func MustLoad() *Corpus {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes a corpus document
func Parse(data []byte) (*Corpus, error) {
	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}
	if _, ok := c.firstFeedback(); !ok {
		return nil, errors.New("corpus has no sample with aiFeedback")
	}
	return &c, nil
}

func (c *Corpus) firstFeedback() (*model.AIFeedback, bool) {
	for i := range c.Contents {
		if c.Contents[i].AIFeedback != nil {
			return c.Contents[i].AIFeedback, true
		}
	}
	return nil, false
}

// CannedFeedback returns a copy of the first sample's feedback
func (c *Corpus) CannedFeedback() model.AIFeedback {
	fb, _ := c.firstFeedback()
	return CopyFeedback(*fb)
}

// CannedSuggestion suggests the full category list
func (c *Corpus) CannedSuggestion() model.CategorySuggestion {
	names := make([]string, 0, len(model.Categories))
	for _, cat := range model.Categories {
		names = append(names, string(cat))
	}
	return model.CategorySuggestion{Categories: names, Reasoning: c.CategoryReasoning}
}

// CloneContents returns deep copies of the sample contents
func (c *Corpus) CloneContents() []model.Content {
	out := make([]model.Content, 0, len(c.Contents))
	for _, item := range c.Contents {
		out = append(out, CopyContent(item))
	}
	return out
}

func CopyFeedback(f model.AIFeedback) model.AIFeedback {
	f.DeliverySuggestions = append([]string(nil), f.DeliverySuggestions...)
	f.AudienceFriendlinessSuggestions = append([]string(nil), f.AudienceFriendlinessSuggestions...)
	return f
}

func CopyContent(c model.Content) model.Content {
	if c.AIFeedback != nil {
		fb := CopyFeedback(*c.AIFeedback)
		c.AIFeedback = &fb
	}
	c.CommunityFeedback = append([]model.CommunityComment{}, c.CommunityFeedback...)
	return c
}
