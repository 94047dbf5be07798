package llm

import (
	"context"
	"sync"
)

// StaticProvider replays a fixed answer, recording each prompt it receives
type StaticProvider struct {
	mu      sync.Mutex
	Answer  string
	Err     error
	Prompts []string
}

func (p *StaticProvider) GenerateJSON(ctx context.Context, prompt string, schema map[string]any) (string, error) {
	p.mu.Lock()
	p.Prompts = append(p.Prompts, prompt)
	p.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return p.Answer, p.Err
}

// Calls reports how many prompts the provider received
func (p *StaticProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Prompts)
}
