package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"creatorlab/internal/logger"
	"creatorlab/internal/prompt"
	"creatorlab/internal/validation"
)

// Provider sends one prompt and returns the model's raw JSON answer
type Provider interface {
	GenerateJSON(ctx context.Context, prompt string, schema map[string]any) (string, error)
}

// Client invokes a Provider and parses its answer into a validated output struct
type Client struct {
	provider Provider
	validate *validation.Validator
	timeout  time.Duration
	log      *logger.Logger
}

// NewClient creates a model client. A nil provider makes every call fail with ErrNoCredential.
func NewClient(provider Provider, v *validation.Validator, timeout time.Duration, log *logger.Logger) *Client {
	if v == nil {
		v = validation.New()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		provider: provider,
		validate: v,
		timeout:  timeout,
		log:      log.With("service", "ModelClient"),
	}
}

// Invoke sends p to the provider once and decodes the answer into out.
// out must be a pointer to a struct carrying validate tags.
func (c *Client) Invoke(ctx context.Context, p prompt.Prompt, out any) error {
	ctx, span := otel.Tracer("creatorlab/llm").Start(ctx, "model.invoke")
	defer span.End()
	span.SetAttributes(attribute.String("prompt.name", string(p.Name)))

	err := c.invoke(ctx, p, out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (c *Client) invoke(ctx context.Context, p prompt.Prompt, out any) error {
	if c.provider == nil {
		return &ModelError{Op: "invoke", Err: ErrNoCredential}
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := c.provider.GenerateJSON(ctx, p.Text, p.Schema)
	if err != nil {
		return &ModelError{Op: "generate", Err: err}
	}
	c.log.Debug("model answered", "prompt", p.Name, "latency_ms", time.Since(start).Milliseconds(), "bytes", len(raw))

	raw = stripFences(raw)
	if raw == "" {
		return &ModelError{Op: "generate", Err: ErrEmptyResponse}
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return &ModelError{Op: "decode", Err: fmt.Errorf("%w: %v", ErrSchemaViolation, err)}
	}
	if err := c.validate.Struct(out); err != nil {
		return &ModelError{Op: "validate", Err: fmt.Errorf("%w: %v", ErrSchemaViolation, err)}
	}
	return nil
}

// stripFences removes a markdown code fence some models wrap JSON in
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
