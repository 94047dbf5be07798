package prompt

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// Fields are the named values substituted into a template
type Fields map[string]string

// Spec declares one prompt: its text and the JSON schema of the expected answer
type Spec struct {
	Name   Name
	Schema func() map[string]any
	// Go template using {{.field}} keys from Fields
	Text     string
	Required []string
}

// Template is a compiled Spec
type Template struct {
	Name     Name
	Schema   func() map[string]any
	Required []string
	render   *template.Template
}

// Compile parses a Spec into a Template
func Compile(s Spec) (Template, error) {
	if strings.TrimSpace(string(s.Name)) == "" {
		return Template{}, fmt.Errorf("missing prompt name")
	}
	if s.Schema == nil {
		return Template{}, fmt.Errorf("missing schema func for %s", s.Name)
	}
	t, err := template.New(string(s.Name)).Option("missingkey=zero").Parse(s.Text)
	if err != nil {
		return Template{}, fmt.Errorf("%s template parse: %w", s.Name, err)
	}
	return Template{
		Name:     s.Name,
		Schema:   s.Schema,
		Required: s.Required,
		render:   t,
	}, nil
}

func (t Template) execute(f Fields) (string, error) {
	for _, key := range t.Required {
		if strings.TrimSpace(f[key]) == "" {
			return "", fmt.Errorf("%s: missing field %q", t.Name, key)
		}
	}
	if f == nil {
		f = Fields{}
	}
	var b bytes.Buffer
	if err := t.render.Execute(&b, f); err != nil {
		return "", fmt.Errorf("%s: render: %w", t.Name, err)
	}
	return strings.TrimSpace(b.String()), nil
}
