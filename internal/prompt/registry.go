package prompt

import "fmt"

// Prompt is a rendered template ready for the model client
type Prompt struct {
	Name   Name
	Text   string
	Schema map[string]any
}

var registry = map[Name]Template{}

func register(s Spec) {
	t, err := Compile(s)
	if err != nil {
		panic(err)
	}
	registry[t.Name] = t
}

func init() {
	registerAll()
}

// Build renders the named template and attaches its output schema
func Build(name Name, fields Fields) (Prompt, error) {
	t, ok := registry[name]
	if !ok {
		return Prompt{}, fmt.Errorf("unknown prompt: %s", name)
	}
	text, err := t.execute(fields)
	if err != nil {
		return Prompt{}, err
	}
	return Prompt{Name: name, Text: text, Schema: t.Schema()}, nil
}

// Render fills the named template with fields
func Render(name Name, fields Fields) (string, error) {
	p, err := Build(name, fields)
	if err != nil {
		return "", err
	}
	return p.Text, nil
}

// Schema returns the output schema registered for a prompt
func Schema(name Name) (map[string]any, bool) {
	t, ok := registry[name]
	if !ok {
		return nil, false
	}
	return t.Schema(), true
}
