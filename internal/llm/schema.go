package llm

import (
	"fmt"

	"github.com/google/generative-ai-go/genai"
)

var schemaTypes = map[string]genai.Type{
	"string":  genai.TypeString,
	"number":  genai.TypeNumber,
	"integer": genai.TypeInteger,
	"boolean": genai.TypeBoolean,
	"array":   genai.TypeArray,
	"object":  genai.TypeObject,
}

// ToGenaiSchema converts a JSON-schema shaped map into the Gemini response schema
func ToGenaiSchema(m map[string]any) (*genai.Schema, error) {
	typeName, _ := m["type"].(string)
	t, ok := schemaTypes[typeName]
	if !ok {
		return nil, fmt.Errorf("unsupported schema type %v", m["type"])
	}
	s := &genai.Schema{Type: t}
	if d, ok := m["description"].(string); ok {
		s.Description = d
	}
	if enum, ok := m["enum"]; ok {
		values, err := stringList(enum)
		if err != nil {
			return nil, fmt.Errorf("enum: %w", err)
		}
		s.Enum = values
	}

	switch t {
	case genai.TypeArray:
		items, ok := m["items"].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("array schema without items")
		}
		is, err := ToGenaiSchema(items)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		s.Items = is
	case genai.TypeObject:
		props, _ := m["properties"].(map[string]any)
		s.Properties = make(map[string]*genai.Schema, len(props))
		for name, raw := range props {
			pm, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("property %s: not an object", name)
			}
			ps, err := ToGenaiSchema(pm)
			if err != nil {
				return nil, fmt.Errorf("property %s: %w", name, err)
			}
			s.Properties[name] = ps
		}
		if req, ok := m["required"]; ok {
			names, err := stringList(req)
			if err != nil {
				return nil, fmt.Errorf("required: %w", err)
			}
			s.Required = names
		}
	}
	return s, nil
}

func stringList(v any) ([]string, error) {
	switch vs := v.(type) {
	case []string:
		return vs, nil
	case []any:
		out := make([]string, 0, len(vs))
		for _, x := range vs {
			s, ok := x.(string)
			if !ok {
				return nil, fmt.Errorf("non-string value %v", x)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a list of strings, got %T", v)
	}
}
