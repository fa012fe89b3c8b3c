package gen

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Schema builds the JSON Schema object for d: generated tool handlers
// advertise it as tools/list's inputSchema, and generated handlers of both
// kinds validate incoming arguments against it (SUPPLEMENTED FEATURE 5:
// real schema validation, not just a known/required-key check). Prompt
// handlers advertise only their argument names and required flags, not
// this schema. Grounded on teradata-labs-loom's gojsonschema.NewGoLoader usage
// in ValidateToolArguments — the same Go value shape (map[string]any)
// works both as the advertised schema and as the loader input here.
func Schema(d *FuncDescriptor) map[string]any {
	properties := make(map[string]any, len(d.Params))
	var required []string
	for _, p := range d.Params {
		properties[p.Name] = jsonSchemaType(p.GoType)
		if !p.Optional {
			required = append(required, p.Name)
		}
	}
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func jsonSchemaType(goType string) map[string]any {
	t := goType
	if len(t) > 0 && t[0] == '*' {
		t = t[1:]
	}
	switch t {
	case "string":
		return map[string]any{"type": "string"}
	case "int", "int32", "int64", "uint", "uint32", "uint64":
		return map[string]any{"type": "integer"}
	case "float32", "float64":
		return map[string]any{"type": "number"}
	case "bool":
		return map[string]any{"type": "boolean"}
	default:
		if len(t) > 2 && t[:2] == "[]" {
			return map[string]any{"type": "array", "items": jsonSchemaType(t[2:])}
		}
		return map[string]any{"type": "object"}
	}
}

// Validate checks args (a decoded JSON object) against d's schema using
// gojsonschema, returning a joined error message for every violation
// (§7 InvalidParams / IllegalArgument).
func Validate(d *FuncDescriptor, args map[string]any) error {
	schemaLoader := gojsonschema.NewGoLoader(Schema(d))
	argsLoader := gojsonschema.NewGoLoader(args)

	result, err := gojsonschema.Validate(schemaLoader, argsLoader)
	if err != nil {
		return fmt.Errorf("gen: schema validation failed: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, len(result.Errors()))
		for i, e := range result.Errors() {
			msgs[i] = e.String()
		}
		return fmt.Errorf("gen: invalid arguments: %v", msgs)
	}
	return nil
}
