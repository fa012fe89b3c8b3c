// completion.go implements completion/complete's parameter shape. The
// "ref" field is a two-level discriminated union:
//
//	{"type":"ref/prompt","name":"..."}
//	{"type":"ref/resource","uri":"..."}
//
// Parsed with the same header-peek-then-dispatch idiom the teacher uses
// for ACP's session/update notifications (engine/acp/update.go): unmarshal
// just the discriminator field first, then dispatch on its value.
package mcp

import (
	"encoding/json"
	"fmt"
)

// CompletionRefKind discriminates a CompletionReference.
type CompletionRefKind string

const (
	CompletionRefPrompt   CompletionRefKind = "ref/prompt"
	CompletionRefResource CompletionRefKind = "ref/resource"
)

// CompletionReference is the "ref" argument of completion/complete,
// pointing at either a prompt (by name) or a resource (by URI template).
type CompletionReference struct {
	Kind CompletionRefKind
	Name string // populated when Kind == CompletionRefPrompt
	URI  string // populated when Kind == CompletionRefResource
}

// completionRefHeader extracts the discriminator from the raw ref object.
type completionRefHeader struct {
	Type string `json:"type"`
}

// UnmarshalJSON implements json.Unmarshaler by peeking the "type" field
// and then decoding the kind-specific fields.
func (r *CompletionReference) UnmarshalJSON(data []byte) error {
	var header completionRefHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return fmt.Errorf("mcp: unmarshal completion ref header: %w", err)
	}

	switch CompletionRefKind(header.Type) {
	case CompletionRefPrompt:
		var d struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &d); err != nil {
			return fmt.Errorf("mcp: unmarshal ref/prompt: %w", err)
		}
		r.Kind = CompletionRefPrompt
		r.Name = d.Name
	case CompletionRefResource:
		var d struct {
			URI string `json:"uri"`
		}
		if err := json.Unmarshal(data, &d); err != nil {
			return fmt.Errorf("mcp: unmarshal ref/resource: %w", err)
		}
		r.Kind = CompletionRefResource
		r.URI = d.URI
	default:
		return fmt.Errorf("mcp: unknown completion ref type %q", header.Type)
	}
	return nil
}

// MarshalJSON implements json.Marshaler, the inverse of UnmarshalJSON.
func (r CompletionReference) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case CompletionRefPrompt:
		return json.Marshal(struct {
			Type string `json:"type"`
			Name string `json:"name"`
		}{string(CompletionRefPrompt), r.Name})
	case CompletionRefResource:
		return json.Marshal(struct {
			Type string `json:"type"`
			URI  string `json:"uri"`
		}{string(CompletionRefResource), r.URI})
	default:
		return nil, fmt.Errorf("mcp: marshal completion ref: unset kind")
	}
}

// CompletionArgument names the argument being completed and the partial
// value typed so far.
type CompletionArgument struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CompleteParams is the params of completion/complete.
type CompleteParams struct {
	Ref      CompletionReference `json:"ref"`
	Argument CompletionArgument  `json:"argument"`
}

// Completion carries the candidate completion values.
type Completion struct {
	Values  []string `json:"values"`
	Total   int      `json:"total,omitempty"`
	HasMore bool     `json:"hasMore,omitempty"`
}

// CompleteResult is the result of completion/complete.
type CompleteResult struct {
	Completion Completion `json:"completion"`
}
