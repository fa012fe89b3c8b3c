// Package gen implements the build-time code generator (§4.7): it scans
// Go source for functions marked as prompts or tools, builds a descriptor
// of their signature, and emits a parameter envelope type plus a handler
// dispatcher per function.
//
// Go has neither annotations nor runtime-preserved parameter names (the
// reflect package erases them), so eligibility is detected the same way
// godoc/go-licenses and friends detect markers: a source-level scan with
// go/parser + go/ast looking for a doc-comment directive, not a runtime
// reflection pass. This is the direct Go analogue of an annotation
// processor running over an AST rather than over compiled bytecode.
package gen

// Kind is the generator-recognized function category.
type Kind int

const (
	KindTool Kind = iota
	KindPrompt
)

func (k Kind) String() string {
	if k == KindTool {
		return "tool"
	}
	return "prompt"
}

// ParamDescriptor describes one parameter of a marked function, in
// source declaration order.
type ParamDescriptor struct {
	// Name is the Go parameter name, reused verbatim as the JSON key.
	Name string
	// GoType is the parameter's type as written in source (e.g. "string",
	// "int", "*string", "[]string").
	GoType string
	// Optional is true when GoType is a pointer type — the §4.7 redesign
	// decision's expression of "has a default": nil means the caller
	// omitted the key, and the target function itself decides what nil
	// means.
	Optional bool
}

// FuncDescriptor is the reflected signature of one marked function,
// collected by scan.go from the AST (§4.7: "collect a
// PromptHelper/ToolHelper descriptor from the reflected signature").
type FuncDescriptor struct {
	// Kind is tool or prompt, taken from the doc-comment marker.
	Kind Kind
	// Name is the registered handler name (defaults to the function name;
	// overridable via the marker, e.g. "mcp:tool name=get_weather").
	Name string
	// FuncName is the Go function identifier, used to generate the call
	// expression and the envelope type name.
	FuncName string
	// Package is the import path of the package declaring FuncName,
	// needed to qualify the call expression in generated code.
	Package string
	// Params are the function's parameters in source order. The first
	// parameter may be a context.Context, which is recognized and
	// excluded from the JSON envelope and from known/required-key
	// checks, but is still forwarded at the call site.
	Params []ParamDescriptor
	// TakesContext is true when the first parameter is context.Context.
	TakesContext bool
	// ResultType is the declared return type's name (e.g. "CallToolResult",
	// "GetPromptResult"), checked against the expected result type for
	// Kind (§4.7 invariant: "enforce that the returned value is the
	// tool's declared result type").
	ResultType string
}

// Required returns the subset of Params that are not Optional, in source
// order.
func (d *FuncDescriptor) Required() []ParamDescriptor {
	var req []ParamDescriptor
	for _, p := range d.Params {
		if !p.Optional {
			req = append(req, p)
		}
	}
	return req
}

// Optionals returns the subset of Params that are Optional, in source
// order.
func (d *FuncDescriptor) Optionals() []ParamDescriptor {
	var opt []ParamDescriptor
	for _, p := range d.Params {
		if p.Optional {
			opt = append(opt, p)
		}
	}
	return opt
}

// KnownNames returns every parameter name, required and optional,
// excluding a leading context.Context — this is the "known parameter
// names" set of §4.7 step 1.
func (d *FuncDescriptor) KnownNames() map[string]struct{} {
	names := make(map[string]struct{}, len(d.Params))
	for _, p := range d.Params {
		names[p.Name] = struct{}{}
	}
	return names
}

// EnvelopeName is the deterministic name of the generated parameter
// envelope struct for this function (§4.7: "a serializable record named
// deterministically from the function name").
func (d *FuncDescriptor) EnvelopeName() string {
	return d.FuncName + "Params"
}

// HandlerName is the deterministic name of the generated dispatcher type.
func (d *FuncDescriptor) HandlerName() string {
	return d.FuncName + "Handler"
}

// LeafCount returns 2^N for N optional parameters, the exact number of
// decision-tree leaves the generator must emit (§4.7 invariant).
func (d *FuncDescriptor) LeafCount() int {
	n := len(d.Optionals())
	return 1 << uint(n)
}
