package gen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"
)

// funcTemplateData pairs a descriptor with its schema pre-rendered as a Go
// string literal, computed once per Emit call rather than re-derived
// inside the template.
type funcTemplateData struct {
	*FuncDescriptor
	SchemaLiteral string
}

// Emit renders the generated source file for one package's worth of
// descriptors: one parameter envelope struct and one handler dispatcher
// per function, plus an init() that calls mcp.RegisterTool/RegisterPrompt
// for each (§6 "Handler registry bootstrap: generated code populates the
// registry during process initialization"). Each handler embeds its JSON
// Schema (built by Schema) as a package-level literal and validates
// incoming arguments against it with gojsonschema at call time, in
// addition to the named-error known/required-key check (SUPPLEMENTED
// FEATURE 5) — and exposes that schema (tools) or its argument list
// (prompts) to the registry via the SchemaProvider/PromptArgumentLister
// interfaces, so tools/list and prompts/list can advertise it instead of
// a bare name. The output is gofmt'd before being returned; go/format is
// stdlib because gofmt output is exactly what every generator in the Go
// ecosystem (stringer, protoc-gen-go, mockgen) produces — there is no
// third-party alternative in the pack or otherwise that improves on it.
func Emit(pkgName string, descs []*FuncDescriptor) ([]byte, error) {
	data := make([]funcTemplateData, 0, len(descs))
	for _, d := range descs {
		schemaJSON, err := json.Marshal(Schema(d))
		if err != nil {
			return nil, fmt.Errorf("gen: marshal schema for %s: %w", d.FuncName, err)
		}
		data = append(data, funcTemplateData{FuncDescriptor: d, SchemaLiteral: strconv.Quote(string(schemaJSON))})
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, struct {
		Package string
		Funcs   []funcTemplateData
	}{Package: pkgName, Funcs: data}); err != nil {
		return nil, fmt.Errorf("gen: execute template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: gofmt generated source: %w\n%s", err, buf.String())
	}
	return formatted, nil
}

var funcMap = template.FuncMap{
	"envelopeField": envelopeField,
	"leaves":        decisionLeaves,
	"callArgs":      callArgs,
	"resultType":    func(d *FuncDescriptor) string { return "mcp." + d.ResultType },
}

var fileTemplate = template.Must(template.New("generated").Funcs(funcMap).Parse(`// Code generated by mcpgen. DO NOT EDIT.

package {{.Package}}

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/dmora/mcpgo"
	"github.com/xeipuuv/gojsonschema"
)

{{range .Funcs}}
// {{.EnvelopeName}} is the decoded argument envelope for {{.FuncName}}.
type {{.EnvelopeName}} struct {
{{- range .Params}}
	{{envelopeField .}}
{{- end}}
}

// {{.FuncName}}Schema is the JSON Schema advertised for {{.FuncName}} and
// used to validate incoming arguments before they are decoded.
var {{.FuncName}}Schema = json.RawMessage({{.SchemaLiteral}})

// {{.HandlerName}} dispatches validated arguments to {{.FuncName}}.
type {{.HandlerName}} struct{}

func (h {{.HandlerName}}) Call(ctx context.Context, raw json.RawMessage) (any, error) {
	var incoming map[string]json.RawMessage
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &incoming); err != nil {
			return nil, &mcp.IllegalArgument{Msg: err.Error()}
		}
	}

	known := map[string]struct{}{
{{- range .Params}}
		"{{.Name}}": {},
{{- end}}
	}
	for key := range incoming {
		if _, ok := known[key]; !ok {
			return nil, &mcp.UnknownArgument{Name: key}
		}
	}
{{range .Required}}
	if _, ok := incoming["{{.Name}}"]; !ok {
		return nil, &mcp.MissingRequiredArgument{Name: "{{.Name}}"}
	}
{{- end}}

	if len(raw) > 0 {
		schemaLoader := gojsonschema.NewBytesLoader({{.FuncName}}Schema)
		docLoader := gojsonschema.NewBytesLoader(raw)
		result, err := gojsonschema.Validate(schemaLoader, docLoader)
		if err != nil {
			return nil, &mcp.IllegalArgument{Msg: err.Error()}
		}
		if !result.Valid() {
			msgs := make([]string, len(result.Errors()))
			for i, e := range result.Errors() {
				msgs[i] = e.String()
			}
			return nil, &mcp.IllegalArgument{Msg: strings.Join(msgs, "; ")}
		}
	}

	var decoded {{.EnvelopeName}}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, &mcp.IllegalArgument{Msg: err.Error()}
		}
	}

{{leaves .FuncDescriptor}}
}

{{if eq .Kind.String "tool"}}
// InputSchema implements mcp.SchemaProvider, advertised by tools/list.
func (h {{.HandlerName}}) InputSchema() json.RawMessage {
	return {{.FuncName}}Schema
}
{{else}}
// PromptArguments implements mcp.PromptArgumentLister, advertised by
// prompts/list.
func (h {{.HandlerName}}) PromptArguments() []mcp.PromptArgument {
	return []mcp.PromptArgument{
{{- range .Required}}
		{Name: "{{.Name}}", Required: true},
{{- end}}
{{- range .Optionals}}
		{Name: "{{.Name}}"},
{{- end}}
	}
}
{{end}}

func init() {
{{- if eq .Kind.String "tool"}}
	mcp.RegisterTool("{{.Name}}", {{.HandlerName}}{})
{{- else}}
	mcp.RegisterPrompt("{{.Name}}", {{.HandlerName}}{})
{{- end}}
}
{{end}}
`))

func envelopeField(p ParamDescriptor) string {
	fieldName := strings.ToUpper(p.Name[:1]) + p.Name[1:]
	jsonType := p.GoType
	if p.Optional {
		return fmt.Sprintf("%s %s `json:\"%s,omitempty\"`", fieldName, jsonType, p.Name)
	}
	return fmt.Sprintf("%s %s `json:\"%s\"`", fieldName, jsonType, p.Name)
}

// decisionLeaves renders the 2^N-branch decision tree of §4.7: for N
// optional parameters it emits nested "if decoded.X != nil { ... } else {
// ... }" branches, one direct call expression per leaf, required
// parameters always forwarded, optional ones passed as nil or
// decoded.Field (the envelope field already has the parameter's pointer
// type) per the §4.7 redesign decision recorded in SPEC_FULL.md.
func decisionLeaves(d *FuncDescriptor) (string, error) {
	opts := d.Optionals()
	var b strings.Builder
	emitLeaf(&b, d, opts, map[string]bool{}, 0)
	return b.String(), nil
}

func emitLeaf(b *strings.Builder, d *FuncDescriptor, opts []ParamDescriptor, present map[string]bool, depth int) {
	indent := strings.Repeat("\t", depth+1)
	if depth == len(opts) {
		fmt.Fprintf(b, "%sresult, err := %s(%s)\n", indent, d.FuncName, callArgs(d, present))
		fmt.Fprintf(b, "%sif err != nil {\n%s\treturn nil, err\n%s}\n", indent, indent, indent)
		fmt.Fprintf(b, "%sreturn result, nil\n", indent)
		return
	}

	p := opts[depth]
	fieldName := strings.ToUpper(p.Name[:1]) + p.Name[1:]
	fmt.Fprintf(b, "%sif decoded.%s != nil {\n", indent, fieldName)
	present[p.Name] = true
	emitLeaf(b, d, opts, present, depth+1)
	fmt.Fprintf(b, "%s} else {\n", indent)
	present[p.Name] = false
	emitLeaf(b, d, opts, present, depth+1)
	fmt.Fprintf(b, "%s}\n", indent)
}

// callArgs renders the argument list for one decision-tree leaf: context
// first if TakesContext, then every parameter in source order, required
// ones as decoded.Field, optional ones as decoded.Field (already *T) when
// present in this leaf or nil when absent.
func callArgs(d *FuncDescriptor, present map[string]bool) string {
	var args []string
	if d.TakesContext {
		args = append(args, "ctx")
	}
	for _, p := range d.Params {
		fieldName := strings.ToUpper(p.Name[:1]) + p.Name[1:]
		if !p.Optional {
			args = append(args, "decoded."+fieldName)
			continue
		}
		if present[p.Name] {
			args = append(args, "decoded."+fieldName)
		} else {
			args = append(args, "nil")
		}
	}
	return strings.Join(args, ", ")
}
