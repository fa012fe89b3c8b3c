// registry.go implements the process-wide handler registry (§3, §6):
// generated code populates two disjoint namespaces — prompts and tools —
// during process init, before any peer starts. Entries are never mutated
// after that (§3 lifecycle), so one package-level map per namespace,
// guarded by a single mutex that registration and lookup both take, is
// sufficient (§9 design note:
// "a global, init-once table is acceptable because handlers are
// pure-by-name and added only by generated code").
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Handler is generated glue that validates a JSON argument object and
// invokes a user function (§3, §4.7).
type Handler interface {
	Call(ctx context.Context, args json.RawMessage) (any, error)
}

// SchemaProvider is implemented by generated tool handlers that can
// advertise the JSON Schema for their argument envelope (SUPPLEMENTED
// FEATURE 5): tools/list's inputSchema reads it via LookupTool's type
// assertion rather than a bare name-only listing.
type SchemaProvider interface {
	InputSchema() json.RawMessage
}

// PromptArgumentLister is implemented by generated prompt handlers that
// can advertise their argument names and which are required, for
// prompts/list.
type PromptArgumentLister interface {
	PromptArguments() []PromptArgument
}

var (
	registryMu     sync.Mutex
	promptRegistry = map[string]Handler{}
	toolRegistry   = map[string]Handler{}
)

// RegisterPrompt adds a prompt handler under name. Called by generated
// code during process init. Panics on a duplicate name — per §6, "Names
// in each namespace must be unique; duplicates are a build-time error,"
// and a runtime panic at init time is the practical Go equivalent when
// the generator itself can't enforce it across separately compiled
// packages.
func RegisterPrompt(name string, h Handler) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := promptRegistry[name]; exists {
		panic(fmt.Sprintf("mcp: duplicate prompt handler registered for %q", name))
	}
	promptRegistry[name] = h
}

// RegisterTool adds a tool handler under name. Called by generated code
// during process init. Panics on a duplicate name (see RegisterPrompt).
func RegisterTool(name string, h Handler) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := toolRegistry[name]; exists {
		panic(fmt.Sprintf("mcp: duplicate tool handler registered for %q", name))
	}
	toolRegistry[name] = h
}

// LookupPrompt returns the registered prompt handler for name, if any.
func LookupPrompt(name string) (Handler, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	h, ok := promptRegistry[name]
	return h, ok
}

// LookupTool returns the registered tool handler for name, if any.
func LookupTool(name string) (Handler, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	h, ok := toolRegistry[name]
	return h, ok
}

// RegisteredPromptNames returns the currently registered prompt names, in
// no particular order. Useful for building a prompts/list handler.
func RegisteredPromptNames() []string {
	registryMu.Lock()
	defer registryMu.Unlock()
	names := make([]string, 0, len(promptRegistry))
	for name := range promptRegistry {
		names = append(names, name)
	}
	return names
}

// RegisteredToolNames returns the currently registered tool names, in no
// particular order. Useful for building a tools/list handler.
func RegisteredToolNames() []string {
	registryMu.Lock()
	defer registryMu.Unlock()
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}
