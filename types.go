package mcp

import "encoding/json"

// Implementation identifies a client or server (used for both clientInfo
// and serverInfo).
type Implementation struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ListChanged declares whether a capability area emits
// notifications/*/list_changed when its contents change.
type ListChanged struct {
	ListChanged bool `json:"listChanged,omitempty"`
}

// ResourcesCapability additionally declares subscribe support.
type ResourcesCapability struct {
	Subscribe   bool `json:"subscribe,omitempty"`
	ListChanged bool `json:"listChanged,omitempty"`
}

// ClientCapabilities declares which client-side operations the client
// supports.
type ClientCapabilities struct {
	Experimental map[string]any `json:"experimental,omitempty"`
	Roots        *ListChanged   `json:"roots,omitempty"`
	Sampling     map[string]any `json:"sampling,omitempty"`
}

// ServerCapabilities declares what the server supports.
type ServerCapabilities struct {
	Experimental map[string]any       `json:"experimental,omitempty"`
	Logging      map[string]any       `json:"logging,omitempty"`
	Prompts      *ListChanged         `json:"prompts,omitempty"`
	Resources    *ResourcesCapability `json:"resources,omitempty"`
	Tools        *ListChanged         `json:"tools,omitempty"`
}

// ContentRole identifies the sender/recipient of a content block in a
// conversation, per MCP's message model (unrelated to the peer Role type
// in methods.go, which is a connection-level concept).
type ContentRole string

const (
	ContentRoleUser      ContentRole = "user"
	ContentRoleAssistant ContentRole = "assistant"
)

// ContentBlock is a single piece of conversation content. Exactly one of
// Text, Data (for image content) or Resource applies, discriminated by
// Type.
type ContentBlock struct {
	Type string `json:"type"` // "text" | "image" | "resource"

	// Text is populated when Type == "text".
	Text string `json:"text,omitempty"`

	// Data and MimeType are populated when Type == "image".
	Data     string `json:"data,omitempty"`
	MimeType string `json:"mimeType,omitempty"`

	// Resource is populated when Type == "resource".
	Resource *ResourceContents `json:"resource,omitempty"`
}

// TextBlock is a convenience constructor for the common case.
func TextBlock(text string) ContentBlock {
	return ContentBlock{Type: "text", Text: text}
}

// ResourceContents is the per-resource payload of a resources/read result,
// or the embedded resource of a "resource"-typed ContentBlock. Exactly one
// of Text or Blob is populated, discriminated by presence (§9 design note:
// modeled the way xxsc0529-genai-toolbox's TextContent/Annotated shapes
// and teradata-labs-loom's resource types represent MCP content).
type ResourceContents struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
	Blob     string `json:"blob,omitempty"` // base64
}

// Tool describes one callable tool, as advertised by tools/list.
type Tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

// Prompt describes one invocable prompt, as advertised by prompts/list.
type Prompt struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Arguments   []PromptArgument `json:"arguments,omitempty"`
}

// PromptArgument describes one argument a prompt accepts.
type PromptArgument struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required,omitempty"`
}

// PromptMessage is one role-tagged message in a prompt's rendered template.
type PromptMessage struct {
	Role    ContentRole  `json:"role"`
	Content ContentBlock `json:"content"`
}

// Resource describes one resource a server exposes.
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
}

// ResourceTemplate describes a URI template a server exposes for
// parameterized resource access.
type ResourceTemplate struct {
	URITemplate string `json:"uriTemplate"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
}

// Root describes one filesystem root the client exposes to the server.
type Root struct {
	URI  string `json:"uri"`
	Name string `json:"name,omitempty"`
}

// ModelHint is a soft hint toward a particular model family.
type ModelHint struct {
	Name string `json:"name,omitempty"`
}

// ModelPreferences guides the server's model choice for sampling/createMessage.
type ModelPreferences struct {
	Hints                []ModelHint `json:"hints,omitempty"`
	CostPriority         float64     `json:"costPriority,omitempty"`
	SpeedPriority        float64     `json:"speedPriority,omitempty"`
	IntelligencePriority float64     `json:"intelligencePriority,omitempty"`
}

// SamplingMessage is one message in a sampling/createMessage conversation.
type SamplingMessage struct {
	Role    ContentRole  `json:"role"`
	Content ContentBlock `json:"content"`
}

// LoggingLevel is one of the RFC 5424 syslog severities MCP's
// logging/setLevel and notifications/message use.
type LoggingLevel string

const (
	LogDebug     LoggingLevel = "debug"
	LogInfo      LoggingLevel = "info"
	LogNotice    LoggingLevel = "notice"
	LogWarning   LoggingLevel = "warning"
	LogError     LoggingLevel = "error"
	LogCritical  LoggingLevel = "critical"
	LogAlert     LoggingLevel = "alert"
	LogEmergency LoggingLevel = "emergency"
)
