package mcp

import "context"

// Handlers holds one typed, overridable operation per request method
// (§4.5: "Typed request handlers are defined as overridable operations per
// method. Default for each returns NotImplemented."). A nil field is
// exactly that default — handle() maps it to ErrNotImplemented, which the
// dispatcher turns into a -32601 response.
//
// Both connection roles use the same Handlers type; a client typically
// only sets RootsList and SamplingCreateMessage, a server typically sets
// everything else.
type Handlers struct {
	Initialize             func(ctx context.Context, params *InitializeParams) (*InitializeResult, error)
	Ping                   func(ctx context.Context, params *PingParams) (*PingResult, error)
	ToolsList              func(ctx context.Context, params *ListToolsParams) (*ListToolsResult, error)
	ToolsCall              func(ctx context.Context, params *CallToolParams) (*CallToolResult, error)
	PromptsList            func(ctx context.Context, params *ListPromptsParams) (*ListPromptsResult, error)
	PromptsGet             func(ctx context.Context, params *GetPromptParams) (*GetPromptResult, error)
	ResourcesList          func(ctx context.Context, params *ListResourcesParams) (*ListResourcesResult, error)
	ResourcesTemplatesList func(ctx context.Context, params *ListResourceTemplatesParams) (*ListResourceTemplatesResult, error)
	ResourcesRead          func(ctx context.Context, params *ReadResourceParams) (*ReadResourceResult, error)
	ResourcesSubscribe     func(ctx context.Context, params *SubscribeResourceParams) (*struct{}, error)
	ResourcesUnsubscribe   func(ctx context.Context, params *SubscribeResourceParams) (*struct{}, error)
	RootsList              func(ctx context.Context, params *ListRootsParams) (*ListRootsResult, error)
	SamplingCreateMessage  func(ctx context.Context, params *CreateMessageParams) (*CreateMessageResult, error)
	LoggingSetLevel        func(ctx context.Context, params *SetLevelParams) (*SetLevelResult, error)
	CompletionComplete     func(ctx context.Context, params *CompleteParams) (*CompleteResult, error)
}

// NotificationHandlers holds one typed, overridable operation per
// notification method. These return nothing; a panic in one is recovered
// and logged (§4.5, §7 — notifications never reply).
type NotificationHandlers struct {
	Initialized          func(ctx context.Context, params *InitializedParams)
	Cancelled            func(ctx context.Context, params *CancelledParams)
	Progress             func(ctx context.Context, params *ProgressParams)
	Message              func(ctx context.Context, params *LoggingMessageParams)
	PromptsListChanged   func(ctx context.Context)
	ResourcesListChanged func(ctx context.Context)
	ResourcesUpdated     func(ctx context.Context, params *ResourceUpdatedParams)
	RootsListChanged     func(ctx context.Context)
	ToolsListChanged     func(ctx context.Context)
}
