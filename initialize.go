package mcp

// InitializeParams are the params of the initialize request (§3 table).
type InitializeParams struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    ClientCapabilities `json:"capabilities"`
	ClientInfo      Implementation     `json:"clientInfo"`
}

// InitializeResult is the result of the initialize request.
type InitializeResult struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    ServerCapabilities `json:"capabilities"`
	ServerInfo      Implementation     `json:"serverInfo"`
}

// PingParams is the (possibly absent) params of a ping request.
type PingParams struct{}

// PingResult is the empty result of a ping request.
type PingResult struct{}

// InitializedParams is the params of the notifications/initialized
// notification, sent by the client after the initialize handshake
// completes. Carries nothing.
type InitializedParams struct{}

// CancelledParams is the params of notifications/cancelled.
type CancelledParams struct {
	RequestID RequestID `json:"requestId"`
	Reason    string    `json:"reason,omitempty"`
}

// ProgressParams is the params of notifications/progress.
type ProgressParams struct {
	ProgressToken string  `json:"progressToken"`
	Progress      float64 `json:"progress"`
	Total         float64 `json:"total,omitempty"`
	Message       string  `json:"message,omitempty"`
}

// LoggingMessageParams is the params of notifications/message.
type LoggingMessageParams struct {
	Level  LoggingLevel `json:"level"`
	Logger string       `json:"logger,omitempty"`
	Data   any          `json:"data"`
}
