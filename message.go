package mcp

import "encoding/json"

// outboundRequest is a request or notification frame we write to the
// transport. ID is nil for notifications.
type outboundRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      *RequestID  `json:"id,omitempty"`
	Method  string      `json:"method"`
	Params  any         `json:"params,omitempty"`
}

// outboundResponse is a response frame we write to the transport, in
// reply to a request the remote peer sent us.
type outboundResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      RequestID       `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// inboundFrame is a generic inbound JSON-RPC 2.0 message. Exactly one of
// the three shapes (request, response, notification) applies, determined
// by decode() per the §4.1 dispatch rules.
type inboundFrame struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      *RequestID      `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// Kind discriminates the three message variants of §3's tagged union.
type Kind int

const (
	// KindRequest is a message with both a method and an id, expecting a reply.
	KindRequest Kind = iota
	// KindResponse is a message with an id and a result or an error, no method.
	KindResponse
	// KindNotification is a message with a method and no id; never replied to.
	KindNotification
)

// Message is a decoded, tagged inbound frame. Only the fields relevant to
// Kind are populated.
type Message struct {
	Kind   Kind
	ID     RequestID       // KindRequest, KindResponse
	Method string          // KindRequest, KindNotification
	Params json.RawMessage // KindRequest, KindNotification
	Result json.RawMessage // KindResponse
	Error  *RPCError       // KindResponse
}
