package mcp

import (
	"errors"
	"fmt"
)

// Standard JSON-RPC 2.0 / MCP error codes (§7).
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Sentinel errors for peer-level failures (mirrors the teacher's
// package-level sentinel style in errors.go).
var (
	// ErrTransportClosed is returned by SendRequest when the transport
	// closes (or fails) before a response arrives, and delivered to every
	// pending awaiter at that time.
	ErrTransportClosed = errors.New("mcp: transport closed")

	// ErrNotImplemented is the default handler result for a method with no
	// registered handler. The dispatcher maps it to CodeMethodNotFound.
	ErrNotImplemented = errors.New("mcp: method not implemented")

	// ErrWrongDirection indicates a message arrived for a method this peer
	// role is not permitted to receive.
	ErrWrongDirection = errors.New("mcp: method not valid in this direction")
)

// MissingRequiredArgument is raised by a generated handler when a required
// parameter's key is absent from the incoming arguments object.
type MissingRequiredArgument struct {
	Name string
}

func (e *MissingRequiredArgument) Error() string {
	return fmt.Sprintf("missing required argument: %s", e.Name)
}

// UnknownArgument is raised by a generated handler for the first incoming
// key that is not in the function's known parameter set.
type UnknownArgument struct {
	Name string
}

func (e *UnknownArgument) Error() string {
	return fmt.Sprintf("unknown argument: %s", e.Name)
}

// IllegalArgument wraps any other argument-shape validation failure (e.g.
// JSON Schema violation, type mismatch).
type IllegalArgument struct {
	Msg string
}

func (e *IllegalArgument) Error() string {
	return "invalid params: " + e.Msg
}

// RPCError is a JSON-RPC 2.0 error object, both the wire shape and the
// exported type returned by SendRequest when the remote peer's response
// carries an error.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("mcp: rpc error %d: %s", e.Code, e.Message)
}

// errorToRPC maps an error returned by a request handler to a JSON-RPC
// error object, per the §4.5/§7 table. Order matters: more specific types
// are checked before the generic fallback.
func errorToRPC(err error) *RPCError {
	var missing *MissingRequiredArgument
	var unknown *UnknownArgument
	var illegal *IllegalArgument
	var notFound *methodNotFoundError

	switch {
	case errors.Is(err, ErrNotImplemented):
		return &RPCError{Code: CodeMethodNotFound, Message: "Method not found"}
	case errors.Is(err, ErrWrongDirection):
		return &RPCError{Code: CodeMethodNotFound, Message: err.Error()}
	case errors.As(err, &notFound):
		return &RPCError{Code: CodeMethodNotFound, Message: notFound.Error()}
	case errors.As(err, &missing):
		return &RPCError{Code: CodeInvalidParams, Message: missing.Error()}
	case errors.As(err, &unknown):
		return &RPCError{Code: CodeInvalidParams, Message: unknown.Error()}
	case errors.As(err, &illegal):
		return &RPCError{Code: CodeInvalidParams, Message: illegal.Error()}
	default:
		return &RPCError{Code: CodeInternalError, Message: "Internal error: " + err.Error()}
	}
}
