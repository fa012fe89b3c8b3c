// Package mcp implements the core of a Model Context Protocol runtime: a
// bidirectional JSON-RPC 2.0 peer that serializes outgoing requests,
// correlates them with responses, dispatches incoming messages to typed
// handlers, and manages the lifecycle of a pluggable byte-stream transport.
//
// The same Peer type is used on both sides of a connection — a client
// leaves most request handlers nil, a server leaves most client-direction
// handlers nil. See [Peer] for the public surface, [Handlers] and
// [NotificationHandlers] for the typed dispatch tables, and the gen
// subpackage for the build-time code generator that turns annotated Go
// functions into registered tool/prompt handlers.
//
// The notify subpackage adapts Peer.Notifications into filtered,
// predicate-based channels for callers that want a stream rather than a
// callback. The config subpackage parses peer tuning knobs (message size
// limits, handshake timeouts, log level) out of a plain string map.
package mcp
