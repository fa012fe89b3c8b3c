package mcp

// ProtocolVersion is the single MCP protocol version this runtime speaks.
// Mismatched versions do not fail the handshake automatically — the
// application inspects InitializeResult.ProtocolVersion and decides.
const ProtocolVersion = "2024-11-05"

// JSONRPCVersion is the fixed "jsonrpc" field value on every wire frame.
const JSONRPCVersion = "2.0"
