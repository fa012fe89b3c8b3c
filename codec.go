package mcp

import (
	"encoding/json"
	"fmt"
)

// errMalformed indicates a frame that parsed as valid JSON but did not
// fit any of the three tagged-union shapes (§4.1 rule 4): dropped with a
// warning by the caller, never replied to.
var errMalformed = fmt.Errorf("mcp: malformed frame")

// decode parses one JSON-RPC text frame and classifies it per the §4.1
// dispatch rules, applied in order:
//
//  1. result or error present -> Response (mutually exclusive; both
//     present is a protocol error, handled by dropping the frame since a
//     response implies we are the requester and have no id to reply to).
//  2. method and id present -> Request.
//  3. method present, id absent -> Notification.
//  4. otherwise -> malformed.
func decode(line []byte) (*Message, error) {
	var f inboundFrame
	if err := json.Unmarshal(line, &f); err != nil {
		return nil, fmt.Errorf("mcp: parse error: %w", err)
	}

	hasResult := len(f.Result) > 0
	hasError := f.Error != nil

	if hasResult || hasError {
		if hasResult && hasError {
			// Protocol error: result and error are mutually exclusive.
			// The source silently drops such frames (§9 open question) —
			// callers relying on that leniency may break under stricter
			// decoders.
			return nil, errMalformed
		}
		if f.ID == nil {
			return nil, errMalformed
		}
		return &Message{Kind: KindResponse, ID: *f.ID, Result: f.Result, Error: f.Error}, nil
	}

	if f.Method != "" && f.ID != nil {
		return &Message{Kind: KindRequest, ID: *f.ID, Method: f.Method, Params: f.Params}, nil
	}

	if f.Method != "" && f.ID == nil {
		return &Message{Kind: KindNotification, Method: f.Method, Params: f.Params}, nil
	}

	return nil, errMalformed
}

// salvageID attempts to recover a correlation id from a frame that failed
// to decode cleanly, per §4.5: "if an id could be extracted, reply -32700
// Parse error; otherwise drop." It tolerates everything decode does not —
// in particular it succeeds even when line fails inboundFrame's stricter
// shape checks, as long as the bytes are valid JSON with an "id" member.
func salvageID(line []byte) (RequestID, bool) {
	var partial struct {
		ID *RequestID `json:"id"`
	}
	if err := json.Unmarshal(line, &partial); err != nil || partial.ID == nil {
		return RequestID{}, false
	}
	return *partial.ID, true
}

// encode renders a decoded Message back to one JSON-RPC text frame, the
// inverse of decode, used by the round-trip property in §8
// ("decode(encode(m)) == m for every message type in §3") and by callers
// that already hold a Message and want to re-serialize it (e.g. a proxy).
func encode(m *Message) ([]byte, error) {
	switch m.Kind {
	case KindRequest:
		return json.Marshal(inboundFrame{JSONRPC: JSONRPCVersion, ID: &m.ID, Method: m.Method, Params: m.Params})
	case KindNotification:
		return json.Marshal(inboundFrame{JSONRPC: JSONRPCVersion, Method: m.Method, Params: m.Params})
	case KindResponse:
		return json.Marshal(inboundFrame{JSONRPC: JSONRPCVersion, ID: &m.ID, Result: m.Result, Error: m.Error})
	default:
		return nil, fmt.Errorf("mcp: encode: unknown message kind %d", m.Kind)
	}
}
