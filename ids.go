package mcp

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync/atomic"
)

// RequestID is a JSON-RPC 2.0 correlation id, which the spec allows to be
// a string, a number, or absent (null, for notifications). Ids we allocate
// ourselves are always the string form of a monotonic counter (§3); ids
// we merely echo back (replying to a request the remote peer sent us) are
// preserved verbatim in whatever form they arrived, so the round trip is
// exact even when the remote peer uses numeric ids.
type RequestID struct {
	str *string
	num *int64
}

// NewStringID wraps a string as a RequestID.
func NewStringID(s string) RequestID {
	return RequestID{str: &s}
}

// IsZero reports whether the id carries no value (null).
func (id RequestID) IsZero() bool {
	return id.str == nil && id.num == nil
}

// String renders the id for logging and map keys.
func (id RequestID) String() string {
	switch {
	case id.str != nil:
		return *id.str
	case id.num != nil:
		return strconv.FormatInt(*id.num, 10)
	default:
		return ""
	}
}

// MarshalJSON implements json.Marshaler.
func (id RequestID) MarshalJSON() ([]byte, error) {
	switch {
	case id.str != nil:
		return json.Marshal(*id.str)
	case id.num != nil:
		return json.Marshal(*id.num)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON implements json.Unmarshaler, accepting string, number, or
// null per the JSON-RPC 2.0 spec.
func (id *RequestID) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		id.str = &v
	case float64:
		n := int64(v)
		id.num = &n
	case nil:
		id.str, id.num = nil, nil
	default:
		return fmt.Errorf("mcp: invalid request id type %T", v)
	}
	return nil
}

// idGenerator allocates process-monotonic correlation ids starting at 1,
// rendered as decimal strings (§3 invariant: never reused, unique per
// peer instance).
type idGenerator struct {
	counter atomic.Int64
}

func (g *idGenerator) next() RequestID {
	n := g.counter.Add(1)
	return NewStringID(strconv.FormatInt(n, 10))
}
