// pending.go implements the pending-request table (§4.3): a concurrent map
// from correlation id to an awaiter, with the registration-before-write
// ordering the spec requires (§5: "register -> write").
package mcp

import "sync"

// pendingResponse is what a pending awaiter is completed with: either a
// successful/error response frame, or a terminal error (transport close).
type pendingResponse struct {
	msg *Message
	err error
}

// pendingTable is a concurrent map from correlation id (string form) to a
// one-shot channel completed by the response dispatcher. Grounded on the
// teacher's conn.go map[int64]chan *rpcResponse, generalized to string ids
// and split into its own type per the spec's separate-component framing.
type pendingTable struct {
	mu      sync.Mutex
	entries map[string]chan pendingResponse
}

func newPendingTable() *pendingTable {
	return &pendingTable{entries: make(map[string]chan pendingResponse)}
}

// register creates and returns the awaiter channel for id. Must be called
// before the corresponding request is written to the transport, so that a
// response racing the writer finds its slot (§5 ordering invariant).
func (t *pendingTable) register(id string) chan pendingResponse {
	ch := make(chan pendingResponse, 1)
	t.mu.Lock()
	t.entries[id] = ch
	t.mu.Unlock()
	return ch
}

// forget removes an awaiter without completing it (used when writing the
// request failed, so nothing will ever complete this slot).
func (t *pendingTable) forget(id string) {
	t.mu.Lock()
	delete(t.entries, id)
	t.mu.Unlock()
}

// complete delivers a response to the awaiter registered for msg.ID, if
// any. An unknown id (duplicate or unsolicited response) is reported back
// to the caller so it can log at warn and drop the frame, per §4.3.
func (t *pendingTable) complete(msg *Message) (delivered bool) {
	id := msg.ID.String()
	t.mu.Lock()
	ch, ok := t.entries[id]
	if ok {
		delete(t.entries, id)
	}
	t.mu.Unlock()
	if !ok {
		return false
	}
	ch <- pendingResponse{msg: msg}
	return true
}

// closeAll completes every outstanding awaiter exceptionally with err and
// empties the table, per §4.3's close/failure contract.
func (t *pendingTable) closeAll(err error) {
	t.mu.Lock()
	entries := t.entries
	t.entries = make(map[string]chan pendingResponse)
	t.mu.Unlock()

	for _, ch := range entries {
		ch <- pendingResponse{err: err}
	}
}
