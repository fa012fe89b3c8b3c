// progress.go implements progress-token correlation (SPEC_FULL.md
// supplement 1): notifications/progress carries an opaque progressToken
// that must be threaded back to the request that set it in _meta. The
// concurrent-drain-while-blocking-call shape is the same problem the
// teacher's RunTurn/drainOutput solves for ACP session updates racing a
// blocking Send — here a progress callback is invoked on the peer's
// notification-dispatch path while SendRequestWithProgress blocks awaiting
// the matching response.
package mcp

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// progressTable maps an in-flight request's progress token to the
// callback registered for it. Guarded by a mutex, mirroring pendingTable.
type progressTable struct {
	mu        sync.Mutex
	listeners map[string]func(*ProgressParams)
}

func newProgressTable() *progressTable {
	return &progressTable{listeners: make(map[string]func(*ProgressParams))}
}

func (t *progressTable) register(token string, fn func(*ProgressParams)) {
	t.mu.Lock()
	t.listeners[token] = fn
	t.mu.Unlock()
}

func (t *progressTable) forget(token string) {
	t.mu.Lock()
	delete(t.listeners, token)
	t.mu.Unlock()
}

// dispatch runs the callback for params' token while holding the lock, so
// forget does not return while a callback for that token is still running.
func (t *progressTable) dispatch(params *ProgressParams) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if fn, ok := t.listeners[params.ProgressToken]; ok {
		fn(params)
	}
}

// NewProgressToken generates an opaque progress token, grounded on
// google/uuid (the pack's standard id-generation library, 47 files in the
// retrieval pack use it).
func NewProgressToken() string {
	return uuid.NewString()
}

// SendRequestWithProgress is like SendRequest, but invokes onProgress for
// every notifications/progress carrying token, concurrently with the
// blocked call. params is sent as given: this method does not write token
// into it (RequestMeta is the _meta field that carries a progress token on
// the wire). onProgress is never called after SendRequestWithProgress
// returns.
func (p *Peer) SendRequestWithProgress(ctx context.Context, method Method, token string, params, result any, onProgress func(*ProgressParams)) error {
	if onProgress != nil {
		p.progress.register(token, onProgress)
		defer p.progress.forget(token)
	}
	return p.SendRequest(ctx, method, params, result)
}
