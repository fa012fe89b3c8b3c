// peer.go is the peer core (§4.5): the public send/receive API, request
// and notification dispatch, and replying to failed requests with the
// JSON-RPC error that errorToRPC (errors.go) maps them to. Generalizes the teacher's engine/acp/conn.go Conn type — same
// mutex+map pending-table idiom — but driven by the full MCP method
// registry instead of ACP's handful of methods, and symmetric: the same
// Peer type plays both client and server roles (§1). Unlike conn.go,
// inbound requests are dispatched on the read-loop goroutine itself, one
// at a time (§5: "per-peer serial processing of incoming frames"); a
// handler that wants concurrency spawns its own goroutine.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
)

// Peer is a bidirectional JSON-RPC 2.0 participant over a Transport. The
// same type is used in client and server roles; Role determines which
// request methods this Peer is permitted to receive (§4.2).
type Peer struct {
	role      Role
	transport Transport
	handlers  Handlers
	notify    NotificationHandlers
	logger    Logger

	ids     idGenerator
	pending *pendingTable

	progress *progressTable
	notifyCh chan *Message

	ctx  context.Context
	done chan struct{}

	readErr atomic.Value // stores error
}

// NewPeer constructs a Peer. Handlers and NotificationHandlers must be
// fully populated before Start is called — the handler registries are
// read-only once the read loop begins (§3 lifecycle).
func NewPeer(role Role, transport Transport, handlers Handlers, notify NotificationHandlers, opts ...Option) *Peer {
	p := &Peer{
		role:      role,
		transport: transport,
		handlers:  handlers,
		notify:    notify,
		logger:    NopLogger{},
		pending:   newPendingTable(),
		progress:  newProgressTable(),
		notifyCh:  make(chan *Message, 64),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start connects the transport and launches the background read loop.
// Must be called exactly once, before any SendRequest/SendNotification.
func (p *Peer) Start(ctx context.Context) error {
	if err := p.transport.Connect(ctx); err != nil {
		return fmt.Errorf("mcp: connect: %w", err)
	}
	p.ctx = ctx
	go p.readLoop()
	return nil
}

// Done returns a channel closed when the read loop exits (transport
// closed or fatal error).
func (p *Peer) Done() <-chan struct{} {
	return p.done
}

// Notifications returns the raw inbound notification stream, in addition
// to whatever typed NotificationHandlers does with each one. Consumers
// that want to filter by method (see the notify subpackage) read from
// here rather than populating every NotificationHandlers field. The
// channel is closed when the read loop exits. A slow reader drops
// notifications once the internal buffer fills, rather than block the
// dispatch goroutine (logged at warn).
func (p *Peer) Notifications() <-chan *Message {
	return p.notifyCh
}

// Err returns the terminal read-loop error, or nil if the loop hasn't
// exited or exited cleanly.
func (p *Peer) Err() error {
	if v := p.readErr.Load(); v != nil {
		return v.(error)
	}
	return nil
}

// Close closes the underlying transport. The read loop observes the
// resulting read error (or clean EOF) and fails every pending request.
func (p *Peer) Close() error {
	return p.transport.Close()
}

// SendRequest allocates a correlation id, registers its awaiter *before*
// writing the frame (§5 ordering invariant), writes the request, and
// blocks until the matching response arrives or ctx is done. On success,
// result is populated by unmarshaling the response's result field (result
// may be nil to discard it). If the response carries an "error" object,
// SendRequest returns an *RPCError.
func (p *Peer) SendRequest(ctx context.Context, method Method, params, result any) error {
	id := p.ids.next()
	ch := p.pending.register(id.String())

	req := &outboundRequest{JSONRPC: JSONRPCVersion, ID: &id, Method: string(method), Params: params}
	if err := p.sendFrame(req); err != nil {
		p.pending.forget(id.String())
		return fmt.Errorf("mcp: send %s: %w", method, err)
	}

	select {
	case resp := <-ch:
		return p.resolveResponse(resp, result)
	case <-ctx.Done():
		p.pending.forget(id.String())
		// A response may have arrived just before cancellation raced the
		// forget above; drain non-blockingly so a successful result isn't
		// discarded (grounded on the teacher's Call/ctx.Done race handling).
		select {
		case resp := <-ch:
			return p.resolveResponse(resp, result)
		default:
			return ctx.Err()
		}
	}
}

func (p *Peer) resolveResponse(resp pendingResponse, result any) error {
	if resp.err != nil {
		return resp.err
	}
	if resp.msg.Error != nil {
		return resp.msg.Error
	}
	if result != nil && len(resp.msg.Result) > 0 {
		if err := json.Unmarshal(resp.msg.Result, result); err != nil {
			return fmt.Errorf("mcp: unmarshal result: %w", err)
		}
	}
	return nil
}

// SendNotification writes a fire-and-forget frame. No ordering guarantee
// relative to concurrent SendRequest calls beyond transport byte ordering
// (§5).
func (p *Peer) SendNotification(method Method, params any) error {
	n := &outboundRequest{JSONRPC: JSONRPCVersion, Method: string(method), Params: params}
	return p.sendFrame(n)
}

func (p *Peer) sendFrame(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("mcp: marshal: %w", err)
	}
	return p.transport.WriteString(string(data))
}

func (p *Peer) setReadErr(err error) {
	p.readErr.Store(err)
}

func (p *Peer) logParseError(line string, err error) {
	p.logger.Warn("mcp: dropped malformed frame", "error", err, "line", line)
}

// handle routes one decoded inbound message to the appropriate path
// (§4.5): response -> complete an awaiter; request -> invoke a typed
// handler and always reply; notification -> invoke a typed handler,
// swallowing any panic/error (logged).
func (p *Peer) handle(msg *Message) {
	switch msg.Kind {
	case KindResponse:
		if !p.pending.complete(msg) {
			p.logger.Warn("mcp: response for unknown id dropped", "id", msg.ID.String())
		}
	case KindRequest:
		p.handleRequest(msg)
	case KindNotification:
		p.handleNotification(msg)
	}
}

// handleRequest invokes the handler for an inbound request on the calling
// (read-loop) goroutine, preserving arrival order across the whole peer
// (§5, §9 "worker pool bounded to 1 per peer"), and always sends exactly
// one reply. A handler that needs to run concurrently with later frames
// is responsible for spawning its own goroutine and replying from there.
// A panicking handler is recovered, logged, and answered with
// CodeInternalError, so the read loop keeps running.
func (p *Peer) handleRequest(msg *Message) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warn("mcp: request handler panicked", "method", msg.Method, "recovered", r)
			p.replyError(msg.ID, &RPCError{Code: CodeInternalError, Message: fmt.Sprintf("Internal error: %v", r)})
		}
	}()
	result, err := p.invokeRequest(Method(msg.Method), msg.Params)
	if err != nil {
		p.replyError(msg.ID, errorToRPC(err))
		return
	}
	p.replyResult(msg.ID, result)
}

func (p *Peer) replyResult(id RequestID, result any) {
	data, err := json.Marshal(result)
	if err != nil {
		p.replyError(id, &RPCError{Code: CodeInternalError, Message: "Internal error: " + err.Error()})
		return
	}
	resp := &outboundResponse{JSONRPC: JSONRPCVersion, ID: id, Result: data}
	_ = p.sendFrame(resp) // best-effort: the peer may already be closing
}

func (p *Peer) replyError(id RequestID, rpcErr *RPCError) {
	resp := &outboundResponse{JSONRPC: JSONRPCVersion, ID: id, Error: rpcErr}
	_ = p.sendFrame(resp)
}

// handleNotification invokes the registered notification handler, if any,
// recovering from and logging any panic so the read loop keeps running
// (§4.4: "continues even if the handler throws").
func (p *Peer) handleNotification(msg *Message) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warn("mcp: notification handler panicked", "method", msg.Method, "recovered", r)
		}
	}()

	select {
	case p.notifyCh <- msg:
	default:
		p.logger.Warn("mcp: notification stream full, dropped", "method", msg.Method)
	}

	switch Method(msg.Method) {
	case MethodNotifyInitialized:
		if p.notify.Initialized != nil {
			p.notify.Initialized(p.ctx, &InitializedParams{})
		}
	case MethodNotifyCancelled:
		var params CancelledParams
		if p.unmarshalNotif(msg, &params) && p.notify.Cancelled != nil {
			p.notify.Cancelled(p.ctx, &params)
		}
	case MethodNotifyProgress:
		var params ProgressParams
		if p.unmarshalNotif(msg, &params) {
			p.progress.dispatch(&params)
			if p.notify.Progress != nil {
				p.notify.Progress(p.ctx, &params)
			}
		}
	case MethodNotifyMessage:
		var params LoggingMessageParams
		if p.unmarshalNotif(msg, &params) && p.notify.Message != nil {
			p.notify.Message(p.ctx, &params)
		}
	case MethodNotifyPromptsListChanged:
		if p.notify.PromptsListChanged != nil {
			p.notify.PromptsListChanged(p.ctx)
		}
	case MethodNotifyResourcesListChanged:
		if p.notify.ResourcesListChanged != nil {
			p.notify.ResourcesListChanged(p.ctx)
		}
	case MethodNotifyResourcesUpdated:
		var params ResourceUpdatedParams
		if p.unmarshalNotif(msg, &params) && p.notify.ResourcesUpdated != nil {
			p.notify.ResourcesUpdated(p.ctx, &params)
		}
	case MethodNotifyRootsListChanged:
		if p.notify.RootsListChanged != nil {
			p.notify.RootsListChanged(p.ctx)
		}
	case MethodNotifyToolsListChanged:
		if p.notify.ToolsListChanged != nil {
			p.notify.ToolsListChanged(p.ctx)
		}
	default:
		// Unknown notification: logged and ignored, never replied to (JSON-RPC rule).
		p.logger.Warn("mcp: unknown notification ignored", "method", msg.Method)
	}
}

func (p *Peer) unmarshalNotif(msg *Message, v any) bool {
	if len(msg.Params) == 0 {
		return true
	}
	if err := json.Unmarshal(msg.Params, v); err != nil {
		p.logger.Warn("mcp: unmarshal notification params", "method", msg.Method, "error", err)
		return false
	}
	return true
}

type methodNotFoundError struct{ method string }

func (e *methodNotFoundError) Error() string { return "method not found: " + e.method }

// invokeRequest validates direction and dispatches to the typed Handlers
// field for method, unmarshaling raw into the method's params type. This
// switch is the Go-native stand-in for §9's "tagged union with one arm per
// method" design note: exhaustive over the closed Method enum, checked by
// go vet's exhaustive-style tooling rather than the compiler, which is the
// practical limit of Go's (non-sum-type) type system.
func (p *Peer) invokeRequest(method Method, raw json.RawMessage) (any, error) {
	if !acceptsAsReceiver(p.role, method) {
		if _, known := methodDirections[method]; !known {
			return nil, &methodNotFoundError{method: string(method)}
		}
		return nil, fmt.Errorf("%w: %s", ErrWrongDirection, method)
	}

	ctx := p.ctx

	switch method {
	case MethodInitialize:
		return dispatch(ctx, raw, p.handlers.Initialize)
	case MethodPing:
		return dispatch(ctx, raw, p.handlers.Ping)
	case MethodToolsList:
		return dispatch(ctx, raw, p.handlers.ToolsList)
	case MethodToolsCall:
		return dispatch(ctx, raw, p.handlers.ToolsCall)
	case MethodPromptsList:
		return dispatch(ctx, raw, p.handlers.PromptsList)
	case MethodPromptsGet:
		return dispatch(ctx, raw, p.handlers.PromptsGet)
	case MethodResourcesList:
		return dispatch(ctx, raw, p.handlers.ResourcesList)
	case MethodResourcesTemplatesList:
		return dispatch(ctx, raw, p.handlers.ResourcesTemplatesList)
	case MethodResourcesRead:
		return dispatch(ctx, raw, p.handlers.ResourcesRead)
	case MethodResourcesSubscribe:
		return dispatch(ctx, raw, p.handlers.ResourcesSubscribe)
	case MethodResourcesUnsubscribe:
		return dispatch(ctx, raw, p.handlers.ResourcesUnsubscribe)
	case MethodRootsList:
		return dispatch(ctx, raw, p.handlers.RootsList)
	case MethodSamplingCreateMessage:
		return dispatch(ctx, raw, p.handlers.SamplingCreateMessage)
	case MethodLoggingSetLevel:
		return dispatch(ctx, raw, p.handlers.LoggingSetLevel)
	case MethodCompletionComplete:
		return dispatch(ctx, raw, p.handlers.CompletionComplete)
	default:
		return nil, &methodNotFoundError{method: string(method)}
	}
}

// dispatch unmarshals raw into a fresh *P and invokes fn, or returns
// ErrNotImplemented if fn is nil (the default for every Handlers field).
func dispatch[P, R any](ctx context.Context, raw json.RawMessage, fn func(context.Context, *P) (R, error)) (any, error) {
	if fn == nil {
		var zero R
		return zero, ErrNotImplemented
	}
	var params P
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &params); err != nil {
			var zero R
			return zero, &IllegalArgument{Msg: err.Error()}
		}
	}
	return fn(ctx, &params)
}
