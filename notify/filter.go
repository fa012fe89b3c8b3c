// Package notify provides composable channel middleware for a Peer's raw
// notification stream (Peer.Notifications), in the same style as the
// teacher's filter package: consumers wrap the stream to select the
// granularity they need instead of populating every NotificationHandlers
// field by hand.
package notify

import (
	"context"

	"github.com/dmora/mcpgo"
)

// ByMethod returns a channel that only passes notifications whose method
// is one of methods. Spawns a goroutine that exits when ctx is cancelled
// or ch is closed; the returned channel is closed when the goroutine
// exits.
func ByMethod(ctx context.Context, ch <-chan *mcp.Message, methods ...mcp.Method) <-chan *mcp.Message {
	allowed := make(map[mcp.Method]struct{}, len(methods))
	for _, m := range methods {
		allowed[m] = struct{}{}
	}
	return pipe(ctx, ch, func(msg *mcp.Message) bool {
		_, ok := allowed[mcp.Method(msg.Method)]
		return ok
	})
}

// ListChanges returns a channel that passes only the four
// "*/list_changed" notifications (prompts, resources, roots, tools),
// collapsing the four typed NotificationHandlers fields a caller would
// otherwise wire up individually.
func ListChanges(ctx context.Context, ch <-chan *mcp.Message) <-chan *mcp.Message {
	return ByMethod(ctx, ch,
		mcp.MethodNotifyPromptsListChanged,
		mcp.MethodNotifyResourcesListChanged,
		mcp.MethodNotifyRootsListChanged,
		mcp.MethodNotifyToolsListChanged,
	)
}

// pipe spawns a goroutine that reads from ch, passes messages matching
// the predicate to the returned channel, and closes it when ch closes or
// ctx is cancelled. Callers must either drain the returned channel or
// cancel ctx to avoid goroutine leaks.
func pipe(ctx context.Context, ch <-chan *mcp.Message, accept func(*mcp.Message) bool) <-chan *mcp.Message {
	out := make(chan *mcp.Message)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				if accept(msg) && !trySend(ctx, out, msg) {
					return
				}
			}
		}
	}()
	return out
}

// trySend sends msg on out, returning true on success, or false if ctx is
// cancelled before the send completes.
func trySend(ctx context.Context, out chan<- *mcp.Message, msg *mcp.Message) bool {
	select {
	case out <- msg:
		return true
	case <-ctx.Done():
		return false
	}
}
