// options.go provides functional construction options for Peer, in the
// teacher's engine/acp/options.go style (EngineOption).
package mcp

// Option configures a Peer at construction time.
type Option func(*Peer)

// WithLogger sets the Logger used for the "logged at warn" cases in §4.1,
// §4.3, §4.4, §4.5. The default is NopLogger, which discards everything.
func WithLogger(l Logger) Option {
	return func(p *Peer) {
		if l != nil {
			p.logger = l
		}
	}
}
