// loop.go runs the transport read loop (§4.4): reads lines until
// end-of-stream or error, decodes and dispatches each, and continues even
// if a handler misbehaves. Grounded on the teacher's conn.go ReadLoop.
package mcp

import (
	"errors"
	"io"
)

// readLoop reads lines from p.transport until ReadLine returns an error
// (io.EOF on clean close), dispatching each decoded frame to p.handle. A
// frame that cannot be parsed gets a -32700 Parse error reply if an id can
// still be salvaged from it, and is otherwise just logged and dropped
// (§4.5). A frame that parses but fits none of the message shapes
// (errMalformed, including one carrying both result and error) is logged
// and dropped without a reply (§4.1). It does not retry — retry is a
// transport responsibility (§4.4). On exit it records the terminal error
// (a clean io.EOF is not recorded, so Err reports nil) and fails every
// pending request (§4.3, §4.4).
func (p *Peer) readLoop() {
	defer close(p.done)
	defer close(p.notifyCh)

	for {
		line, err := p.transport.ReadLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				p.setReadErr(err)
			}
			break
		}
		if line == "" {
			continue // skip blank lines
		}

		msg, decodeErr := decode([]byte(line))
		if decodeErr != nil {
			p.logParseError(line, decodeErr)
			if decodeErr == errMalformed {
				continue
			}
			if id, ok := salvageID([]byte(line)); ok {
				p.replyError(id, &RPCError{Code: CodeParseError, Message: "Parse error"})
			}
			continue
		}
		p.handle(msg)
	}

	p.pending.closeAll(ErrTransportClosed)
}
