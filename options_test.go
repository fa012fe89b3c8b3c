package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithLoggerSetsLogger(t *testing.T) {
	p := &Peer{logger: NopLogger{}}
	custom := NewSlogLogger(nil, 0)
	WithLogger(custom)(p)
	assert.Same(t, custom, p.logger)
}

func TestWithLoggerIgnoresNil(t *testing.T) {
	p := &Peer{logger: NopLogger{}}
	WithLogger(nil)(p)
	assert.Equal(t, NopLogger{}, p.logger)
}
