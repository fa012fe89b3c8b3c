package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingTableRegisterComplete(t *testing.T) {
	table := newPendingTable()
	ch := table.register("1")

	delivered := table.complete(&Message{Kind: KindResponse, ID: NewStringID("1"), Result: []byte(`{}`)})
	require.True(t, delivered)

	resp := <-ch
	assert.NoError(t, resp.err)
	assert.Equal(t, "1", resp.msg.ID.String())
}

func TestPendingTableCompleteUnknownID(t *testing.T) {
	table := newPendingTable()
	delivered := table.complete(&Message{Kind: KindResponse, ID: NewStringID("missing")})
	assert.False(t, delivered)
}

func TestPendingTableForget(t *testing.T) {
	table := newPendingTable()
	table.register("1")
	table.forget("1")

	delivered := table.complete(&Message{Kind: KindResponse, ID: NewStringID("1")})
	assert.False(t, delivered, "a forgotten id must not be deliverable")
}

func TestPendingTableCloseAll(t *testing.T) {
	table := newPendingTable()
	ch1 := table.register("1")
	ch2 := table.register("2")

	table.closeAll(ErrTransportClosed)

	resp1 := <-ch1
	resp2 := <-ch2
	assert.ErrorIs(t, resp1.err, ErrTransportClosed)
	assert.ErrorIs(t, resp2.err, ErrTransportClosed)

	// The table is empty after closeAll; a late response finds nothing.
	assert.False(t, table.complete(&Message{Kind: KindResponse, ID: NewStringID("1")}))
}
