package mcp

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProgressTokenIsUnique(t *testing.T) {
	a := NewProgressToken()
	b := NewProgressToken()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestSendRequestWithProgressDeliversUpdates(t *testing.T) {
	serverIn, clientOut := io.Pipe()
	clientIn, serverOut := io.Pipe()

	token := NewProgressToken()
	var progressUpdates []float64

	client := NewPeer(RoleClient, NewLineTransport(clientIn, clientOut, 0), Handlers{}, NotificationHandlers{})
	var server *Peer
	server = NewPeer(RoleServer, NewLineTransport(serverIn, serverOut, 0), Handlers{
		Ping: func(ctx context.Context, params *PingParams) (*PingResult, error) {
			// Both notifications are written, in order, before the reply —
			// the client's single read-loop goroutine processes them (and
			// so calls onProgress) strictly before it processes the
			// matching response, so appending here and reading after
			// SendRequestWithProgress returns needs no extra
			// synchronization.
			_ = server.SendNotification(MethodNotifyProgress, &ProgressParams{ProgressToken: token, Progress: 0.5})
			_ = server.SendNotification(MethodNotifyProgress, &ProgressParams{ProgressToken: token, Progress: 1.0})
			return &PingResult{}, nil
		},
	}, NotificationHandlers{})

	ctx := context.Background()
	require.NoError(t, client.Start(ctx))
	require.NoError(t, server.Start(ctx))
	t.Cleanup(func() { _ = client.Close(); _ = server.Close() })

	reqCtx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	err := client.SendRequestWithProgress(reqCtx, MethodPing, token, &PingParams{}, &PingResult{}, func(p *ProgressParams) {
		progressUpdates = append(progressUpdates, p.Progress)
	})
	require.NoError(t, err)

	assert.Equal(t, []float64{0.5, 1.0}, progressUpdates)
}

func TestProgressTableForgetStopsDelivery(t *testing.T) {
	table := newProgressTable()
	called := false
	table.register("tok", func(p *ProgressParams) { called = true })
	table.forget("tok")

	table.dispatch(&ProgressParams{ProgressToken: "tok", Progress: 1})
	assert.False(t, called)
}
