package menu

import (
	"context"
	"errors"
	"net"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/go-logr/logr"
	"github.com/sourcegraph/jsonrpc2"

	"src.retk.dev/pkg/testutil"
)

type fakeDispatcher struct {
	cmds    []Command
	invoked []string
}

func (d *fakeDispatcher) Commands(context.Context) ([]Command, error) { return d.cmds, nil }

func (d *fakeDispatcher) Invoke(_ context.Context, name string) error {
	for _, cmd := range d.cmds {
		if cmd.Name == name {
			d.invoked = append(d.invoked, name)
			return nil
		}
	}
	return errors.New("no command " + name)
}

func (d *fakeDispatcher) WindowState(context.Context) (WindowState, error) {
	return WindowState{Title: "demo", Width: 80, Height: 24}, nil
}

func setup(t *testing.T, d Dispatcher) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	serverConn, clientConn := net.Pipe()
	server := jsonrpc2.NewConn(ctx, NewStream(serverConn), Handler(d))
	client := NewClient(ctx, clientConn)
	t.Cleanup(func() {
		client.Close()
		server.Close()
	})
	return client
}

func TestMenu(t *testing.T) {
	d := &fakeDispatcher{cmds: []Command{{"save", "Ctrl-s"}, {"quit", ""}}}
	client := setup(t, d)
	ctx := context.Background()

	cmds, err := client.Commands(ctx)
	assert.NoError(t, err)
	assert.Equal(t, d.cmds, cmds)

	assert.NoError(t, client.Invoke(ctx, "quit"))
	assert.Equal(t, []string{"quit"}, d.invoked)

	err = client.Invoke(ctx, "nope")
	assert.EqualError(t, err, "jsonrpc2: code 0 message: no command nope")

	ws, err := client.WindowState(ctx)
	assert.NoError(t, err)
	assert.Equal(t, WindowState{Title: "demo", Width: 80, Height: 24}, ws)
}

func TestMenu_BadRequests(t *testing.T) {
	client := setup(t, &fakeDispatcher{})
	ctx := context.Background()

	err := client.conn.Call(ctx, "menu/nope", nil, nil)
	var rpcErr *jsonrpc2.Error
	assert.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, int64(jsonrpc2.CodeMethodNotFound), rpcErr.Code)

	err = client.conn.Call(ctx, "menu/invoke", map[string]int{"name": 1}, nil)
	assert.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, int64(jsonrpc2.CodeInvalidParams), rpcErr.Code)
}

func TestServe(t *testing.T) {
	path := filepath.Join(testutil.TempDir(t), "menu.sock")
	l, err := Listen(path)
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	d := &fakeDispatcher{cmds: []Command{{"hello", ""}}}
	go func() { done <- Serve(ctx, l, d, logr.Discard()) }()

	client, err := Dial(ctx, path)
	assert.NoError(t, err)
	cmds, err := client.Commands(ctx)
	assert.NoError(t, err)
	assert.Equal(t, d.cmds, cmds)
	client.Close()

	cancel()
	assert.NoError(t, <-done)
}
