package menu

import (
	"context"
	"net"

	"github.com/sourcegraph/jsonrpc2"
)

// Client calls the menu methods of a server.
type Client struct {
	conn *jsonrpc2.Conn
}

// NewClient returns a client talking over conn.
func NewClient(ctx context.Context, conn net.Conn) *Client {
	return &Client{jsonrpc2.NewConn(ctx, NewStream(conn), noHandler{})}
}

// Dial connects to the server listening on the UNIX socket at path.
func Dial(ctx context.Context, path string) (*Client, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", path)
	if err != nil {
		return nil, err
	}
	return NewClient(ctx, conn), nil
}

func (c *Client) Commands(ctx context.Context) ([]Command, error) {
	var cmds []Command
	err := c.conn.Call(ctx, "menu/commands", nil, &cmds)
	return cmds, err
}

func (c *Client) Invoke(ctx context.Context, name string) error {
	return c.conn.Call(ctx, "menu/invoke", InvokeParams{name}, nil)
}

func (c *Client) WindowState(ctx context.Context) (WindowState, error) {
	var ws WindowState
	err := c.conn.Call(ctx, "window/state", nil, &ws)
	return ws, err
}

func (c *Client) Close() error { return c.conn.Close() }

// Servers don't send requests to menu clients.
type noHandler struct{}

func (noHandler) Handle(context.Context, *jsonrpc2.Conn, *jsonrpc2.Request) {}
