// Package menu serves the commands of a view tree over JSON-RPC, so that a
// native menu bar or a launcher can list and invoke them.
//
// Methods:
//
//	menu/commands   -> []Command
//	menu/invoke     {"name": string} -> null
//	window/state    -> WindowState
package menu

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"os"

	"github.com/go-logr/logr"
	"github.com/sourcegraph/jsonrpc2"
)

var (
	errMethodNotFound = &jsonrpc2.Error{
		Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
	errInvalidParams = &jsonrpc2.Error{
		Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}
)

// Command describes a command of the view tree.
type Command struct {
	Name string `json:"name"`
	// Hotkey in the syntax of ui.ParseKey, or empty.
	Key string `json:"key,omitempty"`
}

// WindowState describes the window properties set by the view tree.
type WindowState struct {
	Title      string `json:"title"`
	Fullscreen bool   `json:"fullscreen"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

// InvokeParams are the parameters of menu/invoke.
type InvokeParams struct {
	Name string `json:"name"`
}

// Dispatcher answers menu requests. Its methods are called from the
// goroutines serving connections; implementations must hand the work over to
// whatever goroutine owns the view tree.
type Dispatcher interface {
	Commands(ctx context.Context) ([]Command, error)
	Invoke(ctx context.Context, name string) error
	WindowState(ctx context.Context) (WindowState, error)
}

// Handler returns a jsonrpc2.Handler that serves d.
func Handler(d Dispatcher) jsonrpc2.Handler {
	return routingHandler(map[string]method{
		"menu/commands": func(ctx context.Context, _ json.RawMessage) (any, error) {
			return d.Commands(ctx)
		},
		"menu/invoke": func(ctx context.Context, raw json.RawMessage) (any, error) {
			var params InvokeParams
			if json.Unmarshal(raw, &params) != nil || params.Name == "" {
				return nil, errInvalidParams
			}
			return nil, d.Invoke(ctx, params.Name)
		},
		"window/state": func(ctx context.Context, _ json.RawMessage) (any, error) {
			return d.WindowState(ctx)
		},
	})
}

type method func(context.Context, json.RawMessage) (any, error)

func routingHandler(methods map[string]method) jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		fn, ok := methods[req.Method]
		if !ok {
			return nil, errMethodNotFound
		}
		var params json.RawMessage
		if req.Params != nil {
			params = *req.Params
		}
		return fn(ctx, params)
	})
}

// NewStream wraps a connection in the framing used by the menu protocol.
func NewStream(conn net.Conn) jsonrpc2.ObjectStream {
	return jsonrpc2.NewBufferedStream(conn, jsonrpc2.VSCodeObjectCodec{})
}

// Listen listens on a UNIX socket at path, removing a stale socket file
// first.
func Listen(path string) (net.Listener, error) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return net.Listen("unix", path)
}

// Serve accepts connections on l and serves d on each of them until ctx is
// done. It closes l before returning.
func Serve(ctx context.Context, l net.Listener, d Dispatcher, logger logr.Logger) error {
	go func() {
		<-ctx.Done()
		l.Close()
	}()
	h := Handler(d)
	for {
		conn, err := l.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		logger.V(1).Info("menu client connected", "remote", conn.RemoteAddr().String())
		c := jsonrpc2.NewConn(ctx, NewStream(conn), h)
		go func() {
			select {
			case <-c.DisconnectNotify():
			case <-ctx.Done():
				c.Close()
			}
			logger.V(1).Info("menu client disconnected")
		}()
	}
}
