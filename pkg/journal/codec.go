package journal

import (
	"encoding/json"
	"fmt"
	"time"

	"src.retk.dev/pkg/layout"
	"src.retk.dev/pkg/rt"
)

// Resize is recorded when the window changes size. It is not an rt.Event;
// replaying it changes the size passed to Update and Render.
type Resize struct{ Size layout.Size }

type envelope struct {
	At   int64           `json:"at"`
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func typeName(v any) (string, error) {
	switch v.(type) {
	case rt.TouchBegin:
		return "touch-begin", nil
	case rt.TouchMove:
		return "touch-move", nil
	case rt.TouchEnd:
		return "touch-end", nil
	case rt.KeyDown:
		return "key-down", nil
	case rt.KeyUp:
		return "key-up", nil
	case rt.ModsChanged:
		return "mods-changed", nil
	case rt.Invoked:
		return "invoked", nil
	case rt.AnimTick:
		return "anim-tick", nil
	case Resize:
		return "resize", nil
	}
	return "", fmt.Errorf("cannot record value of type %T", v)
}

var decoders = map[string]func(json.RawMessage) (any, error){
	"touch-begin":  decodeAs[rt.TouchBegin],
	"touch-move":   decodeAs[rt.TouchMove],
	"touch-end":    decodeAs[rt.TouchEnd],
	"key-down":     decodeAs[rt.KeyDown],
	"key-up":       decodeAs[rt.KeyUp],
	"mods-changed": decodeAs[rt.ModsChanged],
	"invoked":      decodeAs[rt.Invoked],
	"anim-tick":    decodeAs[rt.AnimTick],
	"resize":       decodeAs[Resize],
}

func decodeAs[T any](data json.RawMessage) (any, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func marshalEntry(e Entry) ([]byte, error) {
	name, err := typeName(e.Value)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(e.Value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{int64(e.At), name, data})
}

func unmarshalEntry(seq uint64, b []byte) (Entry, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return Entry{}, fmt.Errorf("entry %d: %w", seq, err)
	}
	decode, ok := decoders[env.Type]
	if !ok {
		return Entry{}, fmt.Errorf("entry %d: unknown type %q", seq, env.Type)
	}
	v, err := decode(env.Data)
	if err != nil {
		return Entry{}, fmt.Errorf("entry %d: %w", seq, err)
	}
	return Entry{Seq: seq, At: time.Duration(env.At), Value: v}, nil
}
