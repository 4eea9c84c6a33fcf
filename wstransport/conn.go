// Package wstransport binds the codec layer to a live WebSocket
// connection. It translates between coder/websocket messages and
// wscodec frames; dialing, accepting and closing the connection stay
// with the caller.
package wstransport

import (
	"context"
	"fmt"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wscodec/wscodec"
	"github.com/wscodec/wscodec/internal/logx"
)

// Conn wraps an established WebSocket connection. Each wrapped connection
// gets a random ID used to correlate its log lines.
type Conn struct {
	ws  *websocket.Conn
	id  string
	log zerolog.Logger
}

// Option adjusts a wrapped connection.
type Option func(*Conn)

// WithLogger routes the connection's trace logging to l instead of the
// package default.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Conn) { c.log = l }
}

// Wrap adapts ws to the frame layer. The caller keeps ownership of the
// connection and is responsible for closing it.
func Wrap(ws *websocket.Conn, opts ...Option) *Conn {
	c := &Conn{ws: ws, id: uuid.NewString(), log: logx.Log}
	for _, o := range opts {
		o(c)
	}
	c.log = c.log.With().Str("conn", c.id).Logger()
	return c
}

// ID returns the connection's log correlation ID.
func (c *Conn) ID() string { return c.id }

// ReadFrame blocks until the next data message arrives and returns it as a
// frame. Errors from the underlying connection (including context
// cancellation and peer close) are returned as-is.
func (c *Conn) ReadFrame(ctx context.Context) (wscodec.Frame, error) {
	typ, data, err := c.ws.Read(ctx)
	if err != nil {
		return wscodec.Frame{}, err
	}
	switch typ {
	case websocket.MessageText:
		c.log.Trace().Int("bytes", len(data)).Msg("read text frame")
		return wscodec.TextFrame(string(data)), nil
	case websocket.MessageBinary:
		c.log.Trace().Int("bytes", len(data)).Msg("read binary frame")
		return wscodec.BinaryFrame(data), nil
	default:
		return wscodec.Frame{}, fmt.Errorf("unexpected message type %v", typ)
	}
}

// WriteFrame sends f on the connection.
func (c *Conn) WriteFrame(ctx context.Context, f wscodec.Frame) error {
	switch f.Kind {
	case wscodec.KindText:
		c.log.Trace().Int("bytes", len(f.Text)).Msg("write text frame")
		return c.ws.Write(ctx, websocket.MessageText, []byte(f.Text))
	case wscodec.KindBinary:
		c.log.Trace().Int("bytes", len(f.Data)).Msg("write binary frame")
		return c.ws.Write(ctx, websocket.MessageBinary, f.Data)
	default:
		return fmt.Errorf("cannot write frame of kind %s", f.Kind)
	}
}

// Send encodes v with codec and writes the resulting frame.
func Send[T any](ctx context.Context, c *Conn, codec wscodec.FrameCodec[T], v T) error {
	return c.WriteFrame(ctx, codec.Encode(v))
}

// Receive reads the next frame and decodes it with codec. ok is false when
// the frame kind does not match the codec; a non-nil error is either a
// transport failure or malformed content.
func Receive[T any](ctx context.Context, c *Conn, codec wscodec.FrameCodec[T]) (T, bool, error) {
	f, err := c.ReadFrame(ctx)
	if err != nil {
		var zero T
		return zero, false, err
	}
	return codec.Decode(f)
}
