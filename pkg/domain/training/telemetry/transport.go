package telemetry

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
)

// Conn is the subset of a websocket connection the client uses.
type Conn interface {
	// ReadMessage blocks for the next inbound frame.
	//
	// When the peer closed the channel, the error unwraps to
	// *websocket.CloseError carrying the close code.
	ReadMessage() ([]byte, error)

	// WriteJSON sends v as one JSON text frame.
	WriteJSON(v interface{}) error

	// Close sends a close frame with the given code and releases the
	// underlying connection.
	Close(code int, reason string) error
}

// Dialer opens telemetry channels. Extracted so tests can run the client
// against an in-memory transport.
type Dialer interface {
	Dial(ctx context.Context, serverURL string) (Conn, error)
}

type wsConn struct {
	base *websocket.Conn
}

var _ Conn = &wsConn{}

func (c *wsConn) ReadMessage() ([]byte, error) {
	_, data, err := c.base.ReadMessage()
	return data, err
}

func (c *wsConn) WriteJSON(v interface{}) error {
	return c.base.WriteJSON(v)
}

func (c *wsConn) Close(code int, reason string) error {
	// best effort; the peer may already be gone.
	err := c.base.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason),
		time.Now().Add(time.Second),
	)
	if cerr := c.base.Close(); err == nil {
		err = cerr
	}
	return err
}

type wsDialer struct {
	origin string
}

var _ Dialer = &wsDialer{}

// NewDialer returns the gorilla/websocket backed Dialer.
//
// origin, when non-empty, is sent as the Origin header (some training
// backends check it).
func NewDialer(origin string) Dialer {
	return &wsDialer{origin: origin}
}

func (d *wsDialer) Dial(ctx context.Context, serverURL string) (Conn, error) {
	var header map[string][]string
	if d.origin != "" {
		header = map[string][]string{"Origin": {d.origin}}
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, serverURL, header)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return nil, err
	}
	return &wsConn{base: conn}, nil
}
