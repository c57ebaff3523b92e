// Package telemetry maintains one live connection to a training backend.
//
// The client owns the connection lifecycle (see ConnectionState), folds
// inbound progress snapshots into derived state (latest snapshot,
// per-epoch history, live metric series) and sends control commands back
// to the trainer with optimistic local reflection.
//
// Transport callbacks are converted into a tagged-union event stream
// consumed by a single dispatch function, so the state machine is plain
// logic testable without a socket. No failure propagates out of the
// client; everything surfaces as (State, Err).
//
// Reconnecting is deliberately manual: there is no retry, backoff or
// connect timeout here. A trainer that went away may have been a
// completed or superseded job, and silently re-attaching to it is worse
// than leaving the decision to the operator.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// events flowing from the transport into dispatch.

type event interface{ isEvent() }

type evOpened struct{ conn Conn }

type evDialFailed struct{ err error }

type evMessage struct{ raw []byte }

type evTransportErrored struct{ err error }

type evClosed struct {
	code   int
	reason string
}

func (evOpened) isEvent()           {}
func (evDialFailed) isEvent()       {}
func (evMessage) isEvent()          {}
func (evTransportErrored) isEvent() {}
func (evClosed) isEvent()           {}

// Client is the telemetry connection manager for one training session.
//
// The zero value is not usable; create one with New. All methods are
// safe for concurrent use; state mutation is serialized internally.
type Client struct {
	dialer Dialer
	logger *log.Logger
	now    func() time.Time

	mu sync.Mutex

	// gen counts connection attempts. Events from a pump of an older
	// generation are discarded, so a stale callback arriving after
	// Disconnect cannot resurrect state.
	gen int

	state   ConnectionState
	errMsg  string
	conn    Conn
	latest  *ProgressSnapshot
	history []EpochRecord
	metrics map[string][]float64
}

type config struct {
	dialer Dialer
	logger *log.Logger
	now    func() time.Time
}

type Option func(*config) *config

// WithDialer replaces the websocket transport, for tests.
func WithDialer(d Dialer) Option {
	return func(c *config) *config {
		c.dialer = d
		return c
	}
}

func WithLogger(l *log.Logger) Option {
	return func(c *config) *config {
		c.logger = l
		return c
	}
}

// WithClock fixes the timestamp source of outbound messages, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *config) *config {
		c.now = now
		return c
	}
}

func New(options ...Option) *Client {
	c := &config{
		dialer: NewDialer(""),
		logger: log.Default(),
		now:    time.Now,
	}
	for _, opt := range options {
		c = opt(c)
	}

	return &Client{
		dialer: c.dialer,
		logger: c.logger,
		now:    c.now,
		state:  Disconnected,
	}
}

// Connect starts opening the channel to serverURL and returns without
// waiting for the open to finish; observe progress via State.
//
// Calling while Connecting or Connected is a no-op: only one live
// channel exists at a time. Failures surface as state Errored, never as
// a panic or returned error.
func (c *Client) Connect(ctx context.Context, serverURL string) {
	c.mu.Lock()

	if c.state == Connecting || c.state == Connected {
		c.mu.Unlock()
		return
	}

	if serverURL == "" {
		c.state = Errored
		c.errMsg = "server url is empty"
		c.mu.Unlock()
		return
	}

	c.gen += 1
	gen := c.gen
	c.state = Connecting
	c.errMsg = ""
	c.mu.Unlock()

	go func() {
		conn, err := c.dialer.Dial(ctx, serverURL)
		if err != nil {
			c.dispatch(gen, evDialFailed{err: err})
			return
		}
		if !c.dispatch(gen, evOpened{conn: conn}) {
			// disconnected while dialing; the handle is ours to release.
			conn.Close(websocket.CloseNormalClosure, "superseded")
			return
		}
		c.readPump(gen, conn)
	}()
}

// readPump turns the blocking read loop into events until the channel dies.
func (c *Client) readPump(gen int, conn Conn) {
	for {
		data, err := conn.ReadMessage()
		if err != nil {
			closeErr := &websocket.CloseError{}
			if errors.As(err, &closeErr) {
				c.dispatch(gen, evClosed{code: closeErr.Code, reason: closeErr.Text})
			} else {
				c.dispatch(gen, evTransportErrored{err: err})
			}
			return
		}
		c.dispatch(gen, evMessage{raw: data})
	}
}

// dispatch applies one transport event to the state machine.
//
// It reports whether the event was from the live generation; stale
// events are dropped without effect.
func (c *Client) dispatch(gen int, ev event) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return false
	}

	switch ev := ev.(type) {
	case evOpened:
		c.state = Connected
		c.errMsg = ""
		c.conn = ev.conn

		// ask for the current snapshot: training may have been underway
		// long before we attached.
		msg := CommandMessage{Type: messageTypeGetStatus, Timestamp: c.timestamp()}
		if err := ev.conn.WriteJSON(msg); err != nil {
			c.logger.Printf("telemetry: status request failed: %s", err)
		}

	case evDialFailed:
		c.state = Errored
		c.errMsg = fmt.Sprintf("connection failed: %s", ev.err)
		c.conn = nil

	case evMessage:
		c.onSnapshot(ev.raw)

	case evTransportErrored:
		c.state = Errored
		c.errMsg = fmt.Sprintf("connection lost: %s", ev.err)
		c.conn = nil
		c.gen += 1 // the pump is done; make sure nothing trailing lands

	case evClosed:
		if ev.code == websocket.CloseNormalClosure {
			c.state = Disconnected
			c.errMsg = ""
		} else {
			c.state = Errored
			c.errMsg = fmt.Sprintf("connection closed: code=%d reason=%s", ev.code, ev.reason)
		}
		c.conn = nil
		c.gen += 1
	}

	return true
}

// onSnapshot folds one inbound message into derived state.
// Caller holds c.mu.
func (c *Client) onSnapshot(raw []byte) {
	snap, err := parseSnapshot(raw)
	if err != nil {
		// one bad message is not a connection failure; prior state stays.
		c.logger.Printf("telemetry: dropped message: %s", err)
		return
	}

	// latest is last-write-wins, whatever the epoch says.
	c.latest = &snap

	// history gets one record per completed epoch, monotonically: the
	// trainer resends within-epoch progress, and only a strictly greater
	// epoch number means the previous epoch finished.
	if len(c.history) == 0 || c.history[len(c.history)-1].Epoch < snap.Epoch {
		c.history = append(c.history, epochRecordOf(snap))
	}

	if snap.Metrics != nil {
		c.metrics = snap.Metrics
	}
}

// Disconnect notifies the trainer best-effort, closes the channel with a
// normal-closure code and settles into Disconnected.
//
// It is always safe to call: when already disconnected it does nothing,
// and when called during Connecting the pending open is abandoned.
func (c *Client) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		// failure to say goodbye must not stop the disconnect.
		msg := CommandMessage{Type: messageTypeClientDisconnect, Timestamp: c.timestamp()}
		if err := c.conn.WriteJSON(msg); err != nil {
			c.logger.Printf("telemetry: disconnect notify failed: %s", err)
		}
		if err := c.conn.Close(websocket.CloseNormalClosure, "client disconnect"); err != nil {
			c.logger.Printf("telemetry: close failed: %s", err)
		}
		c.conn = nil
	}

	c.gen += 1 // anything still in flight is stale now
	c.state = Disconnected
	c.errMsg = ""
}

// SendCommand serializes a pause/resume/stop for the trainer and applies
// it optimistically to the latest snapshot, so the UI reacts before the
// trainer acknowledges. The next real snapshot is authoritative.
//
// Whether the command is legal right now (say, Resume while not paused)
// is the caller's business; the client trusts it.
func (c *Client) SendCommand(cmd Command) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Connected || c.conn == nil {
		c.errMsg = fmt.Sprintf("not connected: cannot send %s", cmd)
		return
	}

	msg := CommandMessage{
		Type:      messageTypeCommand,
		Command:   cmd,
		Timestamp: c.timestamp(),
	}
	if err := c.conn.WriteJSON(msg); err != nil {
		// non-fatal: the connection state is the read pump's call.
		c.errMsg = fmt.Sprintf("command %s failed: %s", cmd, err)
		return
	}

	if c.latest != nil {
		applied := applyOptimistic(*c.latest, cmd)
		c.latest = &applied
	}
}

func (c *Client) timestamp() int64 {
	return c.now().UnixMilli()
}

// State is the current ConnectionState.
func (c *Client) State() ConnectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err is the current human-readable error, or "" when none.
func (c *Client) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// Latest is the most recent snapshot, or nil before any arrived.
func (c *Client) Latest() *ProgressSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.latest == nil {
		return nil
	}
	snap := *c.latest
	return &snap
}

// History is the per-completed-epoch record list, oldest first.
func (c *Client) History() []EpochRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	history := make([]EpochRecord, len(c.history))
	copy(history, c.history)
	return history
}

// Metrics is the live metric series as last sent by the trainer.
func (c *Client) Metrics() map[string][]float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	metrics := make(map[string][]float64, len(c.metrics))
	for k, v := range c.metrics {
		series := make([]float64, len(v))
		copy(series, v)
		metrics[k] = series
	}
	return metrics
}

// ControlsEnabled tells whether pause/resume/stop are meaningful now:
// only while the trainer reports it is actively training.
func (c *Client) ControlsEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.latest != nil && c.latest.Status == StatusTraining
}
