package notify

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gorilla/websocket"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("notify")

// ErrMalformedMessage marks a push-channel payload that is not parseable
// JSON. These are logged and dropped; the channel is best-effort, never
// authoritative.
var ErrMalformedMessage = errors.New("malformed push message")

// MessageTypeOrdersUpdated is the only inbound message type that triggers a
// refresh.
const MessageTypeOrdersUpdated = "orders_updated"

const (
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
)

type pushMessage struct {
	Type string `json:"type"`
}

// Listener maintains the single long-lived websocket connection to the
// upstream push channel. An "orders_updated" message invokes onOrdersUpdated
// exactly once; any other type is ignored.
//
// The connection is supervised: on transport error or close the listener
// reconnects with exponential backoff and invokes the callback once after
// reconnecting, so changes pushed while disconnected are not lost. Teardown
// is deterministic through the context passed to Run.
type Listener struct {
	url             string
	onOrdersUpdated func()
	dialer          *websocket.Dialer
}

func NewListener(url string, onOrdersUpdated func()) *Listener {
	return &Listener{
		url:             url,
		onOrdersUpdated: onOrdersUpdated,
		dialer:          websocket.DefaultDialer,
	}
}

// Run blocks until ctx is cancelled, keeping the push connection alive.
func (l *Listener) Run(ctx context.Context) {
	backoff := initialBackoff
	first := true

	for {
		if ctx.Err() != nil {
			return
		}

		conn, _, err := l.dialer.DialContext(ctx, l.url, nil)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Warningf("push channel dial failed, retrying in %s: %v", backoff, err)
			if !sleep(ctx, backoff) {
				return
			}
			backoff = nextBackoff(backoff)
			continue
		}

		log.Infof("push channel connected to %s", l.url)
		backoff = initialBackoff

		// replay one refresh after a reconnect so nothing pushed while
		// disconnected goes unnoticed
		if !first {
			l.onOrdersUpdated()
		}
		first = false

		l.readLoop(ctx, conn)
		conn.Close()

		if ctx.Err() != nil {
			return
		}
		log.Warningf("push channel disconnected, reconnecting in %s", backoff)
		if !sleep(ctx, backoff) {
			return
		}
		backoff = nextBackoff(backoff)
	}
}

func (l *Listener) readLoop(ctx context.Context, conn *websocket.Conn) {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if err := l.handle(data); err != nil {
			log.Warningf("dropping push message: %v", err)
		}
	}
}

func (l *Listener) handle(data []byte) error {
	var msg pushMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return ErrMalformedMessage
	}
	if msg.Type != MessageTypeOrdersUpdated {
		log.Debugf("ignoring push message type %q", msg.Type)
		return nil
	}
	l.onOrdersUpdated()
	return nil
}

func nextBackoff(d time.Duration) time.Duration {
	d *= 2
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
