package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kvdijken/Settings/internal/menu"
)

// Client sends events to a menu server over its websocket.
type Client struct {
	conn *websocket.Conn
}

// Dial connects to the server at addr (host:port).
func Dial(ctx context.Context, addr string) (*Client, error) {
	u := url.URL{Scheme: "ws", Host: addr, Path: "/ws"}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", u.String(), err)
	}
	return &Client{conn: conn}, nil
}

// Send delivers one event and waits for the resulting snapshot.
func (c *Client) Send(ev menu.Event) (Snapshot, error) {
	return c.SendText(ev.String())
}

// SendText delivers a raw event name. Unknown names come back as a
// snapshot with Error set.
func (c *Client) SendText(text string) (Snapshot, error) {
	var snap Snapshot

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteMessage(websocket.TextMessage, []byte(text)); err != nil {
		return snap, fmt.Errorf("failed to send event: %w", err)
	}

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	if err := c.conn.ReadJSON(&snap); err != nil {
		return snap, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return snap, nil
}

// Close says goodbye to the server and closes the connection.
func (c *Client) Close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
	return c.conn.Close()
}

// FetchSnapshot reads the current state from the server's /snapshot route.
func FetchSnapshot(ctx context.Context, addr string) (Snapshot, error) {
	var snap Snapshot

	u := url.URL{Scheme: "http", Host: addr, Path: "/snapshot"}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return snap, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return snap, fmt.Errorf("failed to fetch snapshot: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return snap, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return snap, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snap, nil
}
