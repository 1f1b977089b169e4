package remote

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/kvdijken/Settings/internal/logging"
	"github.com/kvdijken/Settings/internal/menu"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Clients are local tools and scripts, not browsers on other origins
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleWebSocket upgrades the request and serves events until the peer
// goes away. Each text frame carries one event name; every frame gets a
// Snapshot in reply.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if !s.begin() {
		http.Error(w, "server shutting down", http.StatusServiceUnavailable)
		return
	}
	defer s.wg.Done()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	remoteAddr := r.RemoteAddr
	if !s.track(remoteAddr, conn) {
		_ = conn.Close()
		return
	}
	defer func() {
		_ = conn.Close()
		s.untrack(remoteAddr)
		logging.Info("WebSocket closed", zap.String("remote_addr", remoteAddr))
	}()

	logging.Info("WebSocket connected", zap.String("remote_addr", remoteAddr))
	s.serveConn(conn, remoteAddr)
}

func (s *Server) serveConn(conn *websocket.Conn, remoteAddr string) {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go keepAlive(conn, done)

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.Info("Connection closed or error reading frame",
					zap.String("remote_addr", remoteAddr),
					zap.Error(err),
				)
			}
			return
		}

		var snap Snapshot
		if messageType != websocket.TextMessage {
			snap = s.ctrl.Snapshot()
			snap.Error = "events must be sent as text frames"
		} else {
			text := strings.TrimSpace(string(data))
			ev, err := menu.ParseEvent(text)
			if err != nil {
				logging.Warn("Unknown remote event",
					zap.String("remote_addr", remoteAddr),
					zap.String("content", text),
				)
				snap = s.ctrl.Snapshot()
				snap.Error = err.Error()
			} else {
				snap = s.ctrl.Apply(ev)
			}
		}

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(snap); err != nil {
			logging.Error("Failed to send snapshot",
				zap.String("remote_addr", remoteAddr),
				zap.Error(err),
			)
			return
		}
	}
}

// keepAlive pings the peer until done is closed. WriteControl may run
// concurrently with the reply writer.
func keepAlive(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
