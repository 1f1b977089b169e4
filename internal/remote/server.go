package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/kvdijken/Settings/internal/logging"
)

// Config holds the server configuration
type Config struct {
	Host      string
	Port      int    // 0 picks a free port
	Advertise bool   // announce the server over mDNS
	Instance  string // mDNS instance name, defaults to the hostname
}

// Server exposes a Controller over HTTP and WebSocket.
type Server struct {
	config     *Config
	ctrl       *Controller
	listener   net.Listener
	httpServer *http.Server
	mdns       *zeroconf.Server

	wg           sync.WaitGroup
	mu           sync.Mutex
	activeConns  map[string]*websocket.Conn
	shuttingDown bool
}

// New creates a new Server instance
func New(config *Config, ctrl *Controller) *Server {
	if config == nil {
		config = &Config{}
	}
	return &Server{
		config:      config,
		ctrl:        ctrl,
		activeConns: make(map[string]*websocket.Conn),
	}
}

// Handler returns the HTTP routes: /ws for events and /snapshot for the
// current state.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/snapshot", s.handleSnapshot)
	return mux
}

// Start listens, optionally advertises the server and blocks until ctx is
// done, a shutdown signal arrives or serving fails.
func (s *Server) Start(ctx context.Context) error {
	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	logging.Info("Server listening for connections",
		zap.String("addr", listener.Addr().String()),
	)

	if s.config.Advertise {
		port := listener.Addr().(*net.TCPAddr).Port
		s.mdns, err = Advertise(s.config.Instance, port)
		if err != nil {
			// Serving still works without mDNS
			logging.Warn("mDNS advertisement failed", zap.Error(err))
		}
	}

	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		logging.Info("Shutdown requested, stopping server...")
		return s.Shutdown(context.Background())
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	}
}

// Addr returns the listening address once Start has been called
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Shutdown stops advertising, closes every connection and releases the
// display. A pending edit is rolled back.
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")

	// No handler may join the wait group once this is set
	s.mu.Lock()
	s.shuttingDown = true
	s.mu.Unlock()

	if s.mdns != nil {
		s.mdns.Shutdown()
		s.mdns = nil
	}

	var shutdownErr error
	if s.httpServer != nil {
		sctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		shutdownErr = s.httpServer.Shutdown(sctx)
	}

	// Hijacked websocket connections are not closed by http.Server
	s.mu.Lock()
	for addr, conn := range s.activeConns {
		logging.Info("Closing active connection", zap.String("remote_addr", addr))
		_ = conn.Close()
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logging.Info("All connections closed gracefully")
	case <-time.After(10 * time.Second):
		logging.Warn("Shutdown timeout after 10 seconds, forcing close")
	}

	s.ctrl.Release()
	logging.Sync()

	if shutdownErr != nil && !errors.Is(shutdownErr, context.DeadlineExceeded) {
		return fmt.Errorf("failed to shut down http server: %w", shutdownErr)
	}
	return nil
}

// GetActiveConnections returns the number of active connections
func (s *Server) GetActiveConnections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.activeConns)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.ctrl.Snapshot()); err != nil {
		logging.Error("Failed to write snapshot", zap.Error(err))
	}
}

// begin registers a handler with the wait group. It reports false once
// shutdown has started.
func (s *Server) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shuttingDown {
		return false
	}
	s.wg.Add(1)
	return true
}

// track records conn so Shutdown can close it. It reports false when
// shutdown started after the upgrade, in which case the caller closes conn.
func (s *Server) track(addr string, conn *websocket.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shuttingDown {
		return false
	}
	s.activeConns[addr] = conn
	return true
}

func (s *Server) untrack(addr string) {
	s.mu.Lock()
	delete(s.activeConns, addr)
	s.mu.Unlock()
}
