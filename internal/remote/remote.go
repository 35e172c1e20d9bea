// Package remote exposes the parameter record over a websocket so a browser panel or a
// script can tune the sun while the window runs.
//
// Clients send {"key": "amplitude", "value": 12} to set a value, {"key": "size", "reset": true}
// to restore one default, or {"reset": true} to restore all of them. Every change is
// broadcast to all clients as a "params" status.
package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"solar-system/internal/logger"
	"solar-system/internal/params"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = "localhost:8090"

// Path is the websocket endpoint.
const Path = "/ws"

// Controls is what the server needs from the parameter store.
type Controls interface {
	params.Source
	Set(key string, v float64) (float64, error)
	Reset(key string) error
	Version() uint64
}

// Message is one client request.
type Message struct {
	Key   string   `json:"key,omitempty"`
	Value *float64 `json:"value,omitempty"`
	Reset bool     `json:"reset,omitempty"`
}

// Status is sent to clients on connect and after every change.
type Status struct {
	Type    string             `json:"type"`
	Version uint64             `json:"version"`
	Params  map[string]float64 `json:"params,omitempty"`
	Error   string             `json:"error,omitempty"`
}

// Server tracks connected clients. Each connection has its own write lock.
type Server struct {
	store    Controls
	log      *logger.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*websocket.Conn]*sync.Mutex
	sent    uint64

	// PollInterval is how often Run checks for changes made outside the websocket
	// (console, config reload) and broadcasts them.
	PollInterval time.Duration
}

// New returns a server for store. log may be nil.
func New(store Controls, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Memory(logger.LevelWarn)
	}
	return &Server{
		store:   store,
		log:     log,
		clients: make(map[*websocket.Conn]*sync.Mutex),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		PollInterval: 250 * time.Millisecond,
	}
}

// Handler returns the HTTP handler serving Path.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(Path, s.ServeWS)
	return mux
}

// Clients returns the number of connected clients.
func (s *Server) Clients() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// ServeWS upgrades the request and serves the client until it disconnects.
func (s *Server) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warnf("remote: upgrade: %v", err)
		return
	}
	defer conn.Close()

	lock := &sync.Mutex{}
	s.mu.Lock()
	s.clients[conn] = lock
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
	}()
	s.log.Infof("remote: client %s connected", r.RemoteAddr)

	s.send(conn, lock, s.status())
	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Debugf("remote: read: %v", err)
			}
			return
		}
		if err := s.Apply(msg); err != nil {
			s.send(conn, lock, Status{Type: "error", Version: s.store.Version(), Error: err.Error()})
			continue
		}
		s.Broadcast()
	}
}

// Apply performs one request against the store.
func (s *Server) Apply(msg Message) error {
	switch {
	case msg.Reset:
		return s.store.Reset(msg.Key)
	case msg.Key == "":
		return errors.New("missing key")
	case msg.Value == nil:
		return fmt.Errorf("%s: missing value", msg.Key)
	}
	applied, err := s.store.Set(msg.Key, *msg.Value)
	if err != nil {
		return err
	}
	s.log.Infof("remote: %s = %g", msg.Key, applied)
	return nil
}

// Broadcast sends the current parameters to every client and drops the ones that fail.
func (s *Server) Broadcast() {
	st := s.status()
	s.mu.Lock()
	s.sent = st.Version
	s.mu.Unlock()

	var failed []*websocket.Conn
	s.mu.RLock()
	for conn, lock := range s.clients {
		if err := s.send(conn, lock, st); err != nil {
			failed = append(failed, conn)
		}
	}
	s.mu.RUnlock()

	if len(failed) == 0 {
		return
	}
	s.mu.Lock()
	for _, conn := range failed {
		conn.Close()
		delete(s.clients, conn)
	}
	s.mu.Unlock()
}

// Run listens on addr until ctx is cancelled, broadcasting changes made elsewhere.
func (s *Server) Run(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	srv := &http.Server{Addr: addr, Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go s.poll(ctx)
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()

	s.log.Infof("remote: listening on ws://%s%s", addr, Path)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("remote: %w", err)
	}
	return nil
}

func (s *Server) poll(ctx context.Context) {
	interval := s.PollInterval
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	s.mu.Lock()
	s.sent = s.store.Version()
	s.mu.Unlock()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.stale() {
				s.Broadcast()
			}
		}
	}
}

// stale reports whether the store changed since the last broadcast.
func (s *Server) stale() bool {
	v := s.store.Version()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return v != s.sent
}

// status reads the version before the values so a change racing with it is seen as stale
// and sent again rather than skipped.
func (s *Server) status() Status {
	version := s.store.Version()
	p := s.store.Snapshot()
	values := make(map[string]float64, len(params.Keys()))
	for _, key := range params.Keys() {
		v, _ := p.Get(key)
		values[key] = v
	}
	return Status{Type: "params", Version: version, Params: values}
}

func (s *Server) send(conn *websocket.Conn, lock *sync.Mutex, st Status) error {
	lock.Lock()
	defer lock.Unlock()
	_ = conn.SetWriteDeadline(time.Now().Add(time.Second))
	return conn.WriteJSON(st)
}
