// Package netstream streams a verb pipeline's evaluation to a
// connected client over WebSocket, as newline-delimited JSON, so a
// supervising process can watch a long pipeline run without polling.
package netstream

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"arraycore/internal/reporting"
	"arraycore/internal/repl"
)

// Server upgrades incoming HTTP connections to WebSocket and tracks
// each one in a mutex-guarded client map.
type Server struct {
	upgrader websocket.Upgrader
	mu       sync.RWMutex
	clients  map[string]*client
}

type client struct {
	id   string
	conn *websocket.Conn
	mu   sync.Mutex
}

// frame is one line of the newline-delimited JSON stream.
type frame struct {
	Type    string `json:"type"` // "accepted", "result", "error"
	Message string `json:"message,omitempty"`
}

// NewServer returns a Server ready to be registered as an http.Handler.
func NewServer() *Server {
	return &Server{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[string]*client),
	}
}

// ServeHTTP upgrades the connection, reads one pipeline document per
// message, and streams back the result (or error) as a frame.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("netstream: upgrade failed: %v", err)
		return
	}

	c := &client{id: uuid.NewString(), conn: conn}
	s.mu.Lock()
	s.clients[c.id] = c
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.clients, c.id)
		s.mu.Unlock()
		conn.Close()
	}()

	c.send(frame{Type: "accepted", Message: c.id})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		c.runPipeline(data)
	}
}

func (c *client) runPipeline(data []byte) {
	start := time.Now()
	summary := reporting.NewRunSummary()

	result, ops, err := repl.RunJSON(data)
	for i := 0; i < ops; i++ {
		summary.RecordOp()
	}
	summary.Finish(result, err, time.Since(start))

	if err != nil {
		c.send(frame{Type: "error", Message: reporting.FormatError(err)})
		return
	}
	c.send(frame{Type: "result", Message: summary.String()})
}

func (c *client) send(f frame) {
	data, err := json.Marshal(f)
	if err != nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.WriteMessage(websocket.TextMessage, append(data, '\n'))
}

// ClientIDs reports every currently connected client's id.
func (s *Server) ClientIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.clients))
	for id := range s.clients {
		ids = append(ids, id)
	}
	return ids
}
