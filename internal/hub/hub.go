// Package hub fans finished upload summaries out to websocket subscribers.
package hub

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"pkrms_db/internal/ingest"
)

// Conn is the part of a websocket connection the hub writes to.
type Conn interface {
	WriteJSON(v any) error
}

// Client is one registered subscriber. AdminCode filters summaries to
// batches that touched that administrative area; empty means all.
type Client struct {
	conn      Conn
	adminCode string
	send      chan ingest.Summary
}

func (c *Client) wants(s ingest.Summary) bool {
	if c.adminCode == "" {
		return true
	}
	for _, code := range s.AdminCodes {
		if code == c.adminCode {
			return true
		}
	}
	return false
}

// UploadHub manages subscribers and broadcasts summaries to them.
type UploadHub struct {
	clients   map[*Client]struct{}
	broadcast chan ingest.Summary
	mu        sync.Mutex
	log       logrus.FieldLogger
	closeOnce sync.Once
}

// NewUploadHub creates a hub and starts its broadcast goroutine.
func NewUploadHub(log logrus.FieldLogger) *UploadHub {
	h := &UploadHub{
		clients:   make(map[*Client]struct{}),
		broadcast: make(chan ingest.Summary, 100),
		log:       log,
	}
	go h.run()
	return h
}

func (h *UploadHub) run() {
	for msg := range h.broadcast {
		h.mu.Lock()
		for c := range h.clients {
			if !c.wants(msg) {
				continue
			}
			select {
			case c.send <- msg:
			default:
				h.log.WithField("conn_ptr", fmt.Sprintf("%p", c.conn)).Warn("Subscriber too slow, dropping upload summary.")
			}
		}
		h.mu.Unlock()
	}

	h.mu.Lock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// Register subscribes conn and starts its writer goroutine.
func (h *UploadHub) Register(conn Conn, adminCode string) *Client {
	c := &Client{conn: conn, adminCode: adminCode, send: make(chan ingest.Summary, 16)}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	go h.write(c)
	h.log.WithFields(logrus.Fields{
		"admin_code": adminCode,
		"conn_ptr":   fmt.Sprintf("%p", conn),
	}).Info("Client registered with UploadHub.")
	return c
}

// Unregister removes a client. It is safe to call more than once.
func (h *UploadHub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	h.log.WithFields(logrus.Fields{
		"admin_code": c.adminCode,
		"conn_ptr":   fmt.Sprintf("%p", c.conn),
	}).Info("Client unregistered from UploadHub.")
}

func (h *UploadHub) write(c *Client) {
	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			h.log.WithError(err).WithField("conn_ptr", fmt.Sprintf("%p", c.conn)).Warn("Failed to send upload summary, dropping client.")
			h.Unregister(c)
			for range c.send {
			}
			return
		}
	}
}

// Publish queues a summary for broadcast. It never blocks the caller.
func (h *UploadHub) Publish(s ingest.Summary) {
	select {
	case h.broadcast <- s:
	default:
		h.log.WithField("batch_id", s.BatchID).Warn("Upload broadcast channel full, dropping summary.")
	}
}

// Clients returns the number of registered subscribers.
func (h *UploadHub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close stops the broadcast goroutine and releases every client. Publish
// must not be called after Close.
func (h *UploadHub) Close() {
	h.closeOnce.Do(func() { close(h.broadcast) })
}
