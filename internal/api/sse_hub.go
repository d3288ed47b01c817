package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"gorandtest/domain/core"
	"gorandtest/ports"

	"github.com/gin-gonic/gin"
)

// allRuns is the subscription key for clients that follow every run
const allRuns core.RunID = "*"

// SSEClient represents a connected SSE client
type SSEClient struct {
	RunID   core.RunID
	Channel chan ports.RunEvent
}

// SSEHub fans run progress events out to Server-Sent Events clients
type SSEHub struct {
	clients    map[core.RunID]map[chan ports.RunEvent]bool
	clientsMu  sync.RWMutex
	register   chan SSEClient
	unregister chan SSEClient
	broadcast  chan ports.RunEvent
	done       chan struct{}
	closeOnce  sync.Once
	keepAlive  time.Duration
}

// NewSSEHub creates a new SSE hub and starts its dispatch loop
func NewSSEHub() *SSEHub {
	hub := &SSEHub{
		clients:    make(map[core.RunID]map[chan ports.RunEvent]bool),
		register:   make(chan SSEClient, 10),
		unregister: make(chan SSEClient, 10),
		broadcast:  make(chan ports.RunEvent, 100),
		done:       make(chan struct{}),
		keepAlive:  30 * time.Second,
	}

	go hub.run()
	return hub
}

// Close stops the dispatch loop. Calling it again is a no-op.
func (h *SSEHub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

func (h *SSEHub) run() {
	for {
		select {
		case client := <-h.register:
			h.clientsMu.Lock()
			if h.clients[client.RunID] == nil {
				h.clients[client.RunID] = make(map[chan ports.RunEvent]bool)
			}
			h.clients[client.RunID][client.Channel] = true
			log.Printf("[SSE] Client registered for run %s (total clients: %d)",
				client.RunID, len(h.clients[client.RunID]))
			h.clientsMu.Unlock()

		case client := <-h.unregister:
			h.clientsMu.Lock()
			if clients, exists := h.clients[client.RunID]; exists {
				delete(clients, client.Channel)
				if len(clients) == 0 {
					delete(h.clients, client.RunID)
				}
			}
			h.clientsMu.Unlock()

		case event := <-h.broadcast:
			h.clientsMu.RLock()
			h.deliver(h.clients[event.RunID], event)
			h.deliver(h.clients[allRuns], event)
			h.clientsMu.RUnlock()

		case <-h.done:
			return
		}
	}
}

func (h *SSEHub) deliver(clients map[chan ports.RunEvent]bool, event ports.RunEvent) {
	for clientChan := range clients {
		select {
		case clientChan <- event:
		default:
			log.Printf("[SSE] Client channel full for run %s, skipping event", event.RunID)
		}
	}
}

// Publish queues an event for every client following its run
func (h *SSEHub) Publish(event ports.RunEvent) {
	select {
	case h.broadcast <- event:
	default:
		log.Printf("[SSE] Broadcast channel full, dropping event: %s", event.EventType)
	}
}

// HandleSSE streams run events. The optional run_id query parameter limits
// the stream to one run.
func (h *SSEHub) HandleSSE(c *gin.Context) {
	runID := allRuns
	if q := c.Query("run_id"); q != "" {
		parsed, err := core.ParseRunID(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_ERROR"})
			return
		}
		runID = parsed
	}

	// streams outlive the server write timeout
	_ = http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{})

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	clientChan := make(chan ports.RunEvent, 10)
	client := SSEClient{RunID: runID, Channel: clientChan}

	select {
	case h.register <- client:
	default:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "SSE hub registration failed", "code": "INTERNAL_ERROR"})
		return
	}
	defer func() {
		select {
		case h.unregister <- client:
		default:
		}
	}()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case event := <-clientChan:
			eventJSON, err := json.Marshal(event)
			if err != nil {
				log.Printf("[SSE] Failed to marshal event: %v", err)
				return true
			}
			c.SSEvent(event.EventType, string(eventJSON))
			return true

		case <-time.After(h.keepAlive):
			c.SSEvent("ping", `{"status":"alive","timestamp":"`+time.Now().Format(time.RFC3339)+`"}`)
			return true

		case <-ctx.Done():
			return false
		}
	})
}

// ClientCount returns the number of clients following runID
func (h *SSEHub) ClientCount(runID core.RunID) int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients[runID])
}
