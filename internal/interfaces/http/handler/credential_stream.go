package handler

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SSEClient represents a connected SSE client
type SSEClient struct {
	ID   string
	Chan chan SSEMessage
	Done chan struct{}
}

// SSEMessage represents a message to be sent to SSE clients
type SSEMessage struct {
	Event string `json:"event"`
	Data  string `json:"data"`
	ID    string `json:"id,omitempty"`
}

// CredentialStreamHandler pushes refresh demands to the host over SSE.
// When the analytical service rejects the stored token, the relay raises a
// refresh request; the host listens on this stream and answers by pushing a
// fresh token through the credential endpoint.
type CredentialStreamHandler struct {
	BaseHandler
	relay      *auth.Relay
	logger     *zap.Logger
	clients    sync.Map // map[string]*SSEClient
	ctx        context.Context
	cancel     context.CancelFunc
	heartbeat  time.Duration
	started    bool
	startMu    sync.Mutex
	maxClients int
	seq        atomic.Uint64
}

// CredentialStreamOption is a functional option for configuring the handler
type CredentialStreamOption func(*CredentialStreamHandler)

// WithSSELogger sets the logger for the handler
func WithSSELogger(logger *zap.Logger) CredentialStreamOption {
	return func(h *CredentialStreamHandler) {
		h.logger = logger
	}
}

// WithSSEHeartbeat sets the heartbeat interval
func WithSSEHeartbeat(interval time.Duration) CredentialStreamOption {
	return func(h *CredentialStreamHandler) {
		h.heartbeat = interval
	}
}

// WithSSEMaxClients sets the maximum number of concurrent SSE clients
func WithSSEMaxClients(max int) CredentialStreamOption {
	return func(h *CredentialStreamHandler) {
		h.maxClients = max
	}
}

// NewCredentialStreamHandler creates a new SSE handler for refresh demands
func NewCredentialStreamHandler(relay *auth.Relay, opts ...CredentialStreamOption) *CredentialStreamHandler {
	ctx, cancel := context.WithCancel(context.Background())
	h := &CredentialStreamHandler{
		relay:     relay,
		logger:    zap.NewNop(),
		ctx:       ctx,
		cancel:    cancel,
		heartbeat: 30 * time.Second,
		// A handful of host tabs at most; anything beyond this is a leak.
		maxClients: 16,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// RegisterRoutes registers the credential event stream route
func (h *CredentialStreamHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/credential/events", h.Stream)
}

// Start begins forwarding relay refresh requests to connected clients
func (h *CredentialStreamHandler) Start() error {
	h.startMu.Lock()
	defer h.startMu.Unlock()

	if h.started {
		return fmt.Errorf("SSE handler already started")
	}

	go h.sendHeartbeats()
	go h.forwardRefreshRequests()

	h.started = true
	h.logger.Info("Credential SSE handler started")
	return nil
}

// Stop stops the SSE handler
func (h *CredentialStreamHandler) Stop() {
	h.cancel()

	h.clients.Range(func(key, value any) bool {
		if client, ok := value.(*SSEClient); ok {
			close(client.Done)
		}
		return true
	})

	h.logger.Info("Credential SSE handler stopped")
}

// forwardRefreshRequests turns relay signals into SSE events
func (h *CredentialStreamHandler) forwardRefreshRequests() {
	requests := h.relay.RefreshRequests()
	for {
		select {
		case <-h.ctx.Done():
			return
		case <-requests:
			seq := h.seq.Add(1)
			h.broadcast(SSEMessage{
				Event: "refresh_requested",
				Data:  fmt.Sprintf(`{"timestamp":%d}`, time.Now().Unix()),
				ID:    fmt.Sprintf("%d", seq),
			})
		}
	}
}

// broadcast sends a message to all connected clients
func (h *CredentialStreamHandler) broadcast(msg SSEMessage) {
	h.clients.Range(func(key, value any) bool {
		client, ok := value.(*SSEClient)
		if !ok {
			return true
		}

		select {
		case client.Chan <- msg:
			h.logger.Debug("Sent SSE message to client",
				zap.String("client_id", client.ID),
				zap.String("event", msg.Event))
		default:
			// Channel full, client might be slow
			h.logger.Warn("Client channel full, dropping message",
				zap.String("client_id", client.ID))
		}
		return true
	})
}

// sendHeartbeats periodically sends heartbeat messages to keep connections alive
func (h *CredentialStreamHandler) sendHeartbeats() {
	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-h.ctx.Done():
			return
		case <-ticker.C:
			h.broadcast(SSEMessage{
				Event: "heartbeat",
				Data:  fmt.Sprintf(`{"timestamp":%d}`, time.Now().Unix()),
			})
		}
	}
}

// Stream godoc
// @ID           streamCredentialEvents
// @Summary      Subscribe to credential refresh demands via SSE
// @Description  Establishes a Server-Sent Events connection. A refresh_requested event means the analytical service rejected the stored token and the host should push a fresh one.
// @Tags         credentials
// @Produce      text/event-stream
// @Success      200 {string} string "SSE stream"
// @Failure      503 {object} ErrorResponse
// @Router       /credential/events [get]
func (h *CredentialStreamHandler) Stream(c *gin.Context) {
	if h.maxClients > 0 && h.GetClientCount() >= h.maxClients {
		c.JSON(503, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MAX_CONNECTIONS_REACHED",
				"message": "Maximum number of SSE connections reached",
			},
		})
		return
	}

	// Set SSE headers
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	// Buffer size allows messages to queue without blocking broadcast
	const sseMessageBufferSize = 100
	client := &SSEClient{
		ID:   uuid.New().String(),
		Chan: make(chan SSEMessage, sseMessageBufferSize),
		Done: make(chan struct{}),
	}

	h.clients.Store(client.ID, client)
	defer func() {
		// Close channel first to prevent sends to closed channel
		close(client.Chan)
		h.clients.Delete(client.ID)
	}()

	h.logger.Info("SSE client connected", zap.String("client_id", client.ID))

	// Send initial connection event
	h.sendEvent(c.Writer, SSEMessage{
		Event: "connected",
		Data:  fmt.Sprintf(`{"client_id":"%s","timestamp":%d}`, client.ID, time.Now().Unix()),
	})
	c.Writer.Flush()

	reqCtx := c.Request.Context()

	for {
		select {
		case <-reqCtx.Done():
			h.logger.Info("SSE client disconnected (request context done)",
				zap.String("client_id", client.ID))
			return
		case <-client.Done:
			h.logger.Info("SSE client disconnected (done signal)",
				zap.String("client_id", client.ID))
			return
		case <-h.ctx.Done():
			h.logger.Info("SSE handler stopped, disconnecting client",
				zap.String("client_id", client.ID))
			return
		case msg, ok := <-client.Chan:
			if !ok {
				return
			}
			h.sendEvent(c.Writer, msg)
			c.Writer.Flush()
		}
	}
}

// sendEvent writes an SSE event to the response writer
func (h *CredentialStreamHandler) sendEvent(w io.Writer, msg SSEMessage) {
	if msg.Event != "" {
		fmt.Fprintf(w, "event: %s\n", msg.Event)
	}
	if msg.ID != "" {
		fmt.Fprintf(w, "id: %s\n", msg.ID)
	}
	fmt.Fprintf(w, "data: %s\n\n", msg.Data)
}

// GetClientCount returns the number of connected SSE clients
func (h *CredentialStreamHandler) GetClientCount() int {
	count := 0
	h.clients.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}
