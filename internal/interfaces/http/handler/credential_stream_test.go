package handler

import (
	"testing"
	"time"

	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewCredentialStreamHandler(t *testing.T) {
	relay := auth.NewRelay()
	handler := NewCredentialStreamHandler(relay)

	assert.NotNil(t, handler)
	assert.Equal(t, 30*time.Second, handler.heartbeat)
}

func TestNewCredentialStreamHandler_WithOptions(t *testing.T) {
	relay := auth.NewRelay()
	logger := zap.NewNop()

	handler := NewCredentialStreamHandler(
		relay,
		WithSSELogger(logger),
		WithSSEHeartbeat(10*time.Second),
		WithSSEMaxClients(4),
	)

	assert.NotNil(t, handler)
	assert.Equal(t, 10*time.Second, handler.heartbeat)
	assert.Equal(t, logger, handler.logger)
	assert.Equal(t, 4, handler.maxClients)
}

func TestCredentialStreamHandler_Start_Stop(t *testing.T) {
	relay := auth.NewRelay()
	handler := NewCredentialStreamHandler(relay, WithSSELogger(zap.NewNop()))

	err := handler.Start()
	assert.NoError(t, err)

	// Starting again should fail
	err = handler.Start()
	assert.Error(t, err)

	handler.Stop()
}

func TestCredentialStreamHandler_GetClientCount(t *testing.T) {
	relay := auth.NewRelay()
	handler := NewCredentialStreamHandler(relay, WithSSELogger(zap.NewNop()))

	assert.Equal(t, 0, handler.GetClientCount())

	client := &SSEClient{
		ID:   "test-client-1",
		Chan: make(chan SSEMessage, 100),
		Done: make(chan struct{}),
	}
	handler.clients.Store(client.ID, client)

	assert.Equal(t, 1, handler.GetClientCount())

	client2 := &SSEClient{
		ID:   "test-client-2",
		Chan: make(chan SSEMessage, 100),
		Done: make(chan struct{}),
	}
	handler.clients.Store(client2.ID, client2)

	assert.Equal(t, 2, handler.GetClientCount())

	handler.clients.Delete(client.ID)
	assert.Equal(t, 1, handler.GetClientCount())
}

func TestCredentialStreamHandler_broadcast(t *testing.T) {
	relay := auth.NewRelay()
	handler := NewCredentialStreamHandler(relay, WithSSELogger(zap.NewNop()))

	client1Chan := make(chan SSEMessage, 100)
	client1 := &SSEClient{
		ID:   "client-1",
		Chan: client1Chan,
		Done: make(chan struct{}),
	}
	handler.clients.Store(client1.ID, client1)

	client2Chan := make(chan SSEMessage, 100)
	client2 := &SSEClient{
		ID:   "client-2",
		Chan: client2Chan,
		Done: make(chan struct{}),
	}
	handler.clients.Store(client2.ID, client2)

	msg := SSEMessage{
		Event: "refresh_requested",
		Data:  `{"timestamp":1700000000}`,
		ID:    "1",
	}
	handler.broadcast(msg)

	select {
	case received := <-client1Chan:
		assert.Equal(t, msg, received)
	default:
		t.Error("Client 1 did not receive message")
	}

	select {
	case received := <-client2Chan:
		assert.Equal(t, msg, received)
	default:
		t.Error("Client 2 did not receive message")
	}
}

func TestCredentialStreamHandler_ForwardsRefreshRequests(t *testing.T) {
	relay := auth.NewRelay()
	handler := NewCredentialStreamHandler(relay, WithSSELogger(zap.NewNop()))

	require.NoError(t, handler.Start())
	defer handler.Stop()

	clientChan := make(chan SSEMessage, 100)
	client := &SSEClient{
		ID:   "client-1",
		Chan: clientChan,
		Done: make(chan struct{}),
	}
	handler.clients.Store(client.ID, client)

	relay.RequestRefresh()

	select {
	case msg := <-clientChan:
		assert.Equal(t, "refresh_requested", msg.Event)
		assert.Equal(t, "1", msg.ID)
		assert.Contains(t, msg.Data, "timestamp")
	case <-time.After(time.Second):
		t.Fatal("refresh request was not forwarded to the client")
	}
}

func TestCredentialStreamHandler_CoalescesPendingRequests(t *testing.T) {
	relay := auth.NewRelay()
	handler := NewCredentialStreamHandler(relay, WithSSELogger(zap.NewNop()))

	// Two demands before the forwarder starts collapse into one signal:
	// the relay is level-triggered.
	relay.RequestRefresh()
	relay.RequestRefresh()

	require.NoError(t, handler.Start())
	defer handler.Stop()

	clientChan := make(chan SSEMessage, 100)
	client := &SSEClient{
		ID:   "client-1",
		Chan: clientChan,
		Done: make(chan struct{}),
	}
	handler.clients.Store(client.ID, client)

	// The coalesced signal may fire before the client registers; either
	// zero or one event is acceptable, never two.
	deadline := time.After(300 * time.Millisecond)
	events := 0
loop:
	for {
		select {
		case <-clientChan:
			events++
		case <-deadline:
			break loop
		}
	}
	assert.LessOrEqual(t, events, 1)
}

func TestSSEMessage_Format(t *testing.T) {
	msg := SSEMessage{
		Event: "refresh_requested",
		Data:  `{"timestamp":1700000000}`,
		ID:    "12345",
	}

	assert.Equal(t, "refresh_requested", msg.Event)
	assert.Contains(t, msg.Data, "timestamp")
	assert.Equal(t, "12345", msg.ID)
}
