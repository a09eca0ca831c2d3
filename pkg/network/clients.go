package network

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/cbodonnell/asteroids/pkg/log"
	"golang.org/x/sync/errgroup"
	"nhooyr.io/websocket"
)

const (
	// ClientIDMaxRetries represents the maximum number of retries when generating a unique ID
	ClientIDMaxRetries = 1024
	// ClientWriteTimeout bounds a single write to a client
	ClientWriteTimeout = time.Second
	// ClientBroadcastConcurrency bounds the number of concurrent client writes
	ClientBroadcastConcurrency = 16
)

// Client represents a connected client
type Client struct {
	ID   uint32
	Conn *websocket.Conn
}

// ClientManager manages connected clients
type ClientManager struct {
	clients     map[uint32]*Client
	clientsLock sync.RWMutex
}

// NewClientManager creates a new ClientManager
func NewClientManager() *ClientManager {
	return &ClientManager{
		clients: make(map[uint32]*Client),
	}
}

// GetClients returns a slice of all connected clients.
func (cm *ClientManager) GetClients() []*Client {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	clients := make([]*Client, 0, len(cm.clients))
	for _, client := range cm.clients {
		clients = append(clients, client)
	}
	return clients
}

// Count returns the number of connected clients.
func (cm *ClientManager) Count() int {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	return len(cm.clients)
}

// ConnectClient adds a new client to the manager and returns its ID
func (cm *ClientManager) ConnectClient(conn *websocket.Conn) (uint32, error) {
	cm.clientsLock.Lock()
	defer cm.clientsLock.Unlock()

	clientID, err := cm.generateUniqueID(ClientIDMaxRetries)
	if err != nil {
		return 0, fmt.Errorf("failed to generate a unique ID: %v", err)
	}
	cm.clients[clientID] = &Client{
		ID:   clientID,
		Conn: conn,
	}

	return clientID, nil
}

// DisconnectClient removes a client from the manager
func (cm *ClientManager) DisconnectClient(clientID uint32) {
	cm.clientsLock.Lock()
	defer cm.clientsLock.Unlock()
	delete(cm.clients, clientID)
}

func (cm *ClientManager) Exists(clientID uint32) bool {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	_, ok := cm.clients[clientID]
	return ok
}

// Broadcast writes a binary message to every connected client.
// Clients that cannot be written to are disconnected.
func (cm *ClientManager) Broadcast(ctx context.Context, payload []byte) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(ClientBroadcastConcurrency)
	for _, client := range cm.GetClients() {
		client := client
		g.Go(func() error {
			writeCtx, cancel := context.WithTimeout(ctx, ClientWriteTimeout)
			defer cancel()
			if err := client.Conn.Write(writeCtx, websocket.MessageBinary, payload); err != nil {
				log.Warn("Failed to write to client %d: %v", client.ID, err)
				cm.DisconnectClient(client.ID)
				client.Conn.Close(websocket.StatusGoingAway, "write failed")
			}
			return nil
		})
	}
	_ = g.Wait()
}

// generateUniqueID generates a unique client ID with a maximum number of retries
// it reads from the clients, so it needs to be locked before calling
func (cm *ClientManager) generateUniqueID(maxRetries int) (uint32, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		id := rand.Uint32()
		if id == 0 {
			continue
		}
		if _, ok := cm.clients[id]; !ok {
			return id, nil
		}
	}

	return 0, fmt.Errorf("failed to generate a unique ID after %d attempts", maxRetries)
}
