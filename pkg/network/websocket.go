package network

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/asteroids/pkg/log"
	"github.com/cbodonnell/asteroids/pkg/messages"
	"github.com/cbodonnell/asteroids/pkg/queue"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// WSServer accepts websocket clients and queues their messages for the game loop.
type WSServer struct {
	port          int
	tls           *TLSConfig
	clientManager *ClientManager
	messageQueue  queue.Queue
	server        *http.Server
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewWSServerOptions struct {
	Port          int
	TLS           *TLSConfig
	ClientManager *ClientManager
	MessageQueue  queue.Queue
}

// NewWSServer creates a new WebSocket server.
func NewWSServer(opts NewWSServerOptions) *WSServer {
	s := &WSServer{
		port:          opts.Port,
		tls:           opts.TLS,
		clientManager: opts.ClientManager,
		messageQueue:  opts.MessageQueue,
	}
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: s,
	}
	return s
}

// Start serves websocket connections until ctx is done.
func (s *WSServer) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()
		s.server.Shutdown(context.Background())
	}()

	var listenAndServe func() error
	if s.tls != nil {
		log.Info("WebSocket server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("WebSocket server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("WebSocket server closed")
			return
		}
		log.Error("WebSocket server error: %v", err)
	}
}

func (s *WSServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		log.Error("Failed to accept WebSocket connection: %v", err)
		return
	}
	conn.SetReadLimit(messages.MessageBufferSize)

	clientID, err := s.clientManager.ConnectClient(conn)
	if err != nil {
		log.Error("Failed to connect client: %v", err)
		conn.Close(websocket.StatusTryAgainLater, "server full")
		return
	}
	log.Info("Client %d connected from %s", clientID, r.RemoteAddr)

	s.handleConnection(r.Context(), clientID, conn)
}

// handleConnection reads messages from a client until the connection closes.
func (s *WSServer) handleConnection(ctx context.Context, clientID uint32, conn *websocket.Conn) {
	defer func() {
		s.clientManager.DisconnectClient(clientID)
		conn.Close(websocket.StatusNormalClosure, "")
		log.Info("Client %d disconnected", clientID)
	}()

	for {
		message, err := ReadMessageFromWS(ctx, conn)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway {
				log.Debug("Error reading WebSocket message from client %d: %v", clientID, err)
			}
			return
		}

		message.ClientID = clientID
		if err := s.messageQueue.Enqueue(message); err != nil {
			log.Warn("Dropped message %s from client %d: %v", message.Type, clientID, err)
		}
	}
}

// ReadMessageFromWS reads a JSON Message from a WebSocket connection
func ReadMessageFromWS(ctx context.Context, conn *websocket.Conn) (*messages.Message, error) {
	msg := &messages.Message{}
	if err := wsjson.Read(ctx, conn, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// WriteMessageToWS writes a JSON Message to a WebSocket connection
func WriteMessageToWS(ctx context.Context, conn *websocket.Conn, msg *messages.Message) error {
	if err := wsjson.Write(ctx, conn, msg); err != nil {
		return fmt.Errorf("failed to write message to WebSocket connection: %v", err)
	}
	return nil
}
