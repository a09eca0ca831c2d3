package workers

import (
	"context"

	"github.com/cbodonnell/asteroids/pkg/log"
	"github.com/cbodonnell/asteroids/pkg/messages"
)

// Broadcaster delivers a serialized payload to every connected client.
type Broadcaster interface {
	Broadcast(ctx context.Context, payload []byte)
}

type BroadcastWorker struct {
	broadcaster Broadcaster
	updateChan  <-chan *messages.ServerGameUpdate
}

type NewBroadcastWorkerOptions struct {
	Broadcaster Broadcaster
	UpdateChan  <-chan *messages.ServerGameUpdate
}

// NewBroadcastWorker creates a worker that serializes each game update once
// and sends it to all clients.
func NewBroadcastWorker(opts NewBroadcastWorkerOptions) *BroadcastWorker {
	return &BroadcastWorker{
		broadcaster: opts.Broadcaster,
		updateChan:  opts.UpdateChan,
	}
}

func (w *BroadcastWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case update := <-w.updateChan:
			w.broadcast(ctx, update)
		}
	}
}

func (w *BroadcastWorker) broadcast(ctx context.Context, update *messages.ServerGameUpdate) {
	payload, err := messages.SerializeGameUpdate(update)
	if err != nil {
		log.Error("Failed to serialize game update: %v", err)
		return
	}
	w.broadcaster.Broadcast(ctx, payload)
}
