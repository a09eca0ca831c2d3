package queue

import "errors"

var (
	// ErrQueueFull is returned when an item is enqueued on a full queue
	ErrQueueFull = errors.New("queue is full")
)

// Queue represents a basic queue.
type Queue interface {
	Enqueue(item interface{}) error
	Size() int
	ReadAllMessages() ([]interface{}, error)
}
