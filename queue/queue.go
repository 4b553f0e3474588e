package queue

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Upload holds the metadata and contents of a file waiting to be persisted
type Upload struct {
	Filename    string
	ContentType string
	Extension   string
	Size        int64
	SizeKB      decimal.Decimal
	Contents    []byte
}

// FileQueue is an unbounded FIFO of pending uploads. The upload handler
// produces into it and the scheduler's flush job drains it.
type FileQueue struct {
	mu      sync.Mutex
	pending []Upload
}

// NewFileQueue creates an empty file queue
func NewFileQueue() *FileQueue {
	return &FileQueue{}
}

// Put appends an upload to the queue
func (q *FileQueue) Put(u Upload) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, u)
}

// Get removes and returns the oldest upload. The second return value
// is false when the queue is empty.
func (q *FileQueue) Get() (Upload, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return Upload{}, false
	}
	u := q.pending[0]
	q.pending = q.pending[1:]
	return u, true
}

// Len returns the number of pending uploads
func (q *FileQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Empty reports whether the queue has no pending uploads
func (q *FileQueue) Empty() bool {
	return q.Len() == 0
}
