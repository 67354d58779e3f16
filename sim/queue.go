// Implements the waitQueue, which holds visitors waiting for a station slot.
// Each station owns two of these, one per priority class; all mutation happens
// under the owning station's lock.

package sim

import (
	"fmt"
	"strings"
)

// waitQueue is a FIFO queue of visitors waiting to be admitted to a station.
// It is not safe for concurrent use on its own: the owning Station serializes
// access through its exclusive section.
type waitQueue struct {
	queue []*Visitor
}

// Enqueue adds a visitor to the back of the wait queue.
func (wq *waitQueue) Enqueue(v *Visitor) {
	wq.queue = append(wq.queue, v)
}

// Dequeue removes and returns the visitor at the front of the queue.
// Returns nil if the queue is empty.
func (wq *waitQueue) Dequeue() *Visitor {
	if len(wq.queue) == 0 {
		return nil
	}
	front := wq.queue[0]
	wq.queue = wq.queue[1:]
	return front
}

// Peek returns the visitor at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (wq *waitQueue) Peek() *Visitor {
	if len(wq.queue) == 0 {
		return nil
	}
	return wq.queue[0]
}

// RequeueFront inserts a visitor at the front of the queue.
// Used when a drainer dequeued a visitor but found the station at capacity:
// the visitor goes back to the head so class FIFO order is preserved.
func (wq *waitQueue) RequeueFront(v *Visitor) {
	if v == nil {
		panic("RequeueFront: v must not be nil")
	}
	wq.queue = append([]*Visitor{v}, wq.queue...)
}

// Len returns the number of visitors in the queue.
func (wq *waitQueue) Len() int {
	return len(wq.queue)
}

func (wq *waitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, v := range wq.queue {
		sb.WriteString(fmt.Sprint(v))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
