package sim

import "testing"

func TestWaitQueue_Dequeue_FIFO(t *testing.T) {
	// GIVEN a queue with visitors [A, B, C]
	wq := &waitQueue{}
	for _, id := range []string{"A", "B", "C"} {
		wq.Enqueue(&Visitor{ID: id})
	}

	// WHEN all visitors are dequeued
	ids := make([]string, 0, 3)
	for wq.Len() > 0 {
		ids = append(ids, wq.Dequeue().ID)
	}

	// THEN they come out in enqueue order
	want := []string{"A", "B", "C"}
	for i, id := range ids {
		if id != want[i] {
			t.Errorf("Dequeue order[%d]: got %s, want %s", i, id, want[i])
		}
	}
}

func TestWaitQueue_Dequeue_Empty_ReturnsNil(t *testing.T) {
	// GIVEN an empty queue
	wq := &waitQueue{}

	// WHEN Dequeue() is called
	got := wq.Dequeue()

	// THEN it returns nil
	if got != nil {
		t.Errorf("Dequeue on empty queue: got %v, want nil", got)
	}
}

func TestWaitQueue_Peek_NonEmpty_ReturnsFront(t *testing.T) {
	// GIVEN a queue with visitors [A, B]
	wq := &waitQueue{}
	visA := &Visitor{ID: "A"}
	wq.Enqueue(visA)
	wq.Enqueue(&Visitor{ID: "B"})

	// WHEN Peek() is called
	got := wq.Peek()

	// THEN it returns the front element without removing it
	if got != visA {
		t.Errorf("Peek: got visitor %v, want %v", got.ID, visA.ID)
	}
	if wq.Len() != 2 {
		t.Errorf("Peek modified queue length: got %d, want 2", wq.Len())
	}
}

func TestWaitQueue_Peek_Empty_ReturnsNil(t *testing.T) {
	// GIVEN an empty queue
	wq := &waitQueue{}

	// WHEN Peek() is called
	got := wq.Peek()

	// THEN it returns nil
	if got != nil {
		t.Errorf("Peek on empty queue: got %v, want nil", got)
	}
}

func TestWaitQueue_RequeueFront_PreservesFIFO(t *testing.T) {
	// GIVEN a queue with visitors [B, C] after A was dequeued
	wq := &waitQueue{}
	visA := &Visitor{ID: "A"}
	wq.Enqueue(visA)
	wq.Enqueue(&Visitor{ID: "B"})
	wq.Enqueue(&Visitor{ID: "C"})
	wq.Dequeue()

	// WHEN A is requeued at the front (failed admission)
	wq.RequeueFront(visA)

	// THEN the original order [A, B, C] is restored
	ids := make([]string, 0, 3)
	for wq.Len() > 0 {
		ids = append(ids, wq.Dequeue().ID)
	}
	want := []string{"A", "B", "C"}
	for i, id := range ids {
		if id != want[i] {
			t.Errorf("RequeueFront order[%d]: got %s, want %s", i, id, want[i])
		}
	}
}

func TestWaitQueue_RequeueFront_OnEmpty(t *testing.T) {
	// GIVEN an empty queue
	wq := &waitQueue{}

	// WHEN RequeueFront(X) is called
	visX := &Visitor{ID: "X"}
	wq.RequeueFront(visX)

	// THEN Peek() returns X and Len() is 1
	if wq.Peek() != visX {
		t.Errorf("RequeueFront on empty: Peek() got %v, want X", wq.Peek())
	}
	if wq.Len() != 1 {
		t.Errorf("RequeueFront on empty: Len() got %d, want 1", wq.Len())
	}
}
