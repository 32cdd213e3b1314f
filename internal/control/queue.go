package control

// Queue buffers commands produced while events are polled.
type Queue struct {
	pending []Command
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{pending: make([]Command, 0, 16)}
}

// Push appends a command.
func (q *Queue) Push(c Command) {
	q.pending = append(q.pending, c)
}

// Len returns the number of buffered commands.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Drain applies every buffered command to s in the order pushed and empties
// the queue. Results are returned in the same order.
func (q *Queue) Drain(s *State) []Result {
	if len(q.pending) == 0 {
		return nil
	}
	results := make([]Result, 0, len(q.pending))
	for _, c := range q.pending {
		results = append(results, s.Apply(c))
	}
	q.pending = q.pending[:0]
	return results
}
