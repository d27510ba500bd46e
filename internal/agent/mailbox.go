package agent

import "sync"

// Message is anything an agent accepts in its mailbox. Agents dispatch on the
// concrete type.
type Message any

// Mailbox is an unbounded FIFO with many producers and a single consumer.
// Post never blocks.
type Mailbox struct {
	mu     sync.Mutex
	queue  []Message
	ready  chan struct{}
	closed bool
}

func NewMailbox() *Mailbox {
	return &Mailbox{ready: make(chan struct{}, 1)}
}

// Post appends msg and wakes the consumer. Messages posted after Close are
// dropped and Post reports false.
func (m *Mailbox) Post(msg Message) bool {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return false
	}
	m.queue = append(m.queue, msg)
	m.mu.Unlock()

	select {
	case m.ready <- struct{}{}:
	default:
	}
	return true
}

// Ready is signalled at least once after every Post.
func (m *Mailbox) Ready() <-chan struct{} {
	return m.ready
}

// Drain removes and returns every queued message in arrival order.
func (m *Mailbox) Drain() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.queue) == 0 {
		return nil
	}
	msgs := m.queue
	m.queue = nil
	return msgs
}

func (m *Mailbox) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

func (m *Mailbox) Close() {
	m.mu.Lock()
	m.closed = true
	m.queue = nil
	m.mu.Unlock()
}
