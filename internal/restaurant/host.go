package restaurant

import (
	"overcooked-agents/internal/agent"
	"overcooked-agents/internal/domain"
)

type hostBreakState int

const (
	hostBreakNone hostBreakState = iota
	hostBreakWanted
	hostBreakMustWait
	hostBreakGranted
	hostBreakOn
)

type waitingCustomer struct {
	customer Customer
	notified bool
}

type table struct {
	number   int
	occupied bool
}

type waiterRecord struct {
	waiter Waiter
	state  hostBreakState
}

type (
	addWaiterMsg     struct{ waiter Waiter }
	addTableMsg      struct{}
	requestTableMsg  struct{ customer Customer }
	willWaitMsg      struct{ customer Customer }
	leaveWaitListMsg struct{ customer Customer }
	tableFreeMsg     struct{ table int }
	requestBreakMsg  struct{ waiter Waiter }
	onBreakMsg       struct{ waiter Waiter }
	offBreakMsg      struct{ waiter Waiter }
)

// HostAgent seats customers and decides who may take a break.
type HostAgent struct {
	*agent.Runtime
	emitter

	waitList   []*waitingCustomer
	tables     []*table
	waiters    []*waiterRecord
	nextWaiter int
}

func NewHost(name string, tables int, opts ...Option) *HostAgent {
	s := newSettings(opts)
	h := &HostAgent{
		Runtime: s.runtime(name),
		emitter: emitter{agent: name, sink: s.events},
	}
	for i := 1; i <= tables; i++ {
		h.tables = append(h.tables, &table{number: i})
	}
	h.Bind(h.receive,
		agent.Rule{Name: "tell customer there is a wait", When: h.canNotifyWait, Do: h.notifyWait},
		agent.Rule{Name: "seat customer", When: h.canSeat, Do: h.seatCustomer},
		agent.Rule{Name: "arbitrate break", When: h.hasBreakDecision, Do: h.decideBreak},
	)
	return h
}

func (h *HostAgent) AddWaiter(w Waiter)       { h.Post(addWaiterMsg{w}) }
func (h *HostAgent) AddTable()                { h.Post(addTableMsg{}) }
func (h *HostAgent) RequestTable(c Customer)  { h.Post(requestTableMsg{c}) }
func (h *HostAgent) WillWait(c Customer)      { h.Post(willWaitMsg{c}) }
func (h *HostAgent) LeaveWaitList(c Customer) { h.Post(leaveWaitListMsg{c}) }
func (h *HostAgent) TableFree(table int)      { h.Post(tableFreeMsg{table}) }
func (h *HostAgent) RequestBreak(w Waiter)    { h.Post(requestBreakMsg{w}) }
func (h *HostAgent) GoingOnBreak(w Waiter)    { h.Post(onBreakMsg{w}) }
func (h *HostAgent) GoingOffBreak(w Waiter)   { h.Post(offBreakMsg{w}) }

func (h *HostAgent) receive(msg agent.Message) {
	log := h.Logger()
	switch m := msg.(type) {
	case addWaiterMsg:
		if h.findWaiter(m.waiter) != nil {
			log.Warn().Str("waiter", m.waiter.Name()).Msg("waiter already registered")
			return
		}
		h.waiters = append(h.waiters, &waiterRecord{waiter: m.waiter})
	case addTableMsg:
		h.tables = append(h.tables, &table{number: len(h.tables) + 1})
	case requestTableMsg:
		if h.waitListIndex(m.customer) >= 0 {
			log.Warn().Str("customer", m.customer.Name()).Msg("customer already on the wait list")
			return
		}
		h.waitList = append(h.waitList, &waitingCustomer{customer: m.customer})
		log.Info().Str("customer", m.customer.Name()).Int("waiting", len(h.waitList)).Msg("customer added to wait list")
	case willWaitMsg:
		if h.waitListIndex(m.customer) < 0 {
			log.Warn().Str("customer", m.customer.Name()).Msg("wait confirmation from customer not on the wait list")
			return
		}
		log.Debug().Str("customer", m.customer.Name()).Msg("customer will wait")
	case leaveWaitListMsg:
		i := h.waitListIndex(m.customer)
		if i < 0 {
			log.Debug().Str("customer", m.customer.Name()).Msg("departing customer already left the wait list")
			return
		}
		h.waitList = append(h.waitList[:i], h.waitList[i+1:]...)
		h.emit(domain.Event{Type: domain.EventCustomerLeftQueue, Subject: m.customer.Name()})
	case tableFreeMsg:
		if m.table < 1 || m.table > len(h.tables) || !h.tables[m.table-1].occupied {
			log.Warn().Int("table", m.table).Msg("free notice for a table that is not occupied")
			return
		}
		h.tables[m.table-1].occupied = false
		h.emit(domain.Event{Type: domain.EventTableCleared, Table: m.table})
	case requestBreakMsg:
		rec := h.findWaiter(m.waiter)
		if rec == nil {
			log.Warn().Str("waiter", m.waiter.Name()).Msg("break request from unknown waiter")
			return
		}
		if rec.state == hostBreakNone {
			rec.state = hostBreakWanted
		}
	case onBreakMsg:
		rec := h.findWaiter(m.waiter)
		if rec == nil {
			log.Warn().Str("waiter", m.waiter.Name()).Msg("break notice from unknown waiter")
			return
		}
		if rec.state != hostBreakGranted {
			log.Warn().Str("waiter", m.waiter.Name()).Msg("waiter went on break without permission")
		}
		rec.state = hostBreakOn
	case offBreakMsg:
		rec := h.findWaiter(m.waiter)
		if rec == nil {
			log.Warn().Str("waiter", m.waiter.Name()).Msg("break notice from unknown waiter")
			return
		}
		rec.state = hostBreakNone
	default:
		log.Warn().Type("message", msg).Msg("unexpected message")
	}
}

func (h *HostAgent) canNotifyWait() bool {
	return h.unnotified() != nil && h.freeTable() == nil
}

func (h *HostAgent) notifyWait() {
	wc := h.unnotified()
	wc.notified = true
	h.Logger().Info().Str("customer", wc.customer.Name()).Msg("all tables taken, telling customer there is a wait")
	wc.customer.ThereIsWait()
}

func (h *HostAgent) canSeat() bool {
	return len(h.waitList) > 0 && h.freeTable() != nil && h.workingWaiters() > 0
}

func (h *HostAgent) seatCustomer() {
	for h.waiters[h.nextWaiter].state == hostBreakOn {
		h.nextWaiter = (h.nextWaiter + 1) % len(h.waiters)
	}
	rec := h.waiters[h.nextWaiter]
	t := h.freeTable()
	wc := h.waitList[0]

	t.occupied = true
	h.waitList = h.waitList[1:]
	h.nextWaiter = (h.nextWaiter + 1) % len(h.waiters)

	h.Logger().Info().
		Str("customer", wc.customer.Name()).
		Str("waiter", rec.waiter.Name()).
		Int("table", t.number).
		Msg("assigning customer")
	h.emit(domain.Event{Type: domain.EventTableOccupied, Table: t.number, Subject: wc.customer.Name()})
	rec.waiter.SeatCustomer(wc.customer, t.number)
}

func (h *HostAgent) hasBreakDecision() bool {
	_, ok := h.breakDecision()
	return ok
}

func (h *HostAgent) decideBreak() {
	rec, _ := h.breakDecision()
	if h.canGrantBreak(rec) {
		rec.state = hostBreakGranted
		h.Logger().Info().Str("waiter", rec.waiter.Name()).Msg("break granted")
		rec.waiter.BreakGranted()
		return
	}
	rec.state = hostBreakMustWait
	h.Logger().Info().Str("waiter", rec.waiter.Name()).Msg("break denied for now")
	rec.waiter.BreakDenied()
}

// breakDecision finds a waiter whose break request can be answered: a
// waiting request that can now be granted, or a fresh request.
func (h *HostAgent) breakDecision() (*waiterRecord, bool) {
	for _, rec := range h.waiters {
		switch rec.state {
		case hostBreakWanted:
			return rec, true
		case hostBreakMustWait:
			if h.canGrantBreak(rec) {
				return rec, true
			}
		}
	}
	return nil, false
}

func (h *HostAgent) canGrantBreak(rec *waiterRecord) bool {
	if len(h.waitList) > 0 {
		return false
	}
	for _, other := range h.waiters {
		if other != rec && other.state != hostBreakOn {
			return true
		}
	}
	return false
}

func (h *HostAgent) unnotified() *waitingCustomer {
	for _, wc := range h.waitList {
		if !wc.notified {
			return wc
		}
	}
	return nil
}

func (h *HostAgent) freeTable() *table {
	for _, t := range h.tables {
		if !t.occupied {
			return t
		}
	}
	return nil
}

func (h *HostAgent) workingWaiters() int {
	n := 0
	for _, rec := range h.waiters {
		if rec.state != hostBreakOn {
			n++
		}
	}
	return n
}

func (h *HostAgent) findWaiter(w Waiter) *waiterRecord {
	for _, rec := range h.waiters {
		if rec.waiter == w {
			return rec
		}
	}
	return nil
}

func (h *HostAgent) waitListIndex(c Customer) int {
	for i, wc := range h.waitList {
		if wc.customer == c {
			return i
		}
	}
	return -1
}
