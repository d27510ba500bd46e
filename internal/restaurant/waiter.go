package restaurant

import (
	"overcooked-agents/internal/agent"
	"overcooked-agents/internal/domain"
)

type tableState int

const (
	custNeedsSeated tableState = iota
	custReadyToOrder
	custOrderPending
	custOrderReady
	custDoneEating
	custAwaitingBill
	custHasBill
	custCompletelyDone
	custClearing
	custWaiting
)

type waiterBreakState int

const (
	waiterBreakNone waiterBreakState = iota
	waiterBreakWanted
	waiterBreakAsked
	waiterBreakMustWait
	waiterBreakCanTake
	waiterBreakOn
)

type servedCustomer struct {
	customer        Customer
	table           int
	choice          string
	bill            *domain.Bill
	itemUnavailable bool
	state           tableState
}

type (
	seatCustomerMsg struct {
		customer Customer
		table    int
	}
	readyToOrderMsg struct{ customer Customer }
	orderChoiceMsg  struct {
		customer Customer
		item     string
	}
	orderReadyMsg struct {
		table int
		item  string
	}
	outOfItemMsg struct {
		item  string
		table int
	}
	doneEatingMsg struct{ customer Customer }
	leavingMsg    struct{ customer Customer }
	waiterBillMsg struct {
		customer Customer
		bill     domain.Bill
	}
	breakDeniedMsg  struct{}
	breakGrantedMsg struct{}
	setBreakMsg     struct{ on bool }
	setHostMsg      struct{ host Host }
	setCookMsg      struct{ cook Cook }
	setCashierMsg   struct{ cashier Cashier }
	tableBussedMsg  struct{ record *servedCustomer }
	breakOverMsg    struct{ epoch int }
)

// WaiterAgent serves the tables the host hands it.
type WaiterAgent struct {
	*agent.Runtime
	emitter

	menu    domain.Menu
	timings Timings

	host    Host
	cook    Cook
	cashier Cashier

	customers  []*servedCustomer
	breakState waiterBreakState
	breakEpoch int
	atHome     bool
}

func NewWaiter(name string, opts ...Option) *WaiterAgent {
	s := newSettings(opts)
	w := &WaiterAgent{
		Runtime: s.runtime(name),
		emitter: emitter{agent: name, sink: s.events},
		menu:    s.menu,
		timings: s.timings,
		atHome:  true,
	}
	w.Bind(w.receive,
		agent.Rule{Name: "serve ready food", When: w.working(w.has(custOrderReady)), Do: w.serveFood},
		agent.Rule{Name: "clear table", When: w.working(w.has(custCompletelyDone)), Do: w.clearTable},
		agent.Rule{Name: "seat customer", When: w.working(w.has(custNeedsSeated)), Do: w.seatCustomer},
		agent.Rule{Name: "give bill", When: w.working(w.has(custDoneEating)), Do: w.handleBill},
		agent.Rule{Name: "send order to cook", When: w.working(w.has(custOrderPending)), Do: w.sendOrder},
		agent.Rule{Name: "take order", When: w.working(w.has(custReadyToOrder)), Do: w.takeOrder},
		agent.Rule{Name: "go home", When: w.working(func() bool { return !w.atHome }), Do: w.goHome},
		agent.Rule{Name: "ask for break", When: w.working(w.inBreakState(waiterBreakWanted)), Do: w.askForBreak},
		agent.Rule{Name: "go on break", When: w.working(w.inBreakState(waiterBreakCanTake)), Do: w.goOnBreak},
	)
	return w
}

func (w *WaiterAgent) SetHost(h Host)          { w.Post(setHostMsg{h}) }
func (w *WaiterAgent) SetCook(c Cook)          { w.Post(setCookMsg{c}) }
func (w *WaiterAgent) SetCashier(c Cashier)    { w.Post(setCashierMsg{c}) }
func (w *WaiterAgent) ReadyToOrder(c Customer) { w.Post(readyToOrderMsg{c}) }
func (w *WaiterAgent) DoneEating(c Customer)   { w.Post(doneEatingMsg{c}) }
func (w *WaiterAgent) Leaving(c Customer)      { w.Post(leavingMsg{c}) }
func (w *WaiterAgent) BreakDenied()            { w.Post(breakDeniedMsg{}) }
func (w *WaiterAgent) BreakGranted()           { w.Post(breakGrantedMsg{}) }

// SetBreak is the UI's break switch.
func (w *WaiterAgent) SetBreak(on bool) { w.Post(setBreakMsg{on}) }

func (w *WaiterAgent) SeatCustomer(c Customer, table int) {
	w.Post(seatCustomerMsg{customer: c, table: table})
}

func (w *WaiterAgent) OrderChoice(c Customer, item string) {
	w.Post(orderChoiceMsg{customer: c, item: item})
}

func (w *WaiterAgent) OrderReady(table int, item string) {
	w.Post(orderReadyMsg{table: table, item: item})
}

func (w *WaiterAgent) OutOfItem(item string, table int) {
	w.Post(outOfItemMsg{item: item, table: table})
}

func (w *WaiterAgent) HereIsBill(c Customer, bill domain.Bill) {
	w.Post(waiterBillMsg{customer: c, bill: bill})
}

func (w *WaiterAgent) receive(msg agent.Message) {
	log := w.Logger()
	switch m := msg.(type) {
	case setHostMsg:
		w.host = m.host
	case setCookMsg:
		w.cook = m.cook
	case setCashierMsg:
		w.cashier = m.cashier
	case seatCustomerMsg:
		w.customers = append(w.customers, &servedCustomer{customer: m.customer, table: m.table, state: custNeedsSeated})
	case readyToOrderMsg:
		if sc := w.expect(m.customer, "ready to order", custWaiting); sc != nil {
			sc.state = custReadyToOrder
		}
	case orderChoiceMsg:
		if sc := w.expect(m.customer, "order choice", custWaiting); sc != nil {
			sc.choice = m.item
			sc.itemUnavailable = false
			sc.state = custOrderPending
		}
	case orderReadyMsg:
		sc := w.byTable(m.table)
		if sc == nil || sc.state != custWaiting || sc.choice != m.item {
			log.Warn().Int("table", m.table).Str("item", m.item).Msg("food ready for a table with no matching order")
			return
		}
		sc.state = custOrderReady
	case outOfItemMsg:
		sc := w.byTable(m.table)
		if sc == nil || sc.state != custWaiting || sc.choice != m.item {
			log.Warn().Int("table", m.table).Str("item", m.item).Msg("out of item notice for a table with no matching order")
			return
		}
		sc.itemUnavailable = true
		sc.state = custReadyToOrder
	case doneEatingMsg:
		if sc := w.expect(m.customer, "done eating", custWaiting); sc != nil {
			sc.state = custDoneEating
		}
	case leavingMsg:
		sc := w.find(m.customer)
		if sc == nil {
			log.Warn().Str("customer", m.customer.Name()).Msg("leaving notice from a customer not being served")
			return
		}
		sc.state = custCompletelyDone
	case waiterBillMsg:
		sc := w.find(m.customer)
		if sc == nil || sc.bill != nil {
			log.Warn().Str("customer", m.customer.Name()).Stringer("bill_id", m.bill.ID).Msg("bill for a customer with no open check")
			return
		}
		bill := m.bill
		sc.bill = &bill
		if sc.state == custAwaitingBill {
			sc.state = custDoneEating
		}
	case breakDeniedMsg:
		if w.breakState != waiterBreakAsked {
			log.Warn().Msg("break denial without a pending request")
			return
		}
		w.breakState = waiterBreakMustWait
	case breakGrantedMsg:
		if w.breakState != waiterBreakAsked && w.breakState != waiterBreakMustWait {
			log.Info().Msg("break granted after the request was withdrawn")
			if w.host != nil {
				w.host.GoingOffBreak(w)
			}
			return
		}
		w.breakState = waiterBreakCanTake
	case setBreakMsg:
		w.setBreak(m.on)
	case tableBussedMsg:
		w.finishClearing(m.record)
	case breakOverMsg:
		if w.breakState != waiterBreakOn || m.epoch != w.breakEpoch {
			return
		}
		w.goOffBreak()
	default:
		log.Warn().Type("message", msg).Msg("unexpected message")
	}
}

func (w *WaiterAgent) setBreak(on bool) {
	if on {
		if w.breakState == waiterBreakNone {
			w.breakState = waiterBreakWanted
		}
		return
	}
	switch w.breakState {
	case waiterBreakOn:
		w.goOffBreak()
	case waiterBreakAsked, waiterBreakMustWait, waiterBreakCanTake:
		w.breakState = waiterBreakNone
		if w.host != nil {
			w.host.GoingOffBreak(w)
		}
	default:
		w.breakState = waiterBreakNone
	}
}

func (w *WaiterAgent) working(pred func() bool) func() bool {
	return func() bool {
		return w.breakState != waiterBreakOn && pred()
	}
}

func (w *WaiterAgent) has(state tableState) func() bool {
	return func() bool { return w.first(state) != nil }
}

func (w *WaiterAgent) inBreakState(state waiterBreakState) func() bool {
	return func() bool { return w.breakState == state }
}

func (w *WaiterAgent) serveFood() {
	sc := w.first(custOrderReady)
	sc.state = custWaiting
	w.atHome = false
	w.moved(domain.PositionKitchen, 0)
	w.moved(domain.PositionTable, sc.table)
	w.emit(domain.Event{Type: domain.EventFoodPlaced, Table: sc.table, Item: sc.choice, Subject: sc.customer.Name()})
	sc.customer.HereIsFood(sc.choice)
}

func (w *WaiterAgent) clearTable() {
	sc := w.first(custCompletelyDone)
	sc.state = custClearing
	w.atHome = false
	w.moved(domain.PositionTable, sc.table)
	w.After(w.timings.Bussing, tableBussedMsg{record: sc})
}

func (w *WaiterAgent) finishClearing(sc *servedCustomer) {
	i := w.indexOf(sc)
	if i < 0 || sc.state != custClearing {
		w.Logger().Debug().Int("table", sc.table).Msg("stale bussing timer")
		return
	}
	w.customers = append(w.customers[:i], w.customers[i+1:]...)
	w.emit(domain.Event{Type: domain.EventFoodRemoved, Table: sc.table})
	w.Logger().Info().Int("table", sc.table).Str("customer", sc.customer.Name()).Msg("table cleared")
	w.host.TableFree(sc.table)
}

func (w *WaiterAgent) seatCustomer() {
	sc := w.first(custNeedsSeated)
	sc.state = custWaiting
	w.atHome = false
	w.moved(domain.PositionEntrance, 0)
	w.moved(domain.PositionTable, sc.table)
	w.emit(domain.Event{Type: domain.EventCustomerSeated, Table: sc.table, Subject: sc.customer.Name()})
	sc.customer.FollowMe(w, w.menu)
}

func (w *WaiterAgent) handleBill() {
	sc := w.first(custDoneEating)
	if sc.bill != nil {
		sc.state = custHasBill
		w.atHome = false
		w.moved(domain.PositionTable, sc.table)
		w.emit(domain.Event{Type: domain.EventFoodRemoved, Table: sc.table})
		sc.customer.HereIsBill(*sc.bill)
		return
	}
	sc.state = custAwaitingBill
	w.atHome = false
	w.moved(domain.PositionCashier, 0)
	w.cashier.NeedBill(w, sc.customer, sc.choice)
}

func (w *WaiterAgent) sendOrder() {
	sc := w.first(custOrderPending)
	sc.state = custWaiting
	w.atHome = false
	w.moved(domain.PositionKitchen, 0)
	w.emit(domain.Event{Type: domain.EventCustomerOrdered, Table: sc.table, Item: sc.choice, Subject: sc.customer.Name()})
	w.cook.PlaceOrder(w, sc.table, sc.choice)
}

func (w *WaiterAgent) takeOrder() {
	sc := w.first(custReadyToOrder)
	sc.state = custWaiting
	w.atHome = false
	w.moved(domain.PositionTable, sc.table)
	if sc.itemUnavailable {
		w.Logger().Info().Int("table", sc.table).Str("item", sc.choice).Msg("asking customer to order again")
	}
	sc.customer.WhatWouldYouLike()
}

func (w *WaiterAgent) goHome() {
	w.atHome = true
	w.moved(domain.PositionHome, 0)
}

func (w *WaiterAgent) askForBreak() {
	w.breakState = waiterBreakAsked
	w.host.RequestBreak(w)
}

func (w *WaiterAgent) goOnBreak() {
	w.breakState = waiterBreakOn
	w.breakEpoch++
	w.Logger().Info().Msg("going on break")
	w.moved(domain.PositionBreakRoom, 0)
	w.emit(domain.Event{Type: domain.EventWaiterOnBreak})
	w.host.GoingOnBreak(w)
	w.After(w.timings.BreakLength, breakOverMsg{epoch: w.breakEpoch})
}

func (w *WaiterAgent) goOffBreak() {
	w.breakState = waiterBreakNone
	w.atHome = false
	w.Logger().Info().Msg("back from break")
	w.emit(domain.Event{Type: domain.EventWaiterOffBreak})
	w.host.GoingOffBreak(w)
}

func (w *WaiterAgent) expect(c Customer, what string, state tableState) *servedCustomer {
	sc := w.find(c)
	if sc == nil || sc.state != state {
		w.Logger().Warn().Str("customer", c.Name()).Str("message", what).Msg("message from a customer in the wrong state")
		return nil
	}
	return sc
}

func (w *WaiterAgent) first(state tableState) *servedCustomer {
	for _, sc := range w.customers {
		if sc.state == state {
			return sc
		}
	}
	return nil
}

// find returns the customer's active record, ignoring tables being cleared.
func (w *WaiterAgent) find(c Customer) *servedCustomer {
	for _, sc := range w.customers {
		if sc.customer == c && sc.state != custCompletelyDone && sc.state != custClearing {
			return sc
		}
	}
	return nil
}

func (w *WaiterAgent) byTable(table int) *servedCustomer {
	for _, sc := range w.customers {
		if sc.table == table {
			return sc
		}
	}
	return nil
}

func (w *WaiterAgent) indexOf(sc *servedCustomer) int {
	for i, rec := range w.customers {
		if rec == sc {
			return i
		}
	}
	return -1
}
