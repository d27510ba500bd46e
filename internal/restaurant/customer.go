package restaurant

import (
	"fmt"
	"math/rand/v2"

	"overcooked-agents/internal/agent"
	"overcooked-agents/internal/domain"
)

type CustomerState int

const (
	CustomerIdle CustomerState = iota
	CustomerWaitingInQueue
	CustomerSeated
	CustomerOrderDecided
	CustomerOrderPlaced
	CustomerEating
	CustomerPayingBill
	CustomerWorkingOff
)

var customerStateNames = [...]string{
	"idle", "waiting_in_queue", "seated", "order_decided",
	"order_placed", "eating", "paying_bill", "working_off",
}

func (s CustomerState) String() string {
	if int(s) < len(customerStateNames) {
		return customerStateNames[s]
	}
	return fmt.Sprintf("CustomerState(%d)", int(s))
}

type customerEvent int

const (
	evGotHungry customerEvent = iota
	evThereIsWait
	evBeingSeated
	evDecidedChoice
	evWaiterToTakeOrder
	evFoodDelivered
	evDoneEating
	evGotBill
	evGotReceipt
	evMustWork
	evDoneWorking
)

var customerEventNames = [...]string{
	"got_hungry", "there_is_wait", "being_seated", "decided_choice",
	"waiter_to_take_order", "food_delivered", "done_eating", "got_bill",
	"got_receipt", "must_work", "done_working",
}

func (e customerEvent) String() string {
	return customerEventNames[e]
}

type (
	becomeHungryMsg struct{}
	thereIsWaitMsg  struct{}
	followMeMsg     struct {
		waiter Waiter
		menu   domain.Menu
	}
	whatWouldYouLikeMsg struct{}
	hereIsFoodMsg       struct{ item string }
	customerBillMsg     struct{ bill domain.Bill }
	receiptMsg          struct{ change float64 }
	mustWorkMsg         struct{ hours float64 }
	// visitTimerMsg is a delayed self-message stamped with the visit it
	// belongs to.
	visitTimerMsg struct {
		visit int
		event customerEvent
	}
	rehungryMsg struct{ visit int }
)

type customerTransition struct {
	from  CustomerState
	event customerEvent
}

// CustomerAgent is a guest driven by a finite-state machine. Messages are
// turned into events and consumed one per rule firing, in arrival order.
type CustomerAgent struct {
	*agent.Runtime
	emitter

	timings  Timings
	rng      *rand.Rand
	stay     func() bool
	fixed    *float64
	hunger   int
	rehungry bool

	host    Host
	cashier Cashier
	waiter  Waiter
	menu    domain.Menu

	state       CustomerState
	events      []customerEvent
	visit       int
	cash        float64
	choice      string
	unavailable map[string]bool
	bill        *domain.Bill
	hours       float64

	transitions map[customerTransition]func()
}

func NewCustomer(name string, opts ...Option) *CustomerAgent {
	s := newSettings(opts)
	c := &CustomerAgent{
		Runtime:  s.runtime(name),
		emitter:  emitter{agent: name, sink: s.events},
		timings:  s.timings,
		rng:      s.rng,
		stay:     s.stay,
		fixed:    s.cash,
		hunger:   s.hunger,
		rehungry: s.rehungry,
	}
	if c.stay == nil {
		c.stay = func() bool { return c.rng.IntN(2) == 0 }
	}
	c.transitions = map[customerTransition]func(){
		{CustomerIdle, evGotHungry}:                 c.goToRestaurant,
		{CustomerIdle, evBeingSeated}:               c.declineSeat,
		{CustomerWaitingInQueue, evThereIsWait}:     c.decideToWait,
		{CustomerWaitingInQueue, evBeingSeated}:     c.sitDown,
		{CustomerSeated, evDecidedChoice}:           c.callWaiter,
		{CustomerOrderDecided, evWaiterToTakeOrder}: c.order,
		{CustomerOrderPlaced, evWaiterToTakeOrder}:  c.order,
		{CustomerOrderPlaced, evFoodDelivered}:      c.eat,
		{CustomerEating, evDoneEating}:              c.finishEating,
		{CustomerPayingBill, evGotBill}:             c.pay,
		{CustomerPayingBill, evGotReceipt}:          c.leave,
		{CustomerPayingBill, evMustWork}:            c.work,
		{CustomerWorkingOff, evDoneWorking}:         c.leave,
	}
	c.Bind(c.receive,
		agent.Rule{Name: "handle event", When: func() bool { return len(c.events) > 0 }, Do: c.step},
	)
	return c
}

func (c *CustomerAgent) SetHost(h Host)       { c.Post(setHostMsg{h}) }
func (c *CustomerAgent) SetCashier(x Cashier) { c.Post(setCashierMsg{x}) }

// BecomeHungry is the UI command that sends the customer to the restaurant.
func (c *CustomerAgent) BecomeHungry()          { c.Post(becomeHungryMsg{}) }
func (c *CustomerAgent) ThereIsWait()           { c.Post(thereIsWaitMsg{}) }
func (c *CustomerAgent) WhatWouldYouLike()      { c.Post(whatWouldYouLikeMsg{}) }
func (c *CustomerAgent) HereIsFood(item string) { c.Post(hereIsFoodMsg{item}) }
func (c *CustomerAgent) HereIsBill(b domain.Bill) {
	c.Post(customerBillMsg{b})
}
func (c *CustomerAgent) Receipt(change float64) { c.Post(receiptMsg{change}) }
func (c *CustomerAgent) MustWork(hours float64) { c.Post(mustWorkMsg{hours}) }

func (c *CustomerAgent) FollowMe(w Waiter, menu domain.Menu) {
	c.Post(followMeMsg{waiter: w, menu: menu})
}

func (c *CustomerAgent) receive(msg agent.Message) {
	switch m := msg.(type) {
	case setHostMsg:
		c.host = m.host
	case setCashierMsg:
		c.cashier = m.cashier
	case becomeHungryMsg:
		c.events = append(c.events, evGotHungry)
	case thereIsWaitMsg:
		c.events = append(c.events, evThereIsWait)
	case followMeMsg:
		c.waiter = m.waiter
		c.menu = m.menu
		c.events = append(c.events, evBeingSeated)
	case whatWouldYouLikeMsg:
		c.events = append(c.events, evWaiterToTakeOrder)
	case hereIsFoodMsg:
		if m.item != c.choice {
			c.Logger().Warn().Str("item", m.item).Str("ordered", c.choice).Msg("served a different dish")
		}
		c.events = append(c.events, evFoodDelivered)
	case customerBillMsg:
		bill := m.bill
		c.bill = &bill
		c.events = append(c.events, evGotBill)
	case receiptMsg:
		c.cash += m.change
		c.events = append(c.events, evGotReceipt)
	case mustWorkMsg:
		c.hours = m.hours
		c.events = append(c.events, evMustWork)
	case visitTimerMsg:
		if m.visit != c.visit {
			c.Logger().Debug().Stringer("event", m.event).Msg("stale timer from an earlier visit")
			return
		}
		c.events = append(c.events, m.event)
	case rehungryMsg:
		if m.visit == c.visit && c.state == CustomerIdle {
			c.events = append(c.events, evGotHungry)
		}
	default:
		c.Logger().Warn().Type("message", msg).Msg("unexpected message")
	}
}

func (c *CustomerAgent) step() {
	ev := c.events[0]
	c.events = c.events[1:]
	action, ok := c.transitions[customerTransition{c.state, ev}]
	if !ok {
		c.Logger().Error().Stringer("state", c.state).Stringer("event", ev).Msg("no transition for event")
		c.emit(domain.Event{Type: domain.EventProtocolError, Detail: fmt.Sprintf("event %s in state %s", ev, c.state)})
		return
	}
	action()
}

func (c *CustomerAgent) goToRestaurant() {
	c.visit++
	c.cash = c.startingCash()
	c.unavailable = make(map[string]bool)
	c.choice = ""
	c.bill = nil
	c.hours = 0
	c.state = CustomerWaitingInQueue
	c.Logger().Info().Float64("cash", c.cash).Msg("hungry, heading to the restaurant")
	c.emit(domain.Event{Type: domain.EventCustomerQueued, Amount: c.cash})
	c.host.RequestTable(c)
}

func (c *CustomerAgent) decideToWait() {
	if c.stay() {
		c.Logger().Info().Msg("will wait for a table")
		c.host.WillWait(c)
		return
	}
	c.Logger().Info().Msg("wait is too long, leaving")
	c.host.LeaveWaitList(c)
	c.reset()
}

// declineSeat answers a seat offered after the customer gave up on the queue.
func (c *CustomerAgent) declineSeat() {
	c.Logger().Info().Msg("already left, declining the table")
	c.waiter.Leaving(c)
	c.waiter = nil
}

func (c *CustomerAgent) sitDown() {
	c.state = CustomerSeated
	c.moved(domain.PositionTable, 0)
	c.After(c.timings.MenuDecision, visitTimerMsg{visit: c.visit, event: evDecidedChoice})
}

func (c *CustomerAgent) callWaiter() {
	c.state = CustomerOrderDecided
	c.waiter.ReadyToOrder(c)
}

func (c *CustomerAgent) order() {
	if c.choice != "" && c.state == CustomerOrderPlaced {
		c.unavailable[c.choice] = true
	}
	c.choice = c.pickDish()
	c.state = CustomerOrderPlaced
	c.Logger().Info().Str("item", c.choice).Msg("ordering")
	c.waiter.OrderChoice(c, c.choice)
}

func (c *CustomerAgent) eat() {
	c.state = CustomerEating
	c.After(float64(c.hunger)*c.timings.EatPerHunger, visitTimerMsg{visit: c.visit, event: evDoneEating})
}

func (c *CustomerAgent) finishEating() {
	c.state = CustomerPayingBill
	c.waiter.DoneEating(c)
}

func (c *CustomerAgent) pay() {
	c.moved(domain.PositionCashier, 0)
	paid := c.cash
	c.cash = 0
	c.Logger().Info().Float64("due", c.bill.AmountDue).Float64("paid", paid).Msg("paying")
	c.cashier.Payment(c, c.bill.ID, paid)
}

func (c *CustomerAgent) work() {
	c.state = CustomerWorkingOff
	c.Logger().Info().Float64("hours", c.hours).Msg("working off the bill")
	c.cashier.WillWorkFor(c, c.bill.ID, c.hours)
	c.After(c.hours*c.timings.WorkPerHour, visitTimerMsg{visit: c.visit, event: evDoneWorking})
}

func (c *CustomerAgent) leave() {
	c.Logger().Info().Msg("leaving the restaurant")
	c.waiter.Leaving(c)
	c.emit(domain.Event{Type: domain.EventCustomerLeft, Amount: domain.Round2(c.cash)})
	c.reset()
}

func (c *CustomerAgent) reset() {
	c.state = CustomerIdle
	c.waiter = nil
	c.moved(domain.PositionEntrance, 0)
	if c.rehungry {
		c.After(c.timings.Rehungry, rehungryMsg{visit: c.visit})
	}
}

func (c *CustomerAgent) startingCash() float64 {
	if c.fixed != nil {
		return *c.fixed
	}
	return float64(c.rng.IntN(30))
}

// pickDish chooses uniformly among dishes not reported unavailable this
// visit, or among the whole menu once everything has been refused.
func (c *CustomerAgent) pickDish() string {
	var options []string
	for _, name := range c.menu.Names() {
		if !c.unavailable[name] {
			options = append(options, name)
		}
	}
	if len(options) == 0 {
		clear(c.unavailable)
		options = c.menu.Names()
	}
	if len(options) == 0 {
		return ""
	}
	return options[c.rng.IntN(len(options))]
}
