package restaurant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"overcooked-agents/internal/agent"
	"overcooked-agents/internal/domain"
	"overcooked-agents/internal/mocks"
	"overcooked-agents/internal/restaurant"
)

type waiterFixture struct {
	clock   *agent.ManualClock
	events  *eventLog
	waiter  *restaurant.WaiterAgent
	host    *mocks.Host
	cook    *mocks.Cook
	cashier *mocks.Cashier
}

func newWaiterFixture(t *testing.T) *waiterFixture {
	f := &waiterFixture{
		clock:   agent.NewManualClock(),
		events:  &eventLog{},
		host:    newHostMock(t),
		cook:    newCookMock(t),
		cashier: newCashierMock(t),
	}
	f.waiter = restaurant.NewWaiter("w1", testOptions(f.clock, f.events)...)
	f.waiter.SetHost(f.host)
	f.waiter.SetCook(f.cook)
	f.waiter.SetCashier(f.cashier)
	f.waiter.Tick()
	return f
}

func TestWaiter_ServesCustomerThroughToClearedTable(t *testing.T) {
	f := newWaiterFixture(t)
	w := f.waiter
	c := newCustomerMock(t, "c1")

	c.On("FollowMe", w, mock.Anything).Once()
	w.SeatCustomer(c, 3)
	w.Tick()

	c.On("WhatWouldYouLike").Once()
	w.ReadyToOrder(c)
	w.Tick()

	f.cook.On("PlaceOrder", w, 3, "Steak").Once()
	w.OrderChoice(c, "Steak")
	w.Tick()

	c.On("HereIsFood", "Steak").Once()
	w.OrderReady(3, "Steak")
	w.Tick()

	f.cashier.On("NeedBill", w, c, "Steak").Once()
	w.DoneEating(c)
	w.Tick()

	bill := *domain.NewCustomerBill("c1", "Steak", 15.99)
	bill.Status = domain.BillSent
	c.On("HereIsBill", bill).Once()
	w.HereIsBill(c, bill)
	w.Tick()

	w.Leaving(c)
	w.Tick()
	assert.Equal(t, 1, w.Serving())

	f.host.On("TableFree", 3).Once()
	f.clock.FireAll()
	w.Tick()
	assert.Equal(t, 0, w.Serving())

	assert.Len(t, f.events.ofType(domain.EventCustomerSeated), 1)
	assert.Len(t, f.events.ofType(domain.EventCustomerOrdered), 1)
	assert.Len(t, f.events.ofType(domain.EventFoodPlaced), 1)
}

func TestWaiter_BillArrivingEarlyIsHeldUntilCustomerIsDone(t *testing.T) {
	f := newWaiterFixture(t)
	w := f.waiter
	c := newCustomerMock(t, "c1")

	c.On("FollowMe", w, mock.Anything).Once()
	c.On("WhatWouldYouLike").Once()
	f.cook.On("PlaceOrder", w, 1, "Salad").Once()
	w.SeatCustomer(c, 1)
	w.Tick()
	w.ReadyToOrder(c)
	w.Tick()
	w.OrderChoice(c, "Salad")
	w.Tick()

	bill := *domain.NewCustomerBill("c1", "Salad", 5.99)
	w.HereIsBill(c, bill)
	assert.Equal(t, 0, w.Tick())

	c.On("HereIsBill", bill).Once()
	w.DoneEating(c)
	w.Tick()
}

func TestWaiter_OutOfItemAsksCustomerAgain(t *testing.T) {
	f := newWaiterFixture(t)
	w := f.waiter
	c := newCustomerMock(t, "c1")

	c.On("FollowMe", w, mock.Anything).Once()
	c.On("WhatWouldYouLike").Twice()
	f.cook.On("PlaceOrder", w, 2, "Steak").Once()
	f.cook.On("PlaceOrder", w, 2, "Pizza").Once()

	w.SeatCustomer(c, 2)
	w.Tick()
	w.ReadyToOrder(c)
	w.Tick()
	w.OrderChoice(c, "Steak")
	w.Tick()

	// A notice for a different table or item is ignored.
	w.OutOfItem("Steak", 9)
	w.OutOfItem("Salad", 2)
	assert.Equal(t, 0, w.Tick())

	w.OutOfItem("Steak", 2)
	w.Tick()
	w.OrderChoice(c, "Pizza")
	w.Tick()
}

func TestWaiter_IgnoresMessagesFromUnknownCustomers(t *testing.T) {
	f := newWaiterFixture(t)
	w := f.waiter
	c := newCustomerMock(t, "stranger")

	w.ReadyToOrder(c)
	w.OrderChoice(c, "Steak")
	w.DoneEating(c)
	w.Leaving(c)
	w.OrderReady(4, "Steak")
	w.HereIsBill(c, *domain.NewCustomerBill("stranger", "Steak", 15.99))
	assert.Equal(t, 0, w.Tick())
}

func TestWaiter_BreakGrantedPausesService(t *testing.T) {
	f := newWaiterFixture(t)
	w := f.waiter
	c := newCustomerMock(t, "c1")

	f.host.On("RequestBreak", w).Once()
	w.SetBreak(true)
	w.Tick()

	f.host.On("GoingOnBreak", w).Once()
	w.BreakGranted()
	w.Tick()
	assert.True(t, w.OnBreak())

	// Seated while on break: nothing happens until the break ends.
	w.SeatCustomer(c, 1)
	assert.Equal(t, 0, w.Tick())

	f.host.On("GoingOffBreak", w).Once()
	c.On("FollowMe", w, mock.Anything).Once()
	f.clock.FireAll()
	w.Tick()
	assert.False(t, w.OnBreak())

	assert.Len(t, f.events.ofType(domain.EventWaiterOnBreak), 1)
	assert.Len(t, f.events.ofType(domain.EventWaiterOffBreak), 1)
}

func TestWaiter_BreakDeniedThenGranted(t *testing.T) {
	f := newWaiterFixture(t)
	w := f.waiter

	f.host.On("RequestBreak", w).Once()
	w.SetBreak(true)
	w.Tick()

	w.BreakDenied()
	assert.Equal(t, 0, w.Tick())
	assert.False(t, w.OnBreak())

	f.host.On("GoingOnBreak", w).Once()
	w.BreakGranted()
	w.Tick()
	assert.True(t, w.OnBreak())
}

func TestWaiter_SwitchingBreakOffEndsItEarly(t *testing.T) {
	f := newWaiterFixture(t)
	w := f.waiter

	f.host.On("RequestBreak", w).Once()
	f.host.On("GoingOnBreak", w).Once()
	w.SetBreak(true)
	w.Tick()
	w.BreakGranted()
	w.Tick()

	f.host.On("GoingOffBreak", w).Once()
	w.SetBreak(false)
	w.Tick()
	assert.False(t, w.OnBreak())

	// The first break timer is stale now.
	f.clock.FireAll()
	assert.Equal(t, 0, w.Tick())
}

func TestWaiter_WithdrawnRequestReturnsLateGrant(t *testing.T) {
	f := newWaiterFixture(t)
	w := f.waiter

	f.host.On("RequestBreak", w).Once()
	w.SetBreak(true)
	w.Tick()

	f.host.On("GoingOffBreak", w).Twice()
	w.SetBreak(false)
	w.Tick()
	w.BreakGranted()
	w.Tick()
	assert.False(t, w.OnBreak())
}
