// Package restaurant holds the agents of the simulated restaurant. Every
// exported method on an agent posts a message to that agent's mailbox and
// returns immediately; the effect happens later on the agent's own goroutine.
package restaurant

import (
	"github.com/google/uuid"

	"overcooked-agents/internal/domain"
)

type Host interface {
	Name() string
	AddWaiter(w Waiter)
	AddTable()
	RequestTable(c Customer)
	WillWait(c Customer)
	LeaveWaitList(c Customer)
	TableFree(table int)
	RequestBreak(w Waiter)
	GoingOnBreak(w Waiter)
	GoingOffBreak(w Waiter)
}

type Waiter interface {
	Name() string
	SeatCustomer(c Customer, table int)
	ReadyToOrder(c Customer)
	OrderChoice(c Customer, item string)
	OrderReady(table int, item string)
	OutOfItem(item string, table int)
	DoneEating(c Customer)
	Leaving(c Customer)
	HereIsBill(c Customer, bill domain.Bill)
	BreakDenied()
	BreakGranted()
	SetBreak(on bool)
}

type Cook interface {
	Name() string
	AddMarket(m Market)
	PlaceOrder(w Waiter, table int, item string)
	FoodDelivery(m Market, item string, quantity int)
}

type Cashier interface {
	Name() string
	NeedBill(w Waiter, c Customer, item string)
	Payment(c Customer, billID uuid.UUID, cash float64)
	WillWorkFor(c Customer, billID uuid.UUID, hours float64)
	MarketBill(m Market, orderID uuid.UUID, item string, quantity int, amount float64)
}

type Market interface {
	Name() string
	OrderFood(item string, quantity int, cashier Cashier, cook Cook)
	PayBill(cashier Cashier, orderID uuid.UUID, item string, amount float64)
}

type Customer interface {
	Name() string
	BecomeHungry()
	ThereIsWait()
	FollowMe(w Waiter, menu domain.Menu)
	WhatWouldYouLike()
	HereIsFood(item string)
	HereIsBill(bill domain.Bill)
	Receipt(change float64)
	MustWork(hours float64)
}

var (
	_ Host     = (*HostAgent)(nil)
	_ Waiter   = (*WaiterAgent)(nil)
	_ Cook     = (*CookAgent)(nil)
	_ Cashier  = (*CashierAgent)(nil)
	_ Market   = (*MarketAgent)(nil)
	_ Customer = (*CustomerAgent)(nil)
)
