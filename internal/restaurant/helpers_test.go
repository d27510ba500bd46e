package restaurant_test

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"overcooked-agents/internal/agent"
	"overcooked-agents/internal/domain"
	"overcooked-agents/internal/mocks"
	"overcooked-agents/internal/restaurant"
)

type eventLog struct {
	mu     sync.Mutex
	events []domain.Event
}

func (l *eventLog) Emit(ev domain.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
}

func (l *eventLog) ofType(t domain.EventType) []domain.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []domain.Event
	for _, ev := range l.events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

func testOptions(clock *agent.ManualClock, events *eventLog, extra ...restaurant.Option) []restaurant.Option {
	opts := []restaurant.Option{
		restaurant.WithClock(clock),
		restaurant.WithLogger(zerolog.Nop()),
		restaurant.WithEvents(events),
		restaurant.WithSeed(7),
	}
	return append(opts, extra...)
}

func newHostMock(t *testing.T) *mocks.Host {
	h := mocks.NewHost(t)
	h.On("Name").Return("host").Maybe()
	return h
}

func newWaiterMock(t *testing.T, name string) *mocks.Waiter {
	w := mocks.NewWaiter(t)
	w.On("Name").Return(name).Maybe()
	return w
}

func newCookMock(t *testing.T) *mocks.Cook {
	c := mocks.NewCook(t)
	c.On("Name").Return("cook").Maybe()
	return c
}

func newCashierMock(t *testing.T) *mocks.Cashier {
	c := mocks.NewCashier(t)
	c.On("Name").Return("cashier").Maybe()
	return c
}

func newMarketMock(t *testing.T, name string) *mocks.Market {
	m := mocks.NewMarket(t)
	m.On("Name").Return(name).Maybe()
	return m
}

func newCustomerMock(t *testing.T, name string) *mocks.Customer {
	c := mocks.NewCustomer(t)
	c.On("Name").Return(name).Maybe()
	return c
}

func steakOnly() domain.Menu {
	return domain.NewMenu(domain.MenuItem{Name: "Steak", Price: 15.99, CookTime: 5})
}

type tickable interface {
	Tick() int
	Pending() int
}

// settle ticks every agent until no mailbox has work and no rule fires, then
// fires the pending timers and repeats until the clock is empty too.
func settle(t *testing.T, clock *agent.ManualClock, agents ...tickable) {
	t.Helper()
	for round := 0; round < 10000; round++ {
		busy := false
		for _, a := range agents {
			if a.Pending() > 0 {
				busy = true
			}
			if a.Tick() > 0 {
				busy = true
			}
		}
		if busy {
			continue
		}
		if clock.FireAll() == 0 {
			return
		}
	}
	t.Fatal("agents did not settle")
}
