package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"overcooked-agents/internal/domain"
	"overcooked-agents/internal/restaurant"
)

var (
	ErrUnknownCustomer = errors.New("unknown customer")
	ErrUnknownWaiter   = errors.New("unknown waiter")
)

// Layout is the shape of the restaurant built at startup.
type Layout struct {
	Tables    int
	Waiters   int
	Customers int
	Markets   int
	// Seed makes every agent's random choices reproducible when non-zero.
	Seed uint64
}

type Roster struct {
	Host      string   `json:"host"`
	Cook      string   `json:"cook"`
	Cashier   string   `json:"cashier"`
	Waiters   []string `json:"waiters"`
	Customers []string `json:"customers"`
	Markets   []string `json:"markets"`
}

type runner interface {
	Name() string
	Run(ctx context.Context) error
}

// Simulation builds the agents, wires them together and runs each on its own
// goroutine.
type Simulation struct {
	host      *restaurant.HostAgent
	cook      *restaurant.CookAgent
	cashier   *restaurant.CashierAgent
	waiters   map[string]*restaurant.WaiterAgent
	customers map[string]*restaurant.CustomerAgent
	markets   []*restaurant.MarketAgent
	roster    Roster

	wg sync.WaitGroup
}

func NewSimulation(layout Layout, sink domain.EventSink, opts ...restaurant.Option) *Simulation {
	var seed uint64
	optsFor := func() []restaurant.Option {
		o := append([]restaurant.Option{restaurant.WithEvents(sink)}, opts...)
		if layout.Seed != 0 {
			seed++
			o = append(o, restaurant.WithSeed(layout.Seed+seed))
		}
		return o
	}

	s := &Simulation{
		host:      restaurant.NewHost("host", layout.Tables, optsFor()...),
		cook:      restaurant.NewCook("cook", nil, optsFor()...),
		cashier:   restaurant.NewCashier("cashier", optsFor()...),
		waiters:   make(map[string]*restaurant.WaiterAgent),
		customers: make(map[string]*restaurant.CustomerAgent),
	}
	s.roster = Roster{Host: s.host.Name(), Cook: s.cook.Name(), Cashier: s.cashier.Name()}

	s.cook.SetCashier(s.cashier)
	for i := 1; i <= layout.Markets; i++ {
		m := restaurant.NewMarket(fmt.Sprintf("market%d", i), nil, optsFor()...)
		s.markets = append(s.markets, m)
		s.roster.Markets = append(s.roster.Markets, m.Name())
		s.cook.AddMarket(m)
	}
	for i := 1; i <= layout.Waiters; i++ {
		w := restaurant.NewWaiter(fmt.Sprintf("waiter%d", i), optsFor()...)
		w.SetHost(s.host)
		w.SetCook(s.cook)
		w.SetCashier(s.cashier)
		s.host.AddWaiter(w)
		s.waiters[w.Name()] = w
		s.roster.Waiters = append(s.roster.Waiters, w.Name())
	}
	for i := 1; i <= layout.Customers; i++ {
		c := restaurant.NewCustomer(fmt.Sprintf("customer%d", i), optsFor()...)
		c.SetHost(s.host)
		c.SetCashier(s.cashier)
		s.customers[c.Name()] = c
		s.roster.Customers = append(s.roster.Customers, c.Name())
	}
	sort.Strings(s.roster.Waiters)
	sort.Strings(s.roster.Customers)
	return s
}

// Start launches every agent. Agents stop when ctx is cancelled; Wait blocks
// until they all have.
func (s *Simulation) Start(ctx context.Context) {
	for _, r := range s.runners() {
		s.wg.Add(1)
		go func(r runner) {
			defer s.wg.Done()
			if err := r.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Str("agent", r.Name()).Msg("agent exited")
			}
		}(r)
	}
	log.Info().
		Int("waiters", len(s.waiters)).
		Int("customers", len(s.customers)).
		Int("markets", len(s.markets)).
		Msg("simulation started")
}

func (s *Simulation) Wait() {
	s.wg.Wait()
}

func (s *Simulation) BecomeHungry(name string) error {
	c, ok := s.customers[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCustomer, name)
	}
	c.BecomeHungry()
	return nil
}

func (s *Simulation) SetWaiterBreak(name string, on bool) error {
	w, ok := s.waiters[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownWaiter, name)
	}
	w.SetBreak(on)
	return nil
}

func (s *Simulation) Roster() Roster {
	return s.roster
}

func (s *Simulation) runners() []runner {
	rs := []runner{s.host, s.cook, s.cashier}
	for _, m := range s.markets {
		rs = append(rs, m)
	}
	for _, name := range s.roster.Waiters {
		rs = append(rs, s.waiters[name])
	}
	for _, name := range s.roster.Customers {
		rs = append(rs, s.customers[name])
	}
	return rs
}
