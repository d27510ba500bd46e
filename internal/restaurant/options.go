package restaurant

import (
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"overcooked-agents/internal/agent"
	"overcooked-agents/internal/domain"
)

// Timings are delays in simulation time units.
type Timings struct {
	MenuDecision float64
	EatPerHunger float64
	WorkPerHour  float64
	Bussing      float64
	BreakLength  float64
	Rehungry     float64
	RestockRetry float64
}

func DefaultTimings() Timings {
	return Timings{
		MenuDecision: 3,
		EatPerHunger: 1,
		WorkPerHour:  1,
		Bussing:      1.5,
		BreakLength:  10,
		Rehungry:     15,
		RestockRetry: 5,
	}
}

type settings struct {
	clock    agent.Clock
	unit     time.Duration
	log      zerolog.Logger
	events   domain.EventSink
	rng      *rand.Rand
	menu     domain.Menu
	timings  Timings
	firings  int
	cash     *float64
	hunger   int
	stay     func() bool
	rehungry bool
}

type Option func(*settings)

func WithClock(c agent.Clock) Option {
	return func(s *settings) { s.clock = c }
}

func WithTimeUnit(d time.Duration) Option {
	return func(s *settings) { s.unit = d }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *settings) { s.log = l }
}

func WithEvents(sink domain.EventSink) Option {
	return func(s *settings) { s.events = sink }
}

// WithSeed makes the agent's random choices reproducible.
func WithSeed(seed uint64) Option {
	return func(s *settings) { s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

func WithMenu(m domain.Menu) Option {
	return func(s *settings) { s.menu = m }
}

func WithTimings(t Timings) Option {
	return func(s *settings) { s.timings = t }
}

func WithMaxFirings(n int) Option {
	return func(s *settings) { s.firings = n }
}

// WithCash fixes the money a customer brings on every visit.
func WithCash(amount float64) Option {
	return func(s *settings) { s.cash = &amount }
}

func WithHunger(level int) Option {
	return func(s *settings) { s.hunger = level }
}

// WithStayPolicy replaces the coin flip a customer makes when told there is a
// wait. Returning true means the customer stays.
func WithStayPolicy(stay func() bool) Option {
	return func(s *settings) { s.stay = stay }
}

// WithRehungry makes customers come back some time after leaving.
func WithRehungry(on bool) Option {
	return func(s *settings) { s.rehungry = on }
}

func newSettings(opts []Option) settings {
	s := settings{
		clock:   agent.RealClock{},
		unit:    time.Second,
		log:     log.Logger,
		events:  domain.Discard,
		menu:    domain.DefaultMenu(),
		timings: DefaultTimings(),
		firings: agent.DefaultMaxFirings,
		hunger:  5,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.rng == nil {
		seed := uint64(time.Now().UnixNano())
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	return s
}

func (s settings) runtime(name string) *agent.Runtime {
	return agent.New(name,
		agent.WithClock(s.clock),
		agent.WithTimeUnit(s.unit),
		agent.WithLogger(s.log),
		agent.WithMaxFirings(s.firings),
	)
}

// emitter stamps events with the emitting agent and time.
type emitter struct {
	agent string
	sink  domain.EventSink
}

func (e emitter) emit(ev domain.Event) {
	ev.Agent = e.agent
	ev.At = time.Now()
	e.sink.Emit(ev)
}

func (e emitter) moved(position string, table int) {
	e.emit(domain.Event{Type: domain.EventAgentMoved, Position: position, Table: table})
}
