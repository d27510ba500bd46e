// Package agent is the execution substrate shared by every restaurant agent:
// a mailbox drained by a single goroutine and an ordered table of
// condition-action rules scanned until none applies.
package agent

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const DefaultMaxFirings = 10000

// Rule fires Do when When holds. Rules are scanned in slice order, so the
// position of a rule is its priority.
type Rule struct {
	Name string
	When func() bool
	Do   func()
}

type Option func(*Runtime)

func WithClock(c Clock) Option {
	return func(r *Runtime) { r.clock = c }
}

// WithTimeUnit sets the wall-clock length of one simulation time unit.
func WithTimeUnit(d time.Duration) Option {
	return func(r *Runtime) { r.unit = d }
}

func WithLogger(l zerolog.Logger) Option {
	return func(r *Runtime) { r.log = l }
}

func WithMaxFirings(n int) Option {
	return func(r *Runtime) { r.maxFirings = n }
}

// Runtime owns an agent's mailbox and scheduler loop. The receive callback
// and rules close over the owning agent's private state; only the goroutine
// executing Run (or a test calling Tick) ever invokes them.
type Runtime struct {
	name       string
	mailbox    *Mailbox
	clock      Clock
	unit       time.Duration
	log        zerolog.Logger
	maxFirings int

	receive func(Message)
	rules   []Rule
}

func New(name string, opts ...Option) *Runtime {
	r := &Runtime{
		name:       name,
		mailbox:    NewMailbox(),
		clock:      RealClock{},
		unit:       time.Second,
		maxFirings: DefaultMaxFirings,
	}
	r.log = log.Logger
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With().Str("agent", name).Logger()
	return r
}

// Bind installs the message handler and the rule table. It must be called
// once, before Run or Tick.
func (r *Runtime) Bind(receive func(Message), rules ...Rule) {
	r.receive = receive
	r.rules = rules
}

func (r *Runtime) Name() string {
	return r.name
}

func (r *Runtime) Logger() *zerolog.Logger {
	return &r.log
}

// Post enqueues msg for the agent. Safe for concurrent use.
func (r *Runtime) Post(msg Message) {
	if !r.mailbox.Post(msg) {
		r.log.Debug().Type("message", msg).Msg("mailbox closed, message dropped")
	}
}

// After posts msg to this agent once units simulation time units have passed.
func (r *Runtime) After(units float64, msg Message) {
	d := time.Duration(units * float64(r.unit))
	r.clock.AfterFunc(d, func() { r.Post(msg) })
}

// Pending reports how many messages wait in the mailbox.
func (r *Runtime) Pending() int {
	return r.mailbox.Len()
}

// Run processes the mailbox until ctx is cancelled.
func (r *Runtime) Run(ctx context.Context) error {
	r.log.Info().Msg("agent started")
	defer r.mailbox.Close()

	r.Tick()
	for {
		select {
		case <-ctx.Done():
			r.log.Info().Msg("agent stopped")
			return ctx.Err()
		case <-r.mailbox.Ready():
			r.Tick()
		}
	}
}

// Tick drains the mailbox, applies every message, then fires rules until none
// matches. It returns the number of rule firings.
func (r *Runtime) Tick() int {
	for _, msg := range r.mailbox.Drain() {
		r.receive(msg)
	}
	return r.schedule()
}

func (r *Runtime) schedule() int {
	fired := 0
	for {
		rule, ok := r.next()
		if !ok {
			return fired
		}
		if fired >= r.maxFirings {
			r.log.Error().Str("rule", rule.Name).Int("firings", fired).Msg("rule firing limit reached, ending turn")
			return fired
		}
		r.log.Trace().Str("rule", rule.Name).Msg("rule fired")
		rule.Do()
		fired++
	}
}

func (r *Runtime) next() (Rule, bool) {
	for _, rule := range r.rules {
		if rule.When() {
			return rule, true
		}
	}
	return Rule{}, false
}
