package restaurant

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"overcooked-agents/internal/agent"
	"overcooked-agents/internal/domain"
)

type marketStock int

const (
	marketUnknown marketStock = iota
	marketStocked
	marketOut
)

type ticket struct {
	domain.Order
	waiter Waiter
}

type supplier struct {
	market Market
	items  map[string]marketStock
}

type (
	addMarketMsg  struct{ market Market }
	placeOrderMsg struct {
		waiter Waiter
		table  int
		item   string
	}
	foodDeliveryMsg struct {
		market   Market
		item     string
		quantity int
	}
	orderCookedMsg struct{ id uuid.UUID }
	restockRetryMsg struct{ item string }
)

// CookAgent cooks tickets from its pantry and restocks from the markets.
type CookAgent struct {
	*agent.Runtime
	emitter

	menu    domain.Menu
	timings Timings
	rng     *rand.Rand

	cashier    Cashier
	tickets    []*ticket
	pantry     map[string]int
	restocking map[string]bool
	markets    []*supplier
}

// NewCook starts with pantry, or with domain.DefaultPantry when pantry is nil.
func NewCook(name string, pantry map[string]int, opts ...Option) *CookAgent {
	s := newSettings(opts)
	if pantry == nil {
		pantry = domain.DefaultPantry(s.menu)
	}
	c := &CookAgent{
		Runtime:    s.runtime(name),
		emitter:    emitter{agent: name, sink: s.events},
		menu:       s.menu,
		timings:    s.timings,
		rng:        s.rng,
		pantry:     make(map[string]int, len(pantry)),
		restocking: make(map[string]bool),
	}
	for item, qty := range pantry {
		c.pantry[item] = qty
	}
	c.Bind(c.receive,
		agent.Rule{Name: "plate finished order", When: c.hasTicket(domain.OrderDone), Do: c.plateOrder},
		agent.Rule{Name: "cook pending order", When: c.hasTicket(domain.OrderPending), Do: c.cookOrder},
		agent.Rule{Name: "restock", When: c.needsRestock, Do: c.orderRestock},
	)
	return c
}

// SetCashier names the cashier markets should bill.
func (c *CookAgent) SetCashier(csh Cashier) { c.Post(setCashierMsg{csh}) }
func (c *CookAgent) AddMarket(m Market)     { c.Post(addMarketMsg{m}) }

func (c *CookAgent) PlaceOrder(w Waiter, table int, item string) {
	c.Post(placeOrderMsg{waiter: w, table: table, item: item})
}

func (c *CookAgent) FoodDelivery(m Market, item string, quantity int) {
	c.Post(foodDeliveryMsg{market: m, item: item, quantity: quantity})
}

func (c *CookAgent) receive(msg agent.Message) {
	log := c.Logger()
	switch m := msg.(type) {
	case setCashierMsg:
		c.cashier = m.cashier
	case addMarketMsg:
		c.markets = append(c.markets, &supplier{market: m.market, items: make(map[string]marketStock)})
	case placeOrderMsg:
		c.tickets = append(c.tickets, &ticket{
			Order:  domain.NewOrder(m.waiter.Name(), m.table, m.item),
			waiter: m.waiter,
		})
	case orderCookedMsg:
		t := c.ticketByID(m.id)
		if t == nil || t.Status != domain.OrderCooking {
			log.Debug().Stringer("order_id", m.id).Msg("stale cooking timer")
			return
		}
		t.Status = domain.OrderDone
	case foodDeliveryMsg:
		c.receiveDelivery(m)
	case restockRetryMsg:
		c.restocking[m.item] = false
	default:
		log.Warn().Type("message", msg).Msg("unexpected message")
	}
}

func (c *CookAgent) receiveDelivery(m foodDeliveryMsg) {
	log := c.Logger()
	sup := c.supplierFor(m.market)
	if sup == nil {
		log.Warn().Str("market", m.market.Name()).Msg("delivery from unknown market")
		return
	}
	if _, tracked := c.pantry[m.item]; !tracked {
		log.Warn().Str("market", m.market.Name()).Str("item", m.item).Msg("delivery of an item the kitchen does not stock")
		return
	}

	if m.quantity <= 0 {
		sup.items[m.item] = marketOut
		log.Info().Str("market", m.market.Name()).Str("item", m.item).Msg("market is out")
		c.emit(domain.Event{Type: domain.EventMarketOut, Subject: m.market.Name(), Item: m.item})
		if c.availableSupplier(m.item) == nil {
			c.After(c.timings.RestockRetry, restockRetryMsg{item: m.item})
			return
		}
		c.restocking[m.item] = false
		return
	}

	sup.items[m.item] = marketStocked
	c.pantry[m.item] += m.quantity
	c.restocking[m.item] = false
	log.Info().Str("market", m.market.Name()).Str("item", m.item).Int("quantity", m.quantity).Msg("restock delivered")
	c.emit(domain.Event{Type: domain.EventRestockDelivered, Subject: m.market.Name(), Item: m.item, Quantity: m.quantity})
}

func (c *CookAgent) hasTicket(status domain.OrderStatus) func() bool {
	return func() bool { return c.firstTicket(status) != nil }
}

func (c *CookAgent) plateOrder() {
	t := c.firstTicket(domain.OrderDone)
	c.removeTicket(t)
	c.emit(domain.Event{Type: domain.EventOrderReady, Table: t.Table, Item: t.Item, Subject: t.waiter.Name()})
	t.waiter.OrderReady(t.Table, t.Item)
}

func (c *CookAgent) cookOrder() {
	t := c.firstTicket(domain.OrderPending)
	item, known := c.menu.Lookup(t.Item)
	if !known || c.pantry[t.Item] <= 0 {
		c.removeTicket(t)
		c.Logger().Info().Str("item", t.Item).Int("table", t.Table).Msg("out of item")
		c.emit(domain.Event{Type: domain.EventOutOfItem, Table: t.Table, Item: t.Item, Subject: t.waiter.Name()})
		t.waiter.OutOfItem(t.Item, t.Table)
		return
	}
	c.pantry[t.Item]--
	t.Status = domain.OrderCooking
	c.emit(domain.Event{Type: domain.EventOrderCooking, Table: t.Table, Item: t.Item, Quantity: c.pantry[t.Item]})
	c.After(item.CookTime, orderCookedMsg{id: t.ID})
}

func (c *CookAgent) needsRestock() bool {
	_, ok := c.shortItem()
	return ok
}

func (c *CookAgent) orderRestock() {
	item, _ := c.shortItem()
	sup := c.availableSupplier(item)
	if sup == nil {
		sup = c.markets[c.rng.IntN(len(c.markets))]
	}
	qty := 1 + c.rng.IntN(5)
	c.restocking[item] = true
	c.Logger().Info().Str("item", item).Int("quantity", qty).Str("market", sup.market.Name()).Msg("ordering restock")
	c.emit(domain.Event{Type: domain.EventRestockRequested, Subject: sup.market.Name(), Item: item, Quantity: qty})
	sup.market.OrderFood(item, qty, c.cashier, c)
}

// shortItem is the first item, in menu order, that ran out with no restock
// in flight.
func (c *CookAgent) shortItem() (string, bool) {
	if len(c.markets) == 0 {
		return "", false
	}
	for _, name := range c.menu.Names() {
		qty, tracked := c.pantry[name]
		if tracked && qty == 0 && !c.restocking[name] {
			return name, true
		}
	}
	return "", false
}

func (c *CookAgent) availableSupplier(item string) *supplier {
	for _, sup := range c.markets {
		if sup.items[item] != marketOut {
			return sup
		}
	}
	return nil
}

func (c *CookAgent) supplierFor(m Market) *supplier {
	for _, sup := range c.markets {
		if sup.market == m {
			return sup
		}
	}
	return nil
}

func (c *CookAgent) firstTicket(status domain.OrderStatus) *ticket {
	for _, t := range c.tickets {
		if t.Status == status {
			return t
		}
	}
	return nil
}

func (c *CookAgent) ticketByID(id uuid.UUID) *ticket {
	for _, t := range c.tickets {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (c *CookAgent) removeTicket(t *ticket) {
	for i, cur := range c.tickets {
		if cur == t {
			c.tickets = append(c.tickets[:i], c.tickets[i+1:]...)
			return
		}
	}
}
