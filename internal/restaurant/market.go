package restaurant

import (
	"github.com/google/uuid"

	"overcooked-agents/internal/agent"
	"overcooked-agents/internal/domain"
)

type supplyOrder struct {
	domain.MarketOrder
	cook    Cook
	cashier Cashier
}

type (
	orderFoodMsg struct {
		item     string
		quantity int
		cashier  Cashier
		cook     Cook
	}
	payBillMsg struct {
		cashier Cashier
		orderID uuid.UUID
		item    string
		amount  float64
	}
)

// MarketAgent sells whole orders or nothing.
type MarketAgent struct {
	*agent.Runtime
	emitter

	catalog map[string]domain.Supply
	orders  []*supplyOrder
}

// NewMarket copies catalog; nil means domain.DefaultCatalog.
func NewMarket(name string, catalog map[string]domain.Supply, opts ...Option) *MarketAgent {
	s := newSettings(opts)
	if catalog == nil {
		catalog = domain.DefaultCatalog()
	}
	m := &MarketAgent{
		Runtime: s.runtime(name),
		emitter: emitter{agent: name, sink: s.events},
		catalog: make(map[string]domain.Supply, len(catalog)),
	}
	for item, sup := range catalog {
		m.catalog[item] = sup
	}
	m.Bind(m.receive,
		agent.Rule{Name: "answer supply request", When: m.hasStatus(domain.MarketOrderReceived, false), Do: m.answerRequest},
		agent.Rule{Name: "deliver paid order", When: m.hasStatus(domain.MarketOrderBilled, true), Do: m.deliver},
	)
	return m
}

func (m *MarketAgent) OrderFood(item string, quantity int, cashier Cashier, cook Cook) {
	m.Post(orderFoodMsg{item: item, quantity: quantity, cashier: cashier, cook: cook})
}

func (m *MarketAgent) PayBill(cashier Cashier, orderID uuid.UUID, item string, amount float64) {
	m.Post(payBillMsg{cashier: cashier, orderID: orderID, item: item, amount: amount})
}

func (m *MarketAgent) receive(msg agent.Message) {
	log := m.Logger()
	switch msg := msg.(type) {
	case orderFoodMsg:
		if msg.cook == nil {
			log.Warn().Str("item", msg.item).Msg("supply request without a cook to deliver to")
			return
		}
		cashier := ""
		if msg.cashier != nil {
			cashier = msg.cashier.Name()
		}
		price := m.catalog[msg.item].Price
		m.orders = append(m.orders, &supplyOrder{
			MarketOrder: domain.NewMarketOrder(msg.item, msg.quantity, price, msg.cook.Name(), cashier),
			cook:        msg.cook,
			cashier:     msg.cashier,
		})
	case payBillMsg:
		o := m.order(msg.orderID)
		switch {
		case o == nil:
			log.Warn().Stringer("order_id", msg.orderID).Msg("payment for unknown order")
		case o.Status != domain.MarketOrderBilled || o.Paid:
			log.Warn().Stringer("order_id", msg.orderID).Str("status", string(o.Status)).Msg("payment for an order that is not awaiting payment")
		case o.cashier != msg.cashier || o.Item != msg.item || domain.Round2(o.GrandTotal) != domain.Round2(msg.amount):
			log.Warn().
				Stringer("order_id", msg.orderID).
				Str("item", msg.item).
				Float64("amount", msg.amount).
				Float64("expected", domain.Round2(o.GrandTotal)).
				Msg("payment does not match bill")
		default:
			o.Paid = true
		}
	default:
		log.Warn().Type("message", msg).Msg("unexpected message")
	}
}

func (m *MarketAgent) hasStatus(status domain.MarketOrderStatus, paid bool) func() bool {
	return func() bool { return m.first(status, paid) != nil }
}

// answerRequest decides and debits in the same step, so a billed order
// always had the stock reserved.
func (m *MarketAgent) answerRequest() {
	o := m.first(domain.MarketOrderReceived, false)
	sup, known := m.catalog[o.Item]
	if !known || o.cashier == nil || o.Quantity <= 0 || sup.Stock < o.Quantity {
		o.Status = domain.MarketOrderUnfulfilled
		m.Logger().Info().Str("item", o.Item).Int("requested", o.Quantity).Int("stock", sup.Stock).Msg("cannot fill order")
		m.emit(domain.Event{Type: domain.EventMarketOrderRejected, Subject: o.cook.Name(), Item: o.Item, Quantity: o.Quantity})
		o.cook.FoodDelivery(m, o.Item, 0)
		m.drop(o)
		return
	}

	sup.Stock -= o.Quantity
	m.catalog[o.Item] = sup
	o.Status = domain.MarketOrderBilled
	total := domain.Round2(o.GrandTotal)
	m.emit(domain.Event{Type: domain.EventMarketOrderBilled, Subject: o.cashier.Name(), Item: o.Item, Quantity: o.Quantity, Amount: total})
	o.cashier.MarketBill(m, o.ID, o.Item, o.Quantity, total)
}

func (m *MarketAgent) deliver() {
	o := m.first(domain.MarketOrderBilled, true)
	o.Status = domain.MarketOrderCompleted
	m.Logger().Info().Str("item", o.Item).Int("quantity", o.Quantity).Str("cook", o.cook.Name()).Msg("delivering")
	m.emit(domain.Event{Type: domain.EventMarketOrderDone, Subject: o.cook.Name(), Item: o.Item, Quantity: o.Quantity, Amount: domain.Round2(o.GrandTotal)})
	o.cook.FoodDelivery(m, o.Item, o.Quantity)
	m.drop(o)
}

// Stock reports the market's remaining stock of item. Only safe to call from
// the market's own goroutine or while it is not running.
func (m *MarketAgent) Stock(item string) int {
	return m.catalog[item].Stock
}

func (m *MarketAgent) first(status domain.MarketOrderStatus, paid bool) *supplyOrder {
	for _, o := range m.orders {
		if o.Status == status && o.Paid == paid {
			return o
		}
	}
	return nil
}

func (m *MarketAgent) order(id uuid.UUID) *supplyOrder {
	for _, o := range m.orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

func (m *MarketAgent) drop(o *supplyOrder) {
	for i, cur := range m.orders {
		if cur == o {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return
		}
	}
}
