package restaurant

import (
	"github.com/google/uuid"

	"overcooked-agents/internal/agent"
	"overcooked-agents/internal/domain"
)

type customerCheck struct {
	bill     *domain.Bill
	waiter   Waiter
	customer Customer
}

type marketInvoice struct {
	bill   *domain.Bill
	market Market
}

type (
	needBillMsg struct {
		waiter   Waiter
		customer Customer
		item     string
	}
	paymentMsg struct {
		customer Customer
		billID   uuid.UUID
		cash     float64
	}
	willWorkMsg struct {
		customer Customer
		billID   uuid.UUID
		hours    float64
	}
	marketBillMsg struct {
		market   Market
		orderID  uuid.UUID
		item     string
		quantity int
		amount   float64
	}
)

// CashierAgent bills customers and pays the markets.
type CashierAgent struct {
	*agent.Runtime
	emitter

	menu     domain.Menu
	checks   []*customerCheck
	invoices []*marketInvoice
}

func NewCashier(name string, opts ...Option) *CashierAgent {
	s := newSettings(opts)
	c := &CashierAgent{
		Runtime: s.runtime(name),
		emitter: emitter{agent: name, sink: s.events},
		menu:    s.menu,
	}
	c.Bind(c.receive,
		agent.Rule{Name: "send bill to waiter", When: c.hasCheck(domain.BillUnpaid), Do: c.sendBill},
		agent.Rule{Name: "issue receipt", When: c.hasCheck(domain.BillPaidInFull), Do: c.issueReceipt},
		agent.Rule{Name: "assign work", When: c.hasCheck(domain.BillUnderPaid), Do: c.assignWork},
		agent.Rule{Name: "pay market", When: c.hasInvoice, Do: c.payMarket},
	)
	return c
}

func (c *CashierAgent) NeedBill(w Waiter, cust Customer, item string) {
	c.Post(needBillMsg{waiter: w, customer: cust, item: item})
}

func (c *CashierAgent) Payment(cust Customer, billID uuid.UUID, cash float64) {
	c.Post(paymentMsg{customer: cust, billID: billID, cash: cash})
}

func (c *CashierAgent) WillWorkFor(cust Customer, billID uuid.UUID, hours float64) {
	c.Post(willWorkMsg{customer: cust, billID: billID, hours: hours})
}

func (c *CashierAgent) MarketBill(m Market, orderID uuid.UUID, item string, quantity int, amount float64) {
	c.Post(marketBillMsg{market: m, orderID: orderID, item: item, quantity: quantity, amount: amount})
}

func (c *CashierAgent) receive(msg agent.Message) {
	log := c.Logger()
	switch m := msg.(type) {
	case needBillMsg:
		price, ok := c.menu.Price(m.item)
		if !ok {
			log.Warn().Str("customer", m.customer.Name()).Str("item", m.item).Msg("bill requested for an item not on the menu")
			return
		}
		c.checks = append(c.checks, &customerCheck{
			bill:     domain.NewCustomerBill(m.customer.Name(), m.item, price),
			waiter:   m.waiter,
			customer: m.customer,
		})
	case paymentMsg:
		chk := c.check(m.customer, m.billID)
		if chk == nil {
			log.Warn().Str("customer", m.customer.Name()).Stringer("bill_id", m.billID).Msg("payment for unknown bill")
			return
		}
		if err := chk.bill.ApplyPayment(m.cash); err != nil {
			log.Warn().Err(err).Str("customer", m.customer.Name()).Msg("payment rejected")
		}
	case willWorkMsg:
		chk := c.check(m.customer, m.billID)
		if chk == nil {
			log.Warn().Str("customer", m.customer.Name()).Stringer("bill_id", m.billID).Msg("work offer for unknown bill")
			return
		}
		if err := chk.bill.Advance(domain.BillPaidByWork); err != nil {
			log.Warn().Err(err).Str("customer", m.customer.Name()).Msg("work offer rejected")
			return
		}
		chk.bill.HoursOwed = m.hours
		c.emit(domain.Event{
			Type:    domain.EventBillSettled,
			Subject: m.customer.Name(),
			Item:    chk.bill.Item,
			Amount:  domain.Round2(chk.bill.AmountReceived),
			Bill:    c.snapshot(chk.bill),
		})
	case marketBillMsg:
		if c.invoice(m.orderID) != nil {
			log.Warn().Str("market", m.market.Name()).Stringer("order_id", m.orderID).Msg("duplicate market bill")
			return
		}
		c.invoices = append(c.invoices, &marketInvoice{
			bill:   domain.NewMarketBill(m.orderID, m.market.Name(), m.item, m.quantity, m.amount),
			market: m.market,
		})
	default:
		log.Warn().Type("message", msg).Msg("unexpected message")
	}
}

func (c *CashierAgent) hasCheck(status domain.BillStatus) func() bool {
	return func() bool { return c.firstCheck(status) != nil }
}

func (c *CashierAgent) sendBill() {
	chk := c.firstCheck(domain.BillUnpaid)
	c.advance(chk.bill, domain.BillSent)
	c.emit(domain.Event{Type: domain.EventBillIssued, Subject: chk.customer.Name(), Item: chk.bill.Item, Amount: domain.Round2(chk.bill.AmountDue), Bill: c.snapshot(chk.bill)})
	chk.waiter.HereIsBill(chk.customer, *chk.bill)
}

func (c *CashierAgent) issueReceipt() {
	chk := c.firstCheck(domain.BillPaidInFull)
	c.advance(chk.bill, domain.BillReceiptIssued)
	change := domain.Round2(chk.bill.Change)
	c.Logger().Info().Str("customer", chk.customer.Name()).Float64("change", change).Msg("paid in full")
	c.emit(domain.Event{Type: domain.EventBillSettled, Subject: chk.customer.Name(), Item: chk.bill.Item, Amount: domain.Round2(chk.bill.AmountDue), Bill: c.snapshot(chk.bill)})
	chk.customer.Receipt(change)
}

func (c *CashierAgent) assignWork() {
	chk := c.firstCheck(domain.BillUnderPaid)
	chk.bill.HoursOwed = domain.HoursOwed(chk.bill.AmountDue, chk.bill.AmountReceived)
	c.advance(chk.bill, domain.BillReceiptIssued)
	hours := domain.Round2(chk.bill.HoursOwed)
	c.Logger().Info().Str("customer", chk.customer.Name()).Float64("hours", hours).Msg("not enough money, customer must work")
	chk.customer.MustWork(hours)
}

func (c *CashierAgent) hasInvoice() bool {
	return c.unpaidInvoice() != nil
}

func (c *CashierAgent) payMarket() {
	inv := c.unpaidInvoice()
	c.advance(inv.bill, domain.BillPaid)
	inv.bill.AmountReceived = inv.bill.AmountDue
	c.Logger().Info().Str("market", inv.market.Name()).Str("item", inv.bill.Item).Float64("amount", inv.bill.AmountDue).Msg("paying market")
	c.emit(domain.Event{Type: domain.EventBillSettled, Subject: inv.market.Name(), Item: inv.bill.Item, Quantity: inv.bill.Quantity, Amount: inv.bill.AmountDue, Bill: c.snapshot(inv.bill)})
	inv.market.PayBill(c, inv.bill.ID, inv.bill.Item, inv.bill.AmountDue)
}

// advance moves a bill the cashier owns. Rules only pick bills whose status
// allows the move.
func (c *CashierAgent) advance(b *domain.Bill, status domain.BillStatus) {
	if err := b.Advance(status); err != nil {
		c.Logger().Error().Err(err).Msg("bill transition failed")
	}
}

func (c *CashierAgent) snapshot(b *domain.Bill) *domain.Bill {
	cp := *b
	return &cp
}

func (c *CashierAgent) firstCheck(status domain.BillStatus) *customerCheck {
	for _, chk := range c.checks {
		if chk.bill.Status == status {
			return chk
		}
	}
	return nil
}

func (c *CashierAgent) check(cust Customer, id uuid.UUID) *customerCheck {
	for _, chk := range c.checks {
		if chk.customer == cust && chk.bill.ID == id {
			return chk
		}
	}
	return nil
}

func (c *CashierAgent) invoice(id uuid.UUID) *marketInvoice {
	for _, inv := range c.invoices {
		if inv.bill.ID == id {
			return inv
		}
	}
	return nil
}

func (c *CashierAgent) unpaidInvoice() *marketInvoice {
	for _, inv := range c.invoices {
		if inv.bill.Status == domain.BillSent {
			return inv
		}
	}
	return nil
}
