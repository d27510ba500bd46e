package restaurant_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"overcooked-agents/internal/agent"
	"overcooked-agents/internal/domain"
	"overcooked-agents/internal/restaurant"
)

func TestCashier_CustomerPayment(t *testing.T) {
	tests := []struct {
		name         string
		cash         float64
		expectChange float64
		expectHours  float64
	}{
		{name: "pays in full", cash: 20, expectChange: 4.01},
		{name: "exact amount", cash: 15.99, expectChange: 0},
		{name: "short pays and works", cash: 5, expectHours: 1.37},
		{name: "no money", cash: 0, expectHours: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := agent.NewManualClock()
			events := &eventLog{}
			cashier := restaurant.NewCashier("cashier", testOptions(clock, events)...)
			w := newWaiterMock(t, "w1")
			c := newCustomerMock(t, "c1")

			var bill domain.Bill
			w.On("HereIsBill", c, mock.AnythingOfType("domain.Bill")).
				Run(func(args mock.Arguments) { bill = args.Get(1).(domain.Bill) }).
				Once()
			cashier.NeedBill(w, c, "Steak")
			cashier.Tick()

			require.Equal(t, domain.BillSent, bill.Status)
			assert.Equal(t, 15.99, bill.AmountDue)
			assert.Equal(t, "c1", bill.Party)

			if tt.expectHours == 0 {
				c.On("Receipt", tt.expectChange).Once()
			} else {
				c.On("MustWork", tt.expectHours).Once()
			}
			cashier.Payment(c, bill.ID, tt.cash)
			cashier.Tick()

			settled := events.ofType(domain.EventBillSettled)
			if tt.expectHours == 0 {
				require.Len(t, settled, 1)
				assert.Equal(t, domain.BillReceiptIssued, settled[0].Bill.Status)
				assert.Equal(t, 15.99, settled[0].Amount)
				return
			}

			assert.Empty(t, settled)
			cashier.WillWorkFor(c, bill.ID, tt.expectHours)
			cashier.Tick()

			settled = events.ofType(domain.EventBillSettled)
			require.Len(t, settled, 1)
			assert.Equal(t, domain.BillPaidByWork, settled[0].Bill.Status)
			assert.Equal(t, tt.expectHours, settled[0].Bill.HoursOwed)
			assert.Equal(t, tt.cash, settled[0].Amount)
		})
	}
}

func TestCashier_RejectsBadCustomerMessages(t *testing.T) {
	clock := agent.NewManualClock()
	events := &eventLog{}
	cashier := restaurant.NewCashier("cashier", testOptions(clock, events)...)
	w := newWaiterMock(t, "w1")
	c := newCustomerMock(t, "c1")
	other := newCustomerMock(t, "c2")

	var bill domain.Bill
	w.On("HereIsBill", c, mock.AnythingOfType("domain.Bill")).
		Run(func(args mock.Arguments) { bill = args.Get(1).(domain.Bill) }).
		Once()
	cashier.NeedBill(w, c, "Lobster")
	cashier.NeedBill(w, c, "Salad")
	cashier.Tick()

	// Wrong bill, wrong customer, and a work offer on a bill that was not short.
	cashier.Payment(c, uuid.New(), 10)
	cashier.Payment(other, bill.ID, 10)
	cashier.WillWorkFor(c, bill.ID, 1)
	assert.Equal(t, 0, cashier.Tick())

	c.On("Receipt", 4.01).Once()
	cashier.Payment(c, bill.ID, 10)
	cashier.Tick()

	// Paying twice does nothing.
	cashier.Payment(c, bill.ID, 10)
	assert.Equal(t, 0, cashier.Tick())
	assert.Len(t, events.ofType(domain.EventBillIssued), 1)
}

func TestCashier_PaysMarketExactAmountOnce(t *testing.T) {
	clock := agent.NewManualClock()
	events := &eventLog{}
	cashier := restaurant.NewCashier("cashier", testOptions(clock, events)...)
	m := newMarketMock(t, "market1")
	orderID := uuid.New()

	m.On("PayBill", cashier, orderID, "Steak", 24.0).Once()
	cashier.MarketBill(m, orderID, "Steak", 3, 24)
	cashier.Tick()

	cashier.MarketBill(m, orderID, "Steak", 3, 24)
	assert.Equal(t, 0, cashier.Tick())

	settled := events.ofType(domain.EventBillSettled)
	require.Len(t, settled, 1)
	assert.Equal(t, domain.BillPaid, settled[0].Bill.Status)
	assert.Equal(t, orderID, settled[0].Bill.ID)
	assert.Equal(t, domain.PayerMarket, settled[0].Bill.Payer)
	assert.Equal(t, 24.0, settled[0].Amount)
}
