package domain_test

import (
	"testing"

	"overcooked-agents/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBill_ApplyPayment(t *testing.T) {
	tests := []struct {
		name           string
		due            float64
		cash           float64
		expectedStatus domain.BillStatus
		expectedChange float64
		expectedHours  float64
	}{
		{name: "exact", due: 8.99, cash: 8.99, expectedStatus: domain.BillPaidInFull},
		{name: "change", due: 15.99, cash: 20, expectedStatus: domain.BillPaidInFull, expectedChange: 4.01},
		{name: "short", due: 15.99, cash: 5, expectedStatus: domain.BillUnderPaid, expectedHours: 1.37},
		{name: "broke", due: 8, cash: 0, expectedStatus: domain.BillUnderPaid, expectedHours: 1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			bill := domain.NewCustomerBill("alice", "Pizza", testCase.due)
			require.NoError(t, bill.Advance(domain.BillSent))

			require.NoError(t, bill.ApplyPayment(testCase.cash))

			assert.Equal(t, testCase.expectedStatus, bill.Status)
			assert.Equal(t, testCase.expectedChange, domain.Round2(bill.Change))
			assert.Equal(t, testCase.expectedHours, domain.Round2(bill.HoursOwed))
		})
	}
}

func TestBill_PaymentBeforeSentRejected(t *testing.T) {
	bill := domain.NewCustomerBill("alice", "Pizza", 8.99)
	err := bill.ApplyPayment(10)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.BillUnpaid, bill.Status)
}

func TestBill_NeverRegresses(t *testing.T) {
	bill := domain.NewCustomerBill("alice", "Steak", 15.99)
	require.NoError(t, bill.Advance(domain.BillSent))
	require.NoError(t, bill.ApplyPayment(20))

	assert.ErrorIs(t, bill.Advance(domain.BillUnderPaid), domain.ErrInvalidTransition)
	assert.ErrorIs(t, bill.Advance(domain.BillSent), domain.ErrInvalidTransition)
	assert.ErrorIs(t, bill.ApplyPayment(1), domain.ErrInvalidTransition)
	assert.Equal(t, domain.BillPaidInFull, bill.Status)

	require.NoError(t, bill.Advance(domain.BillReceiptIssued))
	assert.ErrorIs(t, bill.Advance(domain.BillPaidByWork), domain.ErrInvalidTransition)
	assert.True(t, bill.Final())
}

func TestBill_WorkOffPath(t *testing.T) {
	bill := domain.NewCustomerBill("bob", "Chicken", 10.99)
	require.NoError(t, bill.Advance(domain.BillSent))
	require.NoError(t, bill.ApplyPayment(3))
	require.NoError(t, bill.Advance(domain.BillReceiptIssued))
	assert.False(t, bill.Final())

	require.NoError(t, bill.Advance(domain.BillPaidByWork))
	assert.True(t, bill.Final())
	assert.ErrorIs(t, bill.Advance(domain.BillReceiptIssued), domain.ErrInvalidTransition)
}

func TestBill_MarketFlow(t *testing.T) {
	id := uuid.New()
	bill := domain.NewMarketBill(id, "market 1", "Steak", 4, 32)
	assert.Equal(t, id, bill.ID)
	assert.Equal(t, domain.BillSent, bill.Status)

	assert.ErrorIs(t, bill.Advance(domain.BillReceiptIssued), domain.ErrInvalidTransition)
	require.NoError(t, bill.Advance(domain.BillPaid))
	assert.True(t, bill.Final())
	assert.ErrorIs(t, bill.ApplyPayment(32), domain.ErrInvalidTransition)
}

func TestNewMarketOrder_GrandTotal(t *testing.T) {
	order := domain.NewMarketOrder("Steak", 4, 8, "cook", "cashier")
	assert.Equal(t, 32.0, order.GrandTotal)
	assert.Equal(t, domain.MarketOrderReceived, order.Status)
	assert.NotEqual(t, uuid.Nil, order.ID)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 4.01, domain.Round2(20-15.99))
	assert.Equal(t, 1.37, domain.Round2(domain.HoursOwed(15.99, 5)))
	assert.InDelta(t, 1.37375, domain.HoursOwed(15.99, 5), 1e-9)
	assert.Equal(t, 0.0, domain.HoursOwed(5, 6))
}

func TestMenu_Lookup(t *testing.T) {
	menu := domain.DefaultMenu()
	price, ok := menu.Price("Steak")
	assert.True(t, ok)
	assert.Equal(t, 15.99, price)

	_, ok = menu.Lookup("Sushi")
	assert.False(t, ok)
	assert.Equal(t, []string{"Steak", "Chicken", "Salad", "Pizza"}, menu.Names())

	pantry := domain.DefaultPantry(menu)
	assert.Equal(t, 10, pantry["Salad"])
}
