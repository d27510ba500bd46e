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

func TestMarket_BillsThenDeliversAfterPayment(t *testing.T) {
	clock := agent.NewManualClock()
	events := &eventLog{}
	market := restaurant.NewMarket("market1", map[string]domain.Supply{"Steak": {Price: 8, Stock: 15}}, testOptions(clock, events)...)
	cook := newCookMock(t)
	cashier := newCashierMock(t)

	var orderID uuid.UUID
	cashier.On("MarketBill", market, mock.AnythingOfType("uuid.UUID"), "Steak", 3, 24.0).
		Run(func(args mock.Arguments) { orderID = args.Get(1).(uuid.UUID) }).
		Once()
	market.OrderFood("Steak", 3, cashier, cook)
	market.Tick()

	require.NotEqual(t, uuid.Nil, orderID)
	assert.Equal(t, 12, market.Stock("Steak"))

	cook.On("FoodDelivery", market, "Steak", 3).Once()
	market.PayBill(cashier, orderID, "Steak", 24)
	market.Tick()

	// The order is gone once delivered.
	market.PayBill(cashier, orderID, "Steak", 24)
	assert.Equal(t, 0, market.Tick())

	assert.Len(t, events.ofType(domain.EventMarketOrderBilled), 1)
	assert.Len(t, events.ofType(domain.EventMarketOrderDone), 1)
}

func TestMarket_UnfulfilledOrders(t *testing.T) {
	tests := []struct {
		name     string
		item     string
		quantity int
		noBiller bool
	}{
		{name: "not enough stock", item: "Salad", quantity: 6},
		{name: "unknown item", item: "Lobster", quantity: 1},
		{name: "zero quantity", item: "Salad", quantity: 0},
		{name: "nobody to bill", item: "Salad", quantity: 1, noBiller: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := agent.NewManualClock()
			events := &eventLog{}
			market := restaurant.NewMarket("market1", nil, testOptions(clock, events)...)
			cook := newCookMock(t)

			cook.On("FoodDelivery", market, tt.item, 0).Once()
			if tt.noBiller {
				market.OrderFood(tt.item, tt.quantity, nil, cook)
			} else {
				market.OrderFood(tt.item, tt.quantity, newCashierMock(t), cook)
			}
			market.Tick()

			assert.Equal(t, 5, market.Stock("Salad"))
			assert.Len(t, events.ofType(domain.EventMarketOrderRejected), 1)
		})
	}
}

func TestMarket_RejectsMismatchedPayment(t *testing.T) {
	clock := agent.NewManualClock()
	market := restaurant.NewMarket("market1", nil, testOptions(clock, &eventLog{})...)
	cook := newCookMock(t)
	cashier := newCashierMock(t)
	impostor := newCashierMock(t)

	var orderID uuid.UUID
	cashier.On("MarketBill", market, mock.AnythingOfType("uuid.UUID"), "Pizza", 2, 6.0).
		Run(func(args mock.Arguments) { orderID = args.Get(1).(uuid.UUID) }).
		Once()
	market.OrderFood("Pizza", 2, cashier, cook)
	market.Tick()

	market.PayBill(cashier, orderID, "Pizza", 5.99)
	market.PayBill(cashier, orderID, "Steak", 6)
	market.PayBill(impostor, orderID, "Pizza", 6)
	market.PayBill(cashier, uuid.New(), "Pizza", 6)
	assert.Equal(t, 0, market.Tick())

	cook.On("FoodDelivery", market, "Pizza", 2).Once()
	market.PayBill(cashier, orderID, "Pizza", 6.004)
	market.Tick()
	assert.Equal(t, 6, market.Stock("Pizza"))
}

func TestMarket_IgnoresRequestWithoutCook(t *testing.T) {
	clock := agent.NewManualClock()
	market := restaurant.NewMarket("market1", nil, testOptions(clock, &eventLog{})...)

	market.OrderFood("Steak", 1, newCashierMock(t), nil)
	assert.Equal(t, 0, market.Tick())
	assert.Equal(t, 15, market.Stock("Steak"))
}
