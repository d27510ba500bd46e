package domain

import "github.com/google/uuid"

type OrderStatus string

const (
	OrderPending OrderStatus = "pending"
	OrderCooking OrderStatus = "cooking"
	OrderDone    OrderStatus = "done"
)

// Order is a kitchen ticket. Waiter names the waiter the food goes back to.
type Order struct {
	ID     uuid.UUID   `json:"id"`
	Waiter string      `json:"waiter"`
	Table  int         `json:"table"`
	Item   string      `json:"item"`
	Status OrderStatus `json:"status"`
}

func NewOrder(waiter string, table int, item string) Order {
	return Order{
		ID:     uuid.New(),
		Waiter: waiter,
		Table:  table,
		Item:   item,
		Status: OrderPending,
	}
}

type MarketOrderStatus string

const (
	MarketOrderReceived    MarketOrderStatus = "received"
	MarketOrderBilled      MarketOrderStatus = "billed"
	MarketOrderCompleted   MarketOrderStatus = "completed"
	MarketOrderUnfulfilled MarketOrderStatus = "unfulfilled"
)

// MarketOrder is a cook's restock request as the market tracks it. GrandTotal
// is fixed when the request arrives and is never re-priced.
type MarketOrder struct {
	ID         uuid.UUID         `json:"id"`
	Item       string            `json:"item"`
	Quantity   int               `json:"quantity"`
	UnitPrice  float64           `json:"unit_price"`
	GrandTotal float64           `json:"grand_total"`
	Cook       string            `json:"cook"`
	Cashier    string            `json:"cashier"`
	Paid       bool              `json:"paid"`
	Status     MarketOrderStatus `json:"status"`
}

func NewMarketOrder(item string, quantity int, unitPrice float64, cook, cashier string) MarketOrder {
	return MarketOrder{
		ID:         uuid.New(),
		Item:       item,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		GrandTotal: float64(quantity) * unitPrice,
		Cook:       cook,
		Cashier:    cashier,
		Status:     MarketOrderReceived,
	}
}
