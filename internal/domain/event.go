package domain

import "time"

type EventType string

const (
	EventCustomerQueued      EventType = "customer.queued"
	EventCustomerLeftQueue   EventType = "customer.left_queue"
	EventCustomerSeated      EventType = "customer.seated"
	EventCustomerOrdered     EventType = "customer.ordered"
	EventCustomerLeft        EventType = "customer.left"
	EventAgentMoved          EventType = "agent.moved"
	EventProtocolError       EventType = "agent.protocol_error"
	EventTableOccupied       EventType = "table.occupied"
	EventTableCleared        EventType = "table.cleared"
	EventFoodPlaced          EventType = "food.placed"
	EventFoodRemoved         EventType = "food.removed"
	EventOrderCooking        EventType = "order.cooking"
	EventOrderReady          EventType = "order.ready"
	EventOutOfItem           EventType = "order.out_of_item"
	EventRestockRequested    EventType = "restock.requested"
	EventRestockDelivered    EventType = "restock.delivered"
	EventMarketOut           EventType = "restock.market_out"
	EventMarketOrderBilled   EventType = "market.order_billed"
	EventMarketOrderDone     EventType = "market.order_completed"
	EventMarketOrderRejected EventType = "market.order_unfulfilled"
	EventBillIssued          EventType = "bill.issued"
	EventBillSettled         EventType = "bill.settled"
	EventWaiterOnBreak       EventType = "waiter.on_break"
	EventWaiterOffBreak      EventType = "waiter.off_break"
)

// Positions used in agent.moved events.
const (
	PositionHome      = "home"
	PositionEntrance  = "entrance"
	PositionKitchen   = "kitchen"
	PositionCashier   = "cashier"
	PositionTable     = "table"
	PositionBreakRoom = "break_room"
)

// Event is what the core tells the outside world: renderers, the ledger and
// the stats projection all consume the same stream.
type Event struct {
	Type     EventType `json:"type"`
	Agent    string    `json:"agent"`
	Subject  string    `json:"subject,omitempty"`
	Table    int       `json:"table,omitempty"`
	Item     string    `json:"item,omitempty"`
	Quantity int       `json:"quantity,omitempty"`
	Amount   float64   `json:"amount,omitempty"`
	Position string    `json:"position,omitempty"`
	Bill     *Bill     `json:"bill,omitempty"`
	Detail   string    `json:"detail,omitempty"`
	At       time.Time `json:"at"`
}

// EventSink receives events from agent goroutines. Implementations must not
// block.
type EventSink interface {
	Emit(ev Event)
}

type EventSinkFunc func(ev Event)

func (f EventSinkFunc) Emit(ev Event) { f(ev) }

// Discard drops every event.
var Discard EventSink = EventSinkFunc(func(Event) {})
