package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid bill status transition")
	ErrBillNotFound      = errors.New("bill not found")
)

type PayerRole string

const (
	PayerCustomer PayerRole = "customer"
	PayerMarket   PayerRole = "market"
)

type BillStatus string

const (
	BillUnpaid        BillStatus = "unpaid"
	BillSent          BillStatus = "sent"
	BillPaidInFull    BillStatus = "paid_in_full"
	BillUnderPaid     BillStatus = "under_paid"
	BillReceiptIssued BillStatus = "receipt_issued"
	BillPaidByWork    BillStatus = "paid_by_work"
	BillPaid          BillStatus = "paid"
)

var customerBillFlow = map[BillStatus][]BillStatus{
	BillUnpaid:        {BillSent},
	BillSent:          {BillPaidInFull, BillUnderPaid},
	BillPaidInFull:    {BillReceiptIssued},
	BillUnderPaid:     {BillReceiptIssued},
	BillReceiptIssued: {BillPaidByWork},
}

var marketBillFlow = map[BillStatus][]BillStatus{
	BillSent: {BillPaid},
}

// Bill is a charge. For customer bills Party is the customer's name and the
// cashier is the payee; for market bills Party is the market being paid.
type Bill struct {
	ID             uuid.UUID  `json:"id"`
	Payer          PayerRole  `json:"payer"`
	Party          string     `json:"party"`
	Item           string     `json:"item"`
	Quantity       int        `json:"quantity,omitempty"`
	AmountDue      float64    `json:"amount_due"`
	AmountReceived float64    `json:"amount_received"`
	Change         float64    `json:"change"`
	HoursOwed      float64    `json:"hours_owed"`
	Status         BillStatus `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
}

func NewCustomerBill(customer, item string, amount float64) *Bill {
	return &Bill{
		ID:        uuid.New(),
		Payer:     PayerCustomer,
		Party:     customer,
		Item:      item,
		Quantity:  1,
		AmountDue: amount,
		Status:    BillUnpaid,
		CreatedAt: time.Now(),
	}
}

// NewMarketBill records a market's invoice. It shares the market order's id.
func NewMarketBill(orderID uuid.UUID, market, item string, quantity int, amount float64) *Bill {
	return &Bill{
		ID:        orderID,
		Payer:     PayerMarket,
		Party:     market,
		Item:      item,
		Quantity:  quantity,
		AmountDue: amount,
		Status:    BillSent,
		CreatedAt: time.Now(),
	}
}

// Advance moves the bill to status if the bill's flow allows it.
func (b *Bill) Advance(status BillStatus) error {
	flow := customerBillFlow
	if b.Payer == PayerMarket {
		flow = marketBillFlow
	}
	for _, next := range flow[b.Status] {
		if next != status {
			continue
		}
		if status == BillPaidByWork && !b.Short() {
			break
		}
		b.Status = status
		return nil
	}
	return fmt.Errorf("%w: %s bill %s from %s to %s", ErrInvalidTransition, b.Payer, b.ID, b.Status, status)
}

// ApplyPayment evaluates cash tendered against a sent customer bill.
func (b *Bill) ApplyPayment(cash float64) error {
	if b.Payer != PayerCustomer || b.Status != BillSent {
		return fmt.Errorf("%w: payment on %s bill in status %s", ErrInvalidTransition, b.Payer, b.Status)
	}
	b.AmountReceived = cash
	if cash >= b.AmountDue {
		b.Change = cash - b.AmountDue
		b.HoursOwed = 0
		return b.Advance(BillPaidInFull)
	}
	b.Change = 0
	b.HoursOwed = HoursOwed(b.AmountDue, cash)
	return b.Advance(BillUnderPaid)
}

// Short reports whether the customer paid less than was due.
func (b *Bill) Short() bool {
	return b.Payer == PayerCustomer && b.AmountReceived < b.AmountDue
}

// Final reports whether no further transition is possible.
func (b *Bill) Final() bool {
	switch b.Status {
	case BillPaidByWork, BillPaid:
		return true
	case BillReceiptIssued:
		return !b.Short()
	}
	return false
}
