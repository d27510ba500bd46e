package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// ReceiptQR encodes a link to a bill's receipt.
type ReceiptQR struct {
	BaseURL string
}

func (g ReceiptQR) Generate(billID uuid.UUID) ([]byte, error) {
	return qrcode.Encode(g.Link(billID), qrcode.Medium, 256)
}

func (g ReceiptQR) Link(billID uuid.UUID) string {
	return fmt.Sprintf("%s/api/bills/%s", g.BaseURL, billID)
}
