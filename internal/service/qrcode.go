package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRGenerator produces a scannable pickup code for an order.
type QRGenerator interface {
	Generate(orderID int64) ([]byte, error)
}

// DefaultQRGenerator encodes the order's lookup URL as a PNG QR code.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g *DefaultQRGenerator) Generate(orderID int64) ([]byte, error) {
	content := fmt.Sprintf("%s/api/orders/%d", g.BaseURL, orderID)

	png, err := qrcode.Encode(content, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}

	return png, nil
}
