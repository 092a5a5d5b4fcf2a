package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Encoder renders order tracking links as PNG QR codes.
type Encoder struct {
	baseURL string
	size    int
}

func NewEncoder(baseURL string) *Encoder {
	return &Encoder{baseURL: baseURL, size: 256}
}

func (e *Encoder) Generate(orderID string) ([]byte, error) {
	link := fmt.Sprintf("%s/api/orders/%s/track", e.baseURL, orderID)
	png, err := qrcode.Encode(link, qrcode.Medium, e.size)
	if err != nil {
		return nil, fmt.Errorf("encode qr for %s: %w", orderID, err)
	}
	return png, nil
}
