package qrcode

import (
	"github.com/skip2/go-qrcode"
)

// EncodePNG renders data as a 256px PNG QR code, returned in memory so the
// controller can serve it directly.
func EncodePNG(data string) ([]byte, error) {
	return qrcode.Encode(data, qrcode.Medium, 256)
}
