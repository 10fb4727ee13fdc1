package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Size of the generated image in pixels (square).
const Size = 300

// Encode renders url as a black-on-white QR PNG with the default quiet zone.
// Output is deterministic for a given url. Fails only if the payload does not
// fit the QR format.
func Encode(url string) ([]byte, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, Size)
	if err != nil {
		return nil, fmt.Errorf("qr encode: %w", err)
	}
	return png, nil
}
