package qrcode

import (
	"fmt"

	qr "github.com/skip2/go-qrcode"
)

// Size of the generated PNG in pixels.
const imageSize = 512

// MenuURL builds the public chat/menu link encoded in a restaurant's QR code.
func MenuURL(baseURL string, restaurantID uint) string {
	return fmt.Sprintf("%s/chat/%d", baseURL, restaurantID)
}

// GeneratePNG encodes the restaurant's menu link as a QR code PNG, ready to
// print and place on tables.
func GeneratePNG(baseURL string, restaurantID uint) ([]byte, error) {
	png, err := qr.Encode(MenuURL(baseURL, restaurantID), qr.Medium, imageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}
