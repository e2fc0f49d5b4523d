// Package qr builds UPI payment links and hosted QR image URLs for
// them. The image itself is rendered by a public QR endpoint, the same
// collaborator the original app used; nothing is fetched server-side.
package qr

import (
	"fmt"
	"net/url"
	"strconv"
)

const qrServer = "https://api.qrserver.com/v1/create-qr-code/"

// ImageURL returns a hosted QR image URL encoding text.
func ImageURL(text string, size int) string {
	if size <= 0 {
		size = 200
	}
	params := url.Values{}
	params.Set("size", fmt.Sprintf("%dx%d", size, size))
	params.Set("data", text)
	params.Set("format", "png")
	params.Set("bgcolor", "ffffff")
	params.Set("color", "000000")
	params.Set("qzone", "1")
	params.Set("margin", "0")
	params.Set("ecc", "L")
	return qrServer + "?" + params.Encode()
}

// PaymentLink builds a upi://pay deep link for the given amount.
func PaymentLink(upiID, payeeName string, amount float64) string {
	params := url.Values{}
	params.Set("pa", upiID)
	params.Set("pn", payeeName)
	params.Set("am", strconv.FormatFloat(amount, 'f', 2, 64))
	params.Set("cu", "INR")
	params.Set("tn", payeeName+" Payment")
	return "upi://pay?" + params.Encode()
}

// PaymentImageURL returns the hosted QR image URL for a payment link.
func PaymentImageURL(upiID, payeeName string, amount float64, size int) string {
	return ImageURL(PaymentLink(upiID, payeeName, amount), size)
}
