// Package upi builds UPI deep links and their QR representations.
package upi

import (
	"net/url"
	"strconv"

	qrcode "github.com/skip2/go-qrcode"
)

// Currency is the only currency the deep link supports.
const Currency = "INR"

// Intent is the ephemeral payee/amount/reference tuple encoded into a
// payment deep link. It is constructed, rendered and discarded; never
// stored.
type Intent struct {
	PayeeVPA  string // pa - payee virtual address
	PayeeName string // pn
	Amount    int    // am - whole currency units
	Note      string // tn
	TxnRef    string // tr
}

// BuildLink renders the intent as a upi://pay URI. All parameters are
// URL-encoded here; callers pass raw values. The builder does not validate
// amount positivity or VPA format, that is the caller's concern. Output is
// deterministic for identical input (url.Values encodes in key order).
func BuildLink(intent Intent) string {
	params := url.Values{}
	params.Set("pa", intent.PayeeVPA)
	params.Set("pn", intent.PayeeName)
	params.Set("am", strconv.Itoa(intent.Amount))
	params.Set("tn", intent.Note)
	params.Set("tr", intent.TxnRef)
	params.Set("cu", Currency)

	return "upi://pay?" + params.Encode()
}

// QRPNG encodes text as a QR code PNG of size x size pixels.
func QRPNG(text string, size int) ([]byte, error) {
	return qrcode.Encode(text, qrcode.Medium, size)
}
