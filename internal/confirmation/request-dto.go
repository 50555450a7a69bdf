package confirmation

// The confirmation step arrives as multipart form data:
//
//	screenshot  - payment screenshot file; presence is required but the
//	              bytes are discarded, nothing is stored or forwarded
//	last_digits - last 4-8 characters of the UPI transaction ID / UTR
const (
	formFieldScreenshot = "screenshot"
	formFieldLastDigits = "last_digits"
)

// Transaction-tail length bounds, inclusive.
const (
	tailMinLen = 4
	tailMaxLen = 8
)
