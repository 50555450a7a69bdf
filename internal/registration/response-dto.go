package registration

type RegisterResponse struct {
	TicketID  string `json:"ticket_id"`
	EventName string `json:"event_name"`
	EventDate string `json:"event_date"`
	AmountINR int    `json:"amount_inr"`

	// Payment intent for the awaiting-payment step
	UPILink     string `json:"upi_link"`
	UPIQRBase64 string `json:"upi_qr_base64,omitempty"` // PNG, empty if rendering failed
	PayeeVPA    string `json:"payee_vpa"`
	PayeeName   string `json:"payee_name"`

	// Where the user continues once they have paid
	ConfirmationURL string `json:"confirmation_url"`
}
