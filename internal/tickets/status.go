package tickets

type Status string

const (
	StatusAwaitingPayment Status = "AWAITING_PAYMENT"
	StatusConfirmed       Status = "CONFIRMED"
)

// IsValid checks if the ticket status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusAwaitingPayment, StatusConfirmed:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanConfirm checks if a ticket with this status can accept a payment
// confirmation
func (s Status) CanConfirm() bool {
	return s == StatusAwaitingPayment
}
