package tickets

import (
	"strconv"
	"time"

	"festgate/internal/shared/constants"
)

// Member is one participant's detail block.
type Member struct {
	Name    string `json:"name"`
	USN     string `json:"usn"`
	College string `json:"college"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}

// PendingTicket is the session-scoped record of a registration awaiting
// payment confirmation. The registration flow writes it, the confirmation
// flow reads it, attaches the transaction tail and deletes it once a ticket
// document has been produced.
type PendingTicket struct {
	TicketID string `json:"ticket_id"`

	// Event snapshot at registration time
	EventSlug string `json:"event_slug"`
	EventName string `json:"event_name"`
	EventDate string `json:"event_date"`

	// Form snapshot
	TeamName string   `json:"team_name"`
	TeamSize int      `json:"team_size"`
	Lead     Member   `json:"lead"`
	Members  []Member `json:"members,omitempty"` // members 2..team size

	AmountINR int       `json:"amount_inr"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`

	// Populated by the confirmation flow
	TxnTail string `json:"txn_tail,omitempty"`
}

// MintTicketID mints a ticket identifier from the current wall clock.
// Unique per session under the assumption that no two submissions happen
// within the same millisecond.
func MintTicketID() string {
	return MintTicketIDAt(time.Now())
}

// MintTicketIDAt mints the identifier for a given instant.
func MintTicketIDAt(t time.Time) string {
	return constants.TICKET_ID_PREFIX + strconv.FormatInt(t.UnixMilli(), 10)
}

// CheckinPayload is the value encoded into the ticket document's QR code.
func (t *PendingTicket) CheckinPayload() string {
	return constants.CHECKIN_PREFIX + t.TicketID
}
