package constants

// Redis key and identifier conventions for the festgate application.
// Pattern: festgate:{module}:{identifier}

const (
	KEY_PREFIX = "festgate"
)

// ================== PENDING TICKET STORE ==================

// One pending ticket per session. Written by the registration flow,
// read, mutated and deleted by the confirmation flow.
const (
	KEY_PENDING_TICKET = KEY_PREFIX + ":pending_ticket:session:" // + session-id
)

// BuildPendingTicketKey constructs the session-scoped pending ticket key
func BuildPendingTicketKey(sessionID string) string {
	return KEY_PENDING_TICKET + sessionID
}

// ================== RATE LIMITING ==================

const (
	KEY_RATELIMIT = KEY_PREFIX + ":ratelimit:" // + client-ip:limit-type
)

// ================== TICKET IDENTIFIERS ==================

// Ticket IDs are the prefix plus Unix milliseconds at mint time. Unique as
// long as one session does not submit twice inside the same millisecond;
// there is no collision check against the upstream backend.
const (
	TICKET_ID_PREFIX = "TKT_"
)

// Payload encoded into the check-in QR on the ticket document.
const (
	CHECKIN_PREFIX = "CHECKIN:"
)
