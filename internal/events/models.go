package events

// EventConfig is the descriptor for one fest event, built once at process
// start. The catalog hands out copies, so callers can't mutate the shared
// set.
type EventConfig struct {
	EventName   string `json:"event_name"`
	EventDate   string `json:"event_date"`
	EndpointURL string `json:"-"` // upstream scripted backend, never exposed
	APIKey      string `json:"-"` // shared secret, never exposed
	PayeeVPA    string `json:"payee_vpa"`
	PayeeName   string `json:"payee_name"`
	RegFeeINR   int    `json:"reg_fee_inr"`
	Slug        string `json:"slug"`
}

// EventResponse is the public catalog view of an event. Payment identity is
// included because the registration page renders it; the upstream endpoint
// and shared secret never leave the process.
type EventResponse struct {
	EventName       string `json:"event_name"`
	EventDate       string `json:"event_date"`
	PayeeVPA        string `json:"payee_vpa"`
	PayeeName       string `json:"payee_name"`
	RegFeeINR       int    `json:"reg_fee_inr"`
	Slug            string `json:"slug"`
	RegistrationURL string `json:"registration_url"`
}

// ToResponse converts an EventConfig to its public view. basePath is the
// API base path the registration route hangs off.
func (e EventConfig) ToResponse(basePath string) EventResponse {
	return EventResponse{
		EventName:       e.EventName,
		EventDate:       e.EventDate,
		PayeeVPA:        e.PayeeVPA,
		PayeeName:       e.PayeeName,
		RegFeeINR:       e.RegFeeINR,
		Slug:            e.Slug,
		RegistrationURL: basePath + "/events/" + e.Slug + "/register",
	}
}
