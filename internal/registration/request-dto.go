package registration

// MemberInput is one participant block as submitted by the form.
type MemberInput struct {
	Name    string `json:"name"`
	USN     string `json:"usn"`
	College string `json:"college"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}

// RegisterRequest is the registration form payload. Which member blocks are
// enforced depends on team_size alone; blocks beyond the selected size may
// carry stale data and are ignored, never validated.
type RegisterRequest struct {
	TeamName string       `json:"team_name"`
	TeamSize int          `json:"team_size"`
	Lead     MemberInput  `json:"lead"`
	Member2  *MemberInput `json:"member2,omitempty"`
	Member3  *MemberInput `json:"member3,omitempty"`
}
