package registration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLead() MemberInput {
	return MemberInput{
		Name:    "Asha",
		USN:     "4PS22CS001",
		College: "PESCE",
		Contact: "9876543210",
		Email:   "asha@example.com",
	}
}

func TestValidate_TeamSizeMatrix(t *testing.T) {
	tests := []struct {
		name       string
		teamSize   int
		member2    *MemberInput
		member3    *MemberInput
		wantFields []string
	}{
		{
			name:     "solo team needs no member blocks",
			teamSize: 1,
		},
		{
			name:       "duo team requires member 2",
			teamSize:   2,
			wantFields: []string{"member2.name"},
		},
		{
			name:     "duo team with member 2 passes",
			teamSize: 2,
			member2:  &MemberInput{Name: "Ravi"},
		},
		{
			name:       "trio team requires members 2 and 3",
			teamSize:   3,
			wantFields: []string{"member2.name", "member3.name"},
		},
		{
			name:       "trio team with only member 2 still requires member 3",
			teamSize:   3,
			member2:    &MemberInput{Name: "Ravi"},
			wantFields: []string{"member3.name"},
		},
		{
			name:     "trio team with both members passes",
			teamSize: 3,
			member2:  &MemberInput{Name: "Ravi"},
			member3:  &MemberInput{Name: "Kiran"},
		},
		{
			name:       "team size zero is rejected",
			teamSize:   0,
			wantFields: []string{"team_size"},
		},
		{
			name:       "team size four is rejected",
			teamSize:   4,
			wantFields: []string{"team_size"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := RegisterRequest{
				TeamName: "Bit Shifters",
				TeamSize: tt.teamSize,
				Lead:     validLead(),
				Member2:  tt.member2,
				Member3:  tt.member3,
			}

			errs := req.Validate()

			if len(tt.wantFields) == 0 {
				assert.Nil(t, errs)
				return
			}
			require.NotNil(t, errs)
			for _, field := range tt.wantFields {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestValidate_SoloTeamIgnoresStaleMemberBlocks(t *testing.T) {
	req := RegisterRequest{
		TeamName: "Bit Shifters",
		TeamSize: 1,
		Lead:     validLead(),
		// Leftovers from a larger selection; never inspected
		Member2: &MemberInput{},
		Member3: &MemberInput{},
	}

	assert.Nil(t, req.Validate())
	assert.Empty(t, req.selectedMembers())
}

func TestValidate_LeadFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*RegisterRequest)
		wantField string
	}{
		{
			name:      "missing team name",
			mutate:    func(r *RegisterRequest) { r.TeamName = "" },
			wantField: "team_name",
		},
		{
			name:      "missing lead name",
			mutate:    func(r *RegisterRequest) { r.Lead.Name = "" },
			wantField: "lead.name",
		},
		{
			name:      "missing USN",
			mutate:    func(r *RegisterRequest) { r.Lead.USN = "" },
			wantField: "lead.usn",
		},
		{
			name:      "missing college",
			mutate:    func(r *RegisterRequest) { r.Lead.College = "" },
			wantField: "lead.college",
		},
		{
			name:      "contact too short",
			mutate:    func(r *RegisterRequest) { r.Lead.Contact = "98765" },
			wantField: "lead.contact",
		},
		{
			name:      "contact with letters",
			mutate:    func(r *RegisterRequest) { r.Lead.Contact = "98765abcde" },
			wantField: "lead.contact",
		},
		{
			name:      "contact with eleven digits",
			mutate:    func(r *RegisterRequest) { r.Lead.Contact = "98765432101" },
			wantField: "lead.contact",
		},
		{
			name:      "malformed email",
			mutate:    func(r *RegisterRequest) { r.Lead.Email = "not-an-email" },
			wantField: "lead.email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := RegisterRequest{
				TeamName: "Bit Shifters",
				TeamSize: 1,
				Lead:     validLead(),
			}
			tt.mutate(&req)

			errs := req.Validate()

			require.NotNil(t, errs)
			assert.Contains(t, errs, tt.wantField)
		})
	}
}

func TestSelectedMembers_OrderedBySlot(t *testing.T) {
	req := RegisterRequest{
		TeamName: "Bit Shifters",
		TeamSize: 3,
		Lead:     validLead(),
		Member2:  &MemberInput{Name: "Ravi"},
		Member3:  &MemberInput{Name: "Kiran"},
	}

	members := req.selectedMembers()

	require.Len(t, members, 2)
	assert.Equal(t, "Ravi", members[0].Name)
	assert.Equal(t, "Kiran", members[1].Name)
}
