package registration

import (
	"regexp"

	"festgate/internal/shared/utils/response"

	"github.com/go-playground/validator/v10"
)

var (
	validate     = validator.New()
	contactRegex = regexp.MustCompile(`^\d{10}$`)
)

// teamVariant is one of the three statically-known team compositions. The
// required-field set is a pure function of the selected size; nothing else
// feeds into it.
type teamVariant struct {
	size           int
	requireMember2 bool
	requireMember3 bool
}

var teamVariants = map[int]teamVariant{
	1: {size: 1},
	2: {size: 2, requireMember2: true},
	3: {size: 3, requireMember2: true, requireMember3: true},
}

// Validate checks the form against the variant selected by team size and
// returns per-field errors, keyed so clients can render each message next
// to its field. Member blocks beyond the selected size are never inspected.
func (r *RegisterRequest) Validate() response.FieldErrors {
	errs := response.FieldErrors{}

	variant, ok := teamVariants[r.TeamSize]
	if !ok {
		errs["team_size"] = "Team size must be 1, 2 or 3"
		return errs
	}

	if err := validate.Var(r.TeamName, "required,min=1,max=100"); err != nil {
		errs["team_name"] = "Team name is required"
	}

	// Lead block is mandatory for every variant
	if err := validate.Var(r.Lead.Name, "required,max=100"); err != nil {
		errs["lead.name"] = "Lead name is required"
	}
	if err := validate.Var(r.Lead.USN, "required,max=50"); err != nil {
		errs["lead.usn"] = "USN is required"
	}
	if err := validate.Var(r.Lead.College, "required,max=200"); err != nil {
		errs["lead.college"] = "College name is required"
	}
	if !contactRegex.MatchString(r.Lead.Contact) {
		errs["lead.contact"] = "Must be 10 digits"
	}
	if err := validate.Var(r.Lead.Email, "required,email,max=255"); err != nil {
		errs["lead.email"] = "Invalid email address"
	}

	if variant.requireMember2 {
		if r.Member2 == nil || validate.Var(r.Member2.Name, "required,max=100") != nil {
			errs["member2.name"] = "Member 2 name is required"
		}
	}
	if variant.requireMember3 {
		if r.Member3 == nil || validate.Var(r.Member3.Name, "required,max=100") != nil {
			errs["member3.name"] = "Member 3 name is required"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// selectedMembers returns the member blocks the chosen variant carries, in
// order, dropping the blocks beyond the team size even when filled in.
func (r *RegisterRequest) selectedMembers() []*MemberInput {
	variant := teamVariants[r.TeamSize]

	var members []*MemberInput
	if variant.requireMember2 && r.Member2 != nil {
		members = append(members, r.Member2)
	}
	if variant.requireMember3 && r.Member3 != nil {
		members = append(members, r.Member3)
	}
	return members
}
