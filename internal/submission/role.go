package submission

import (
	"strings"

	"resume-feedback/internal/feedback"
)

// Role is a job role the analysis service has a profile for.
type Role string

const (
	RoleSoftwareEngineer Role = "software_engineer"
	RoleFinance          Role = "finance"
	RoleDataScientist    Role = "data_scientist"
	RoleMarketing        Role = "marketing"
)

// Roles lists the selectable roles in menu order.
var Roles = []Role{RoleSoftwareEngineer, RoleFinance, RoleDataScientist, RoleMarketing}

// Valid reports whether r is one of Roles.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// Label is the display form of the role, e.g. "Data Scientist".
func (r Role) Label() string {
	return feedback.FormatIndustry(string(r))
}

// ParseRole accepts a role identifier, ignoring case and surrounding space.
// The empty string parses to the empty role.
func ParseRole(raw string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(raw)))
	if role == "" || role.Valid() {
		return role, nil
	}
	return "", ErrUnknownRole
}
