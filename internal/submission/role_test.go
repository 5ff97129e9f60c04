package submission

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		raw     string
		want    Role
		wantErr error
	}{
		{raw: "software_engineer", want: RoleSoftwareEngineer},
		{raw: " DATA_SCIENTIST ", want: RoleDataScientist},
		{raw: "", want: ""},
		{raw: "chef", wantErr: ErrUnknownRole},
	}
	for _, tc := range cases {
		got, err := ParseRole(tc.raw)
		if !errors.Is(err, tc.wantErr) {
			t.Fatalf("ParseRole(%q) err = %v, want %v", tc.raw, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("ParseRole(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestRoleLabel(t *testing.T) {
	if got := RoleSoftwareEngineer.Label(); got != "Software Engineer" {
		t.Fatalf("unexpected label %q", got)
	}
	if Role("").Valid() {
		t.Fatalf("empty role must not be valid")
	}
}
