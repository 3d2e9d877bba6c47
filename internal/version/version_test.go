package version

import "testing"

func TestCurrentMatchesVersionString(t *testing.T) {
	if got := Current().String(); got != Version {
		t.Errorf("Current() = %s, want %s", got, Version)
	}
}

func TestSatisfies(t *testing.T) {
	cases := []struct {
		constraint string
		want       bool
	}{
		{">= 0.17, < 1", true},
		{"= " + Version, true},
		{">= 1", false},
		{"< 0.17", false},
	}
	for _, tc := range cases {
		got, err := Satisfies(tc.constraint)
		if err != nil {
			t.Fatalf("Satisfies(%q): %v", tc.constraint, err)
		}
		if got != tc.want {
			t.Errorf("Satisfies(%q) = %v, want %v", tc.constraint, got, tc.want)
		}
	}
}

func TestSatisfiesRejectsBadConstraint(t *testing.T) {
	if _, err := Satisfies("not a constraint ???"); err == nil {
		t.Error("malformed constraint accepted")
	}
}
