package utils

import (
	"testing"
	"unicode"
)

func assertUppercase(t *testing.T, s string) {
	t.Helper()
	for _, r := range s {
		if !unicode.IsUpper(r) {
			t.Errorf("candidate %q contains non-uppercase %q", s, r)
		}
	}
}

func TestPartyIDCandidateFromWords(t *testing.T) {
	cases := []struct {
		name  string
		owner string
		want  string
	}{
		{"three words", "Test EVSE Solutions", "TES"},
		{"more than three words", "Power Up Charging Network Inc", "PUC"},
		{"lowercase input", "green volt ph", "GVP"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PartyIDCandidate(tc.owner, 0); got != tc.want {
				t.Errorf("PartyIDCandidate(%q, 0) = %q, want %q", tc.owner, got, tc.want)
			}
		})
	}
}

func TestPartyIDCandidatePadsShortNames(t *testing.T) {
	got := PartyIDCandidate("Shell", 0)
	if len(got) != 3 {
		t.Fatalf("candidate %q length = %d, want 3", got, len(got))
	}
	if got[0] != 'S' {
		t.Errorf("candidate %q, want S prefix", got)
	}
	assertUppercase(t, got)
}

func TestPartyIDCandidateRetryIsRandom(t *testing.T) {
	got := PartyIDCandidate("Test EVSE Solutions", 1)
	if len(got) != 3 {
		t.Fatalf("retry candidate %q length = %d, want 3", got, len(got))
	}
	assertUppercase(t, got)
}

func TestGeneratePassword(t *testing.T) {
	password := GeneratePassword()
	if len(password) != 12 {
		t.Errorf("password length = %d, want 12", len(password))
	}
	if password == GeneratePassword() {
		t.Error("two generated passwords are identical")
	}
}
