package auth

import "testing"

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"ann.smith@example.co.uk", true},
		{"user+tag@domain.org", true},
		{"user_name%x@sub.domain.net", true},
		{"", false},
		{"plainaddress", false},
		{"@no-local.com", false},
		{"no-domain@", false},
		{"no-tld@domain", false},
		{"one-letter-tld@domain.c", false},
		{"spaces in@domain.com", false},
	}

	for _, tt := range tests {
		if got := ValidEmail(tt.email); got != tt.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}
