package model

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{StatusPending, StatusActive, true},
		{StatusPending, StatusDeactive, true},
		{StatusPending, StatusPending, false},
		{StatusActive, StatusDeactive, false},
		{StatusActive, StatusPending, false},
		{StatusDeactive, StatusActive, false},
		{StatusPending, "banned", false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusActive, StatusDeactive} {
		if !IsValidStatus(s) {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []string{"", "Active", "deleted"} {
		if IsValidStatus(s) {
			t.Errorf("%q should be invalid", s)
		}
	}
}
