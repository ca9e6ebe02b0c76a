package repository

import "testing"

func TestDigitsOnly(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "formatted us number", in: "(202) 555-0188", want: "2025550188"},
		{name: "dashes only", in: "202-555-0188", want: "2025550188"},
		{name: "already bare", in: "2025550188", want: "2025550188"},
		{name: "partial digits", in: "555", want: "555"},
		{name: "no digits", in: "call me", want: ""},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := digitsOnly(tt.in); got != tt.want {
				t.Errorf("digitsOnly(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
