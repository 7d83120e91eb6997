package textutil

import "testing"

func TestSpaces(t *testing.T) {
	if got := Spaces(3); got != "   " {
		t.Errorf("expected three spaces, got %q", got)
	}
	if got := Spaces(0); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
	if got := Spaces(-2); got != "" {
		t.Errorf("negative count should be empty, got %q", got)
	}
}

func TestSingleLine(t *testing.T) {
	if got := SingleLine("a\nb\nc"); got != "a b c" {
		t.Errorf("expected %q, got %q", "a b c", got)
	}
	if got := SingleLine("plain"); got != "plain" {
		t.Errorf("expected %q, got %q", "plain", got)
	}
}

func TestWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"abc", 3},
		{"", 0},
		{"メカジキ", 8},
		{"a メ b", 6},
	}
	for _, tt := range tests {
		if got := Width(tt.in); got != tt.want {
			t.Errorf("Width(%q): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}
