package extractor

import "testing"

func TestNormalizeDateLayouts(t *testing.T) {
	n := NewDateNormalizer()

	tests := []struct {
		in   string
		want string
	}{
		{"2024-05-01", "2024-05-01"},
		{"2024/05/01", "2024-05-01"},
		{"3 March 2024", "2024-03-03"},
		{"Mar 3, 2024", "2024-03-03"},
	}
	for _, tt := range tests {
		if got := n.Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeDatePassthrough(t *testing.T) {
	n := NewDateNormalizer()

	// Unparseable values pass through unchanged, never error.
	for _, in := range []string{"", "   ", "sometime in spring??", "n/a"} {
		if got := n.Normalize(in); got != in {
			t.Errorf("Normalize(%q) = %q, want unchanged", in, got)
		}
	}
}
