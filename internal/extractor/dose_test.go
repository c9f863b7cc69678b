package extractor

import "testing"

func TestParseDose(t *testing.T) {
	tests := []struct {
		text  string
		value float64
		unit  string
	}{
		{"5 mg/L", 5, "mg/L"},
		{"2.5ml", 2.5, "ml"},
		{"2,5 ml", 2.5, "ml"},
		{"10 g per plant", 10, "g"},
		{"0.5%", 0.5, "%"},
		{"100", 100, ""},
	}

	for _, tt := range tests {
		d := ParseDose(tt.text)
		if d == nil {
			t.Errorf("ParseDose(%q) = nil", tt.text)
			continue
		}
		if d.Value != tt.value || d.Unit != tt.unit {
			t.Errorf("ParseDose(%q) = %v %q, want %v %q", tt.text, d.Value, d.Unit, tt.value, tt.unit)
		}
	}
}

func TestParseDoseNoNumber(t *testing.T) {
	for _, text := range []string{"", "   ", "as needed", "n/a"} {
		if d := ParseDose(text); d != nil {
			t.Errorf("ParseDose(%q) = %+v, want nil", text, d)
		}
	}
}
