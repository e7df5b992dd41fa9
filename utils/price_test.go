package utils

import "testing"

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"249", 249, false},
		{"249.50", 249.5, false},
		{"0", 0, false},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParsePrice(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePrice(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParsePrice(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"249", "₹249.00"},
		{"249.5", "₹249.50"},
		{"0", "₹0.00"},
	}
	for _, tt := range tests {
		got, err := FormatPrice(tt.in)
		if err != nil {
			t.Fatalf("FormatPrice(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("FormatPrice(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := FormatPrice("-5"); err == nil {
		t.Error("negative price formatted without error")
	}
}

func TestDisplayPrice(t *testing.T) {
	if got := DisplayPrice("249"); got != "₹249.00" {
		t.Errorf("DisplayPrice(\"249\") = %q, want ₹249.00", got)
	}
	// malformed stored values fall back to the raw text
	if got := DisplayPrice("market price"); got != "market price" {
		t.Errorf("DisplayPrice fallback = %q, want the raw text", got)
	}
}
