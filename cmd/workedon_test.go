package cmd

import "testing"

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"7.5", 7.5, false},
		{"1", 1, false},
		{"0.25", 0.25, false},
		{"0", 0, true},
		{"-2", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"two", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseQuantity(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseQuantity(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseQuantity(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		q    float64
		want string
	}{
		{7.5, "7.5"},
		{8, "8"},
		{0.3, "0.3"},
	}
	for _, tt := range tests {
		if got := formatQuantity(tt.q); got != tt.want {
			t.Errorf("formatQuantity(%v) = %q, want %q", tt.q, got, tt.want)
		}
	}
}
