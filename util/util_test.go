package util

import "testing"

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		visible int
		want    string
	}{
		{"long value keeps prefix", "st.abc123456", 4, "st.a***"},
		{"short value fully masked", "abc", 4, "***"},
		{"empty value", "", 4, "***"},
		{"exact length fully masked", "abcd", 4, "***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskSecret(tt.in, tt.visible); got != tt.want {
				t.Errorf("MaskSecret(%q, %d) = %q, want %q", tt.in, tt.visible, got, tt.want)
			}
		})
	}
}
