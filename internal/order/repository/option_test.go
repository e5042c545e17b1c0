package repository

import (
	"reflect"
	"testing"
)

func TestMobileSearchPatterns(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{
			input: "98765 43210",
			want:  []string{"9876543210", "+919876543210", "919876543210", "9876543210"},
		},
		{
			input: "+91-9876543210",
			want:  []string{"919876543210", "+91919876543210", "91919876543210", "9876543210"},
		},
	}

	for _, tt := range tests {
		if got := MobileSearchPatterns(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("MobileSearchPatterns(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
