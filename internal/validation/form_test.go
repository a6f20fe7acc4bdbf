package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoolToken(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"true", true},
		{"True", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"Yes", true},
		{" true ", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"", false},
		{"on", false},
		{"2", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BoolToken(tt.in), "token %q", tt.in)
	}
}
