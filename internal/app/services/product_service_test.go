package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampYear(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want int
	}{
		{"zero stays zero", 0, 0},
		{"in range", 3, 3},
		{"upper bound", 10, 10},
		{"above range clamps to ten", 15, 10},
		{"negative coerces to zero", -2, 0},
		{"fraction truncates", 2.9, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampYear(tt.in))
		})
	}
}
