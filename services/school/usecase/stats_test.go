package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentOf(t *testing.T) {
	tests := []struct {
		name  string
		part  int
		total int
		want  int
	}{
		{"zero denominator", 3, 0, 0},
		{"exact half", 2, 4, 50},
		{"rounds up", 2, 3, 67},
		{"rounds down", 1, 3, 33},
		{"full", 8, 8, 100},
		{"empty", 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, percentOf(tt.part, tt.total))
		})
	}
}

func TestRoundTo1(t *testing.T) {
	assert.Equal(t, 75.0, roundTo1(75.0))
	assert.Equal(t, 66.7, roundTo1(200.0/3.0))
	assert.Equal(t, 0.1, roundTo1(0.05))
}
