package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{name: "round to 2 decimals", input: 123.456789, want: 123.46},
		{name: "already 2 decimals", input: 123.45, want: 123.45},
		{name: "integer", input: 123.0, want: 123.0},
		{name: "net after processor fee", input: 90.78181, want: 90.78},
		{name: "total net of three installments", input: 252.16086, want: 252.16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Round2(tt.input), 1e-9)
		})
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  bool
	}{
		{name: "finite number", input: 123.45, want: true},
		{name: "infinity", input: math.Inf(1), want: false},
		{name: "negative infinity", input: math.Inf(-1), want: false},
		{name: "NaN", input: math.NaN(), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFinite(tt.input))
		})
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{input: 97.51, want: "R$ 97.51"},
		{input: 0, want: "R$ 0.00"},
		{input: 6.728190, want: "R$ 6.73"},
		{input: 1500, want: "R$ 1500.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMoney(tt.input), "FormatMoney(%v)", tt.input)
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{input: 0.069, want: "6.90%"},
		{input: 0.0249, want: "2.49%"},
		{input: 1, want: "100.00%"},
		{input: 0, want: "0.00%"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPercent(tt.input), "FormatPercent(%v)", tt.input)
	}
}
