package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"signaleval/internal/pattern"
	"signaleval/internal/snapshot"
)

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		name      string
		fields    map[string]any
		direction pattern.Direction
		usedHTF   bool
	}{
		{
			name:      "close above daily EMA is bullish",
			fields:    map[string]any{snapshot.FieldClose: 1.10, snapshot.FieldEMA50Daily: 1.05, snapshot.FieldRSI: 80.0},
			direction: pattern.Bullish,
			usedHTF:   true,
		},
		{
			name:      "close below daily EMA is bearish",
			fields:    map[string]any{snapshot.FieldClose: 1.00, snapshot.FieldEMA50Daily: 1.05, snapshot.FieldRSI: 20.0},
			direction: pattern.Bearish,
			usedHTF:   true,
		},
		{
			name:      "close equal to daily EMA resolves bearish",
			fields:    map[string]any{snapshot.FieldClose: 1.05, snapshot.FieldEMA50Daily: 1.05, snapshot.FieldRSI: 20.0},
			direction: pattern.Bearish,
			usedHTF:   true,
		},
		{
			name:      "no EMA and low RSI frames reversal long",
			fields:    map[string]any{snapshot.FieldClose: 1.10, snapshot.FieldRSI: 49.9},
			direction: pattern.Bullish,
		},
		{
			name:      "no EMA and RSI exactly 50 resolves bearish",
			fields:    map[string]any{snapshot.FieldClose: 1.10, snapshot.FieldRSI: 50.0},
			direction: pattern.Bearish,
		},
		{
			name:      "null EMA falls back to RSI",
			fields:    map[string]any{snapshot.FieldClose: 1.10, snapshot.FieldEMA50Daily: nil, snapshot.FieldRSI: 60.0},
			direction: pattern.Bearish,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend := classifyTrend(snapshot.FromMap(tt.fields))
			assert.Equal(t, tt.direction, trend.direction)
			assert.Equal(t, tt.usedHTF, trend.usedHTF)
		})
	}
}
