package evaluator

import (
	"signaleval/internal/pattern"
	"signaleval/internal/snapshot"
)

// trendContext is the directional bias chosen for the snapshot, plus whether
// the higher-timeframe EMA drove the call. usedHTF only affects messaging.
type trendContext struct {
	direction pattern.Direction
	usedHTF   bool
}

// classifyTrend picks the bias. With a daily EMA available, price above the
// EMA is bullish and anything else (equality included) is bearish. Without
// it, RSI below 50 frames a reversal long, 50 and above a reversal short.
func classifyTrend(snap snapshot.Snapshot) trendContext {
	close, _ := snap.Float(snapshot.FieldClose)

	if ema, ok := snap.Float(snapshot.FieldEMA50Daily); ok {
		if close > ema {
			return trendContext{direction: pattern.Bullish, usedHTF: true}
		}
		return trendContext{direction: pattern.Bearish, usedHTF: true}
	}

	rsi, _ := snap.Float(snapshot.FieldRSI)
	if rsi < 50 {
		return trendContext{direction: pattern.Bullish}
	}
	return trendContext{direction: pattern.Bearish}
}
