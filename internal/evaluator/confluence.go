package evaluator

import (
	"fmt"

	"signaleval/internal/pattern"
	"signaleval/internal/snapshot"
)

// minConfluences is the gate: at least this many of the four checks must
// hold before a signal is considered.
const minConfluences = 2

// RSI extremity thresholds. Strict mode demands near-terminal readings.
const (
	rsiOversold         = 30
	rsiOverbought       = 70
	rsiStrictOversold   = 5
	rsiStrictOverbought = 95
)

// Higher-timeframe RSI alignment bounds.
const (
	htfOverbought = 70
	htfOversold   = 30
)

// confluenceSet is the outcome of the four confluence checks: which held,
// how many, and a justification line per satisfied check in check order.
type confluenceSet struct {
	count   int
	details []string

	rsiMet     bool
	candleMet  bool
	patternMet bool
	htfMet     bool
}

// evaluateConfluences runs the four checks against the chosen trend.
func evaluateConfluences(snap snapshot.Snapshot, trend trendContext) confluenceSet {
	var c confluenceSet
	strict := snap.Bool(snapshot.FieldStrictMode)
	rsi, _ := snap.Float(snapshot.FieldRSI)

	// 1. RSI extremity on the current timeframe.
	if trend.direction == pattern.Bullish {
		if strict {
			if rsi <= rsiStrictOversold {
				c.rsiMet = true
				c.details = append(c.details, fmt.Sprintf("RSI extremely oversold: %.2f", rsi))
			}
		} else if rsi <= rsiOversold {
			c.rsiMet = true
			c.details = append(c.details, fmt.Sprintf("RSI oversold: %.2f", rsi))
		}
	} else {
		if strict {
			if rsi >= rsiStrictOverbought {
				c.rsiMet = true
				c.details = append(c.details, fmt.Sprintf("RSI extremely overbought: %.2f", rsi))
			}
		} else if rsi >= rsiOverbought {
			c.rsiMet = true
			c.details = append(c.details, fmt.Sprintf("RSI overbought: %.2f", rsi))
		}
	}
	if c.rsiMet {
		c.count++
	}

	// 2. Candlestick confirmation, only when a tag was supplied.
	if candle, ok := snap.String(snapshot.FieldCandleType); ok && candle != "" {
		if pattern.CandleMatches(candle, trend.direction) {
			c.candleMet = true
			c.count++
			if trend.direction == pattern.Bullish {
				c.details = append(c.details, fmt.Sprintf("Bullish candle pattern: %s", candle))
			} else {
				c.details = append(c.details, fmt.Sprintf("Bearish candle pattern: %s", candle))
			}
		}
	}

	// 3. Chart pattern or divergence. Divergence counts regardless of trend.
	if chart, ok := snap.String(snapshot.FieldPattern); ok && chart != "" {
		if pattern.ChartMatches(chart, trend.direction) {
			c.patternMet = true
			if trend.direction == pattern.Bullish {
				c.details = append(c.details, fmt.Sprintf("Bullish pattern: %s", chart))
			} else {
				c.details = append(c.details, fmt.Sprintf("Bearish pattern: %s", chart))
			}
		}
	}
	if snap.Bool(snapshot.FieldDivergence) {
		c.patternMet = true
		c.details = append(c.details, "Price/RSI divergence detected")
	}
	if c.patternMet {
		c.count++
	}

	// 4. Higher-timeframe alignment. Without HTF data the check is granted
	// rather than blocking.
	if rsiHTF, ok := snap.Float(snapshot.FieldRSIDaily); ok {
		if trend.direction == pattern.Bullish && rsiHTF < htfOverbought {
			c.htfMet = true
			c.details = append(c.details, fmt.Sprintf("HTF trend aligned (RSI HTF: %.2f)", rsiHTF))
		} else if trend.direction == pattern.Bearish && rsiHTF > htfOversold {
			c.htfMet = true
			c.details = append(c.details, fmt.Sprintf("HTF trend aligned (RSI HTF: %.2f)", rsiHTF))
		}
	} else {
		c.htfMet = true
		c.details = append(c.details, "HTF alignment: not required (no HTF data)")
	}
	if c.htfMet {
		c.count++
	}

	return c
}

// confluenceFailures explains each unmet check, in check order. The HTF line
// is only reported when HTF data was actually supplied.
func confluenceFailures(snap snapshot.Snapshot, trend trendContext, c confluenceSet) []string {
	var failed []string
	strict := snap.Bool(snapshot.FieldStrictMode)
	rsi, _ := snap.Float(snapshot.FieldRSI)

	if !c.rsiMet {
		if trend.direction == pattern.Bullish {
			threshold := rsiOversold
			if strict {
				threshold = rsiStrictOversold
			}
			failed = append(failed, fmt.Sprintf("RSI not oversold (%.2f > %d)", rsi, threshold))
		} else {
			threshold := rsiOverbought
			if strict {
				threshold = rsiStrictOverbought
			}
			failed = append(failed, fmt.Sprintf("RSI not overbought (%.2f < %d)", rsi, threshold))
		}
	}

	if !c.candleMet {
		if candle, ok := snap.String(snapshot.FieldCandleType); ok && candle != "" {
			failed = append(failed, fmt.Sprintf("Candle pattern '%s' does not support %s trend", candle, trend.direction))
		} else {
			failed = append(failed, "No candle confirmation provided")
		}
	}

	if !c.patternMet {
		failed = append(failed, "No chart pattern or divergence detected")
	}

	if !c.htfMet {
		rsiHTF, _ := snap.Float(snapshot.FieldRSIDaily)
		if trend.direction == pattern.Bullish {
			failed = append(failed, fmt.Sprintf("HTF RSI too high (%.2f >= %d)", rsiHTF, htfOverbought))
		} else {
			failed = append(failed, fmt.Sprintf("HTF RSI too low (%.2f <= %d)", rsiHTF, htfOversold))
		}
	}

	return failed
}

// gateConfidence is the fixed confidence reported when the confluence gate
// rejects. Counts of two or more never reach this table.
func gateConfidence(count int) float64 {
	switch count {
	case 1:
		return 35
	default:
		return 0
	}
}
