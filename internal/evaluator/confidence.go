package evaluator

import "signaleval/internal/pattern"

// Confidence gate and cap: scores under minConfidence reject the signal,
// scores above maxConfidence are reported as maxConfidence.
const (
	minConfidence = 60
	maxConfidence = 95
)

// confluenceComponent maps the confluence count to its weighted score
// (40-point component). Counts outside 2..4 cannot occur after the gate;
// the fallback keeps the function total anyway.
func confluenceComponent(count int) float64 {
	switch count {
	case 2:
		return 28
	case 3:
		return 34
	case 4:
		return 38
	default:
		return float64(count) / 4 * 40
	}
}

// rsiComponent scores RSI positioning (30-point component). The staircase
// rewards more extreme readings; first matching threshold wins.
func rsiComponent(dir pattern.Direction, rsi float64) float64 {
	if dir == pattern.Bullish {
		switch {
		case rsi <= 20:
			return 30
		case rsi <= 30:
			return 25
		case rsi <= 40:
			return 18
		default:
			return 10
		}
	}
	switch {
	case rsi >= 80:
		return 30
	case rsi >= 70:
		return 25
	case rsi >= 60:
		return 18
	default:
		return 10
	}
}

// qualityComponent scores pattern/candle confirmation quality (30-point
// component): both kinds present, one, or none.
func qualityComponent(candleMet, patternMet bool) float64 {
	switch {
	case candleMet && patternMet:
		return 30
	case candleMet || patternMet:
		return 20
	default:
		return 10
	}
}

// confidenceScore sums the three weighted components, rounded to one
// decimal place. Gating and capping happen at the call site so a rejection
// can still report the computed score.
func confidenceScore(dir pattern.Direction, rsi float64, c confluenceSet) float64 {
	sum := confluenceComponent(c.count) + rsiComponent(dir, rsi) + qualityComponent(c.candleMet, c.patternMet)
	return roundTo(sum, 1)
}
