package evaluator

import (
	"github.com/shopspring/decimal"

	"signaleval/internal/pattern"
	"signaleval/internal/snapshot"
)

// Stop distance starts at atrStopMultiple times ATR; the take-profit target
// is always targetRatio times the final stop distance.
const (
	atrStopMultiple = 1.5
	targetRatio     = 2.0
)

// Rounding applied to the terminal output only.
const (
	priceDecimals = 5
	rrrDecimals   = 2
)

// riskParams holds the rounded entry/stop/target levels for a signal.
type riskParams struct {
	entry      float64
	stopLoss   float64
	takeProfit float64
	rrr        float64
}

// computeRisk derives the risk levels. The ATR-based stop is widened, never
// narrowed, when a recent swing level sits further from entry, so structure
// is always respected.
func computeRisk(snap snapshot.Snapshot, dir pattern.Direction) riskParams {
	entry, _ := snap.Float(snapshot.FieldClose)
	atr, _ := snap.Float(snapshot.FieldATR)

	slDistance := atrStopMultiple * atr

	if dir == pattern.Bullish {
		if swingLow, ok := snap.Float(snapshot.FieldRecentSwingLow); ok {
			if structural := entry - swingLow; structural > slDistance {
				slDistance = structural
			}
		}
	} else {
		if swingHigh, ok := snap.Float(snapshot.FieldRecentSwingHigh); ok {
			if structural := swingHigh - entry; structural > slDistance {
				slDistance = structural
			}
		}
	}

	tpDistance := targetRatio * slDistance

	var stopLoss, takeProfit float64
	if dir == pattern.Bullish {
		stopLoss = entry - slDistance
		takeProfit = entry + tpDistance
	} else {
		stopLoss = entry + slDistance
		takeProfit = entry - tpDistance
	}

	rrr := 0.0
	if slDistance != 0 {
		rrr = tpDistance / slDistance
	}

	return riskParams{
		entry:      roundTo(entry, priceDecimals),
		stopLoss:   roundTo(stopLoss, priceDecimals),
		takeProfit: roundTo(takeProfit, priceDecimals),
		rrr:        roundTo(rrr, rrrDecimals),
	}
}

// sane re-validates SL/TP ordering against the entry for the direction.
// Unreachable under the arithmetic above, kept as a final invariant check.
func (r riskParams) sane(dir pattern.Direction) bool {
	if dir == pattern.Bullish {
		return r.stopLoss < r.entry && r.takeProfit > r.entry
	}
	return r.stopLoss > r.entry && r.takeProfit < r.entry
}

// roundTo rounds v to the given number of decimal places using exact
// decimal arithmetic.
func roundTo(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
