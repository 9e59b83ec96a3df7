package pattern

// Candlestick confirmation tags, split by the direction they support.
var (
	BullishCandles = NewTagSet(
		"hammer",
		"bullish_engulfing",
		"morning_star",
		"bullish_pin_bar",
	)

	BearishCandles = NewTagSet(
		"shooting_star",
		"bearish_engulfing",
		"evening_star",
		"bearish_pin_bar",
	)
)

// CandleMatches reports whether the candle tag confirms the given direction.
func CandleMatches(tag string, d Direction) bool {
	switch d {
	case Bullish:
		return BullishCandles.Contains(tag)
	case Bearish:
		return BearishCandles.Contains(tag)
	}
	return false
}
