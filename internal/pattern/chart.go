package pattern

// Chart pattern tags, split by the direction they support.
var (
	BullishCharts = NewTagSet(
		"double_bottom",
		"inverse_head_shoulders",
		"ascending_triangle",
		"bullish_flag",
		"cup_and_handle",
	)

	BearishCharts = NewTagSet(
		"double_top",
		"head_shoulders",
		"descending_triangle",
		"bearish_flag",
		"rising_wedge",
	)
)

// ChartMatches reports whether the chart pattern tag confirms the given
// direction.
func ChartMatches(tag string, d Direction) bool {
	switch d {
	case Bullish:
		return BullishCharts.Contains(tag)
	case Bearish:
		return BearishCharts.Contains(tag)
	}
	return false
}
