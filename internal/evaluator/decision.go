package evaluator

import "signaleval/internal/snapshot"

// Status is the trade recommendation.
type Status string

const (
	StatusLong    Status = "long"
	StatusShort   Status = "short"
	StatusNoTrade Status = "no_trade"
)

// Reason is the closed taxonomy of decision outcomes. Every rejection is a
// normal no_trade decision with one of these codes, never an error.
type Reason string

const (
	ReasonDataInvalid           Reason = "data_invalid"
	ReasonNotEnoughConfluences  Reason = "not_enough_confluences"
	ReasonConfidenceTooLow      Reason = "confidence_too_low"
	ReasonInvalidRiskParameters Reason = "invalid_risk_parameters"
	ReasonAllConditionsMet      Reason = "all_conditions_met"
)

// Decision is the evaluator output for one snapshot. Entry, StopLoss,
// TakeProfit and RRR are nil exactly when Status is no_trade. Instrument,
// Timeframe and Timestamp echo the snapshot values verbatim on every path,
// nil when the snapshot omitted them.
type Decision struct {
	Status     Status   `json:"status"`
	Reason     Reason   `json:"reason"`
	Entry      *float64 `json:"entry"`
	StopLoss   *float64 `json:"stop_loss"`
	TakeProfit *float64 `json:"take_profit"`
	RRR        *float64 `json:"rrr"`
	Confidence float64  `json:"confidence"`
	Message    string   `json:"message"`
	Instrument any      `json:"instrument"`
	Timeframe  any      `json:"timeframe"`
	Timestamp  any      `json:"timestamp"`
}

// rejection builds a no_trade decision carrying the passthrough fields.
func rejection(snap snapshot.Snapshot, reason Reason, confidence float64, message string) Decision {
	return Decision{
		Status:     StatusNoTrade,
		Reason:     reason,
		Confidence: confidence,
		Message:    message,
		Instrument: snap.Raw(snapshot.FieldInstrument),
		Timeframe:  snap.Raw(snapshot.FieldTimeframe),
		Timestamp:  snap.Raw(snapshot.FieldTimestamp),
	}
}

func f64(v float64) *float64 { return &v }
