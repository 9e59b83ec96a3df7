// Package evaluator turns one market snapshot into a trading decision. The
// pipeline runs five stages strictly forward — validation, trend
// classification, confluence analysis, risk calculation, confidence scoring —
// and any stage may short-circuit with a no_trade decision. Evaluation is a
// pure function of the snapshot: no state survives a call.
package evaluator

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"signaleval/internal/pattern"
	"signaleval/internal/snapshot"
)

// Evaluator runs the decision pipeline. The zero-configured Evaluator logs
// nothing; a logger can be attached for per-stage debug traces.
type Evaluator struct {
	log zerolog.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger attaches a logger for per-stage debug traces. Logging is
// side-band only and never influences the decision.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Evaluator) { e.log = log }
}

// New builds an Evaluator.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate is a convenience wrapper around a default Evaluator.
func Evaluate(snap snapshot.Snapshot) Decision {
	return New().Evaluate(snap)
}

// Evaluate runs the full pipeline on one snapshot and always returns a
// decision; rejections are decisions with a reason code, never errors.
func (e *Evaluator) Evaluate(snap snapshot.Snapshot) Decision {
	if msg, ok := validateRequired(snap); !ok {
		e.log.Debug().Str("reason", string(ReasonDataInvalid)).Msg(msg)
		return rejection(snap, ReasonDataInvalid, 0, msg)
	}

	trend := classifyTrend(snap)
	e.log.Debug().
		Str("trend", string(trend.direction)).
		Bool("htf_filter", trend.usedHTF).
		Msg("trend classified")

	confluences := evaluateConfluences(snap, trend)
	e.log.Debug().
		Int("count", confluences.count).
		Strs("details", confluences.details).
		Msg("confluences evaluated")

	if confluences.count < minConfluences {
		met := "None"
		if len(confluences.details) > 0 {
			met = strings.Join(confluences.details, "; ")
		}
		failed := strings.Join(confluenceFailures(snap, trend, confluences), "; ")
		msg := fmt.Sprintf("Only %d/4 confluences met. Need at least %d. Met: %s. Failed: %s",
			confluences.count, minConfluences, met, failed)
		return rejection(snap, ReasonNotEnoughConfluences, gateConfidence(confluences.count), msg)
	}

	direction := StatusLong
	if trend.direction == pattern.Bearish {
		direction = StatusShort
	}

	risk := computeRisk(snap, trend.direction)
	e.log.Debug().
		Float64("entry", risk.entry).
		Float64("stop_loss", risk.stopLoss).
		Float64("take_profit", risk.takeProfit).
		Msg("risk parameters computed")

	rsi, _ := snap.Float(snapshot.FieldRSI)
	score := confidenceScore(trend.direction, rsi, confluences)
	if score < minConfidence {
		msg := fmt.Sprintf("Confidence score %v%% is below minimum threshold of %d%%.", score, minConfidence)
		return rejection(snap, ReasonConfidenceTooLow, score, msg)
	}
	if score > maxConfidence {
		score = maxConfidence
	}

	if !risk.sane(trend.direction) {
		msg := fmt.Sprintf("Invalid SL/TP positioning for %s trade", direction)
		return rejection(snap, ReasonInvalidRiskParameters, score, msg)
	}

	return Decision{
		Status:     direction,
		Reason:     ReasonAllConditionsMet,
		Entry:      f64(risk.entry),
		StopLoss:   f64(risk.stopLoss),
		TakeProfit: f64(risk.takeProfit),
		RRR:        f64(risk.rrr),
		Confidence: score,
		Message:    successMessage(snap, trend, direction, confluences),
		Instrument: snap.Raw(snapshot.FieldInstrument),
		Timeframe:  snap.Raw(snapshot.FieldTimeframe),
		Timestamp:  snap.Raw(snapshot.FieldTimestamp),
	}
}

// validateRequired runs the two validation passes over the required fields:
// presence first, then non-null, each reported separately.
func validateRequired(snap snapshot.Snapshot) (string, bool) {
	var missing []string
	for _, field := range snapshot.Required {
		if !snap.Has(field) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")), false
	}

	var null []string
	for _, field := range snapshot.Required {
		if snap.IsNull(field) {
			null = append(null, field)
		}
	}
	if len(null) > 0 {
		return fmt.Sprintf("Fields with None values: %s", strings.Join(null, ", ")), false
	}

	return "", true
}

// successMessage assembles the pipe-separated summary for a tradable signal.
func successMessage(snap snapshot.Snapshot, trend trendContext, direction Status, c confluenceSet) string {
	htfStatus := "without HTF filter"
	if trend.usedHTF {
		htfStatus = "with HTF filter"
	}
	parts := []string{
		fmt.Sprintf("Timeframe: %v", snap.Raw(snapshot.FieldTimeframe)),
		fmt.Sprintf("Trend: %s (%s)", strings.ToUpper(string(trend.direction)), htfStatus),
		fmt.Sprintf("Signal: %s", strings.ToUpper(string(direction))),
		fmt.Sprintf("Confluences (%d/4): %s", c.count, strings.Join(c.details, "; ")),
	}
	return strings.Join(parts, " | ")
}
