// Package usecase contains the application business logic: payload
// processing, profile fusion, scoring, and route ranking. Use cases
// depend only on the domain layer and are exercised through interfaces
// by the adapter layer.
package usecase

import (
	"github.com/route-ranker/route-reliability-system/internal/domain"
)

// Provider bracket bounds, as exact "HH:MM:SS" span strings. The delay
// histogram is matched bound-for-bound; any bracket whose bounds are not
// recognized contributes nothing.
const (
	boundMinus15 = "-00:15:00"
	bound15      = "00:15:00"
	bound30      = "00:30:00"
	bound1h      = "01:00:00"
	bound2h      = "02:00:00"
)

// DelayBracket is the wire shape of one histogram bracket in the
// historical delay-statistics payload. Percentage is a 0..1 fraction.
type DelayBracket struct {
	DelayedFrom string  `json:"delayedFrom"`
	DelayedTo   string  `json:"delayedTo"`
	Percentage  float64 `json:"percentage"`
}

// NormalizeBrackets folds provider histogram brackets into the fixed
// four-bucket taxonomy, converting fractions to percentages. The
// open-ended bracket starting at two hours is folded into the severe
// bucket together with the bounded 1h-2h bracket.
func NormalizeBrackets(brackets []DelayBracket) domain.DelayBucketSet {
	var out domain.DelayBucketSet

	for _, b := range brackets {
		pct := b.Percentage * 100

		switch {
		case b.DelayedFrom == boundMinus15 && b.DelayedTo == bound15:
			out.OnTime = pct
		case b.DelayedFrom == bound15 && b.DelayedTo == bound30:
			out.Slight = pct
		case b.DelayedFrom == bound30 && b.DelayedTo == bound1h:
			out.Moderate = pct
		case b.DelayedFrom == bound1h && b.DelayedTo == bound2h:
			out.Severe += pct
		case b.DelayedFrom == bound2h:
			// Open-ended tail: everything beyond two hours.
			out.Severe += pct
		}
	}

	return out
}
