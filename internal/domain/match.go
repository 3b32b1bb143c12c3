package domain

import (
	"math"
	"strings"
)

// Rate-delta bounds in whole dollars. The lower bound applies regardless of
// the guest's premium tolerance; tolerance only ever caps the upside.
const (
	MinDelta = -15
	MaxDelta = 18
)

const elevatorPenalty = 1.2

// ComputeMatch scores a room against the guest's stated tradeoffs. Pure and
// deterministic: identical inputs always yield identical results. All
// rounding here (and in ApplySignal) is round-half-away-from-zero, i.e.
// math.Round.
func ComputeMatch(r Room, p Preferences) MatchResult {
	qw := float64(p.QuietVsAccess) / 100
	aw := 1 - qw

	penalty := 0.0
	if p.AvoidElevator && (hasTag(r.Tags, "noisy") ||
		strings.Contains(strings.ToLower(r.Notes), "elevator")) {
		penalty = elevatorPenalty
	}

	raw := float64(r.Quiet)*qw + float64(r.Access)*aw + float64(r.View)*0.15 - penalty
	score := clamp(int(math.Round(raw*10)), 0, 100)

	// Signed bias rewarding quietness relative to the neutral midpoint of 5,
	// scaled by how quiet-weighted the guest is.
	quietBias := int(math.Round(float64(r.Quiet-5) * 1.2 * qw * 2))

	// Order matters: bound the raw suggestion first, then cap by tolerance.
	suggested := clamp(quietBias+r.BaseDelta, MinDelta, MaxDelta)
	applied := clamp(suggested, MinDelta, p.PremiumTolerance)

	return MatchResult{
		Score:          score,
		SuggestedDelta: applied,
		Confidence:     confidenceFor(score),
	}
}

func confidenceFor(score int) Confidence {
	switch {
	case score >= 85:
		return ConfidenceHigh
	case score >= 70:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
