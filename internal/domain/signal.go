package domain

import (
	"math"
	"strings"
)

const (
	maxNoteLen    = 140
	noteSeparator = " • "
)

// ApplySignal folds one guest submission into a room's community-derived
// attributes and returns the updated room. Total: every draft in range
// produces a result, nothing is ever rejected. Each step is a bounded nudge,
// never a replacement, so a single bad-faith signal cannot dominate.
func ApplySignal(r Room, d SignalDraft) Room {
	if tag := strings.TrimSpace(d.Tag); tag != "" && !hasTag(r.Tags, tag) {
		tags := make([]string, 0, len(r.Tags)+1)
		tags = append(tags, r.Tags...)
		r.Tags = append(tags, tag)
	}

	// Never overwrite an existing note with emptiness; cap the merge at 140
	// characters.
	if note := strings.TrimSpace(d.Note); note != "" {
		merged := note
		if r.Notes != "" {
			merged = r.Notes + noteSeparator + note
		}
		r.Notes = truncate(merged, maxNoteLen)
	}

	r.Reports++
	r.Love = clamp(int(math.Round(float64(r.Love+d.Love)/2)), 1, 5)
	r.Quiet = clamp(r.Quiet+sliderBoost(d.Quiet), 1, 10)
	r.Access = clamp(r.Access+sliderBoost(d.Convenience), 1, 10)

	// d.ImageURL is accepted by the edge but Room has no image attribute;
	// deliberately dropped here.
	return r
}

// sliderBoost maps a 1..5 slider to a single-step nudge: 4..5 push up,
// 1..2 push down, 3 is neutral.
func sliderBoost(v int) int {
	switch {
	case v >= 4:
		return 1
	case v <= 2:
		return -1
	default:
		return 0
	}
}

func truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}
