package domain

import "sort"

type RankedRoom struct {
	Room  Room
	Match MatchResult
}

// RankRooms scores every room and returns the topN best matches, best first.
// The sort is stable: rooms with equal scores keep their catalog order, which
// matters at this score precision where ties are common.
func RankRooms(rooms []Room, p Preferences, topN int) []RankedRoom {
	out := make([]RankedRoom, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, RankedRoom{Room: r, Match: ComputeMatch(r, p)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Match.Score > out[j].Match.Score
	})
	if topN < 0 {
		topN = 0
	}
	if topN < len(out) {
		out = out[:topN]
	}
	return out
}
