package domain_test

import (
	"testing"

	"stay_scout/internal/domain"
)

func TestRankRooms_DescendingAndStable(t *testing.T) {
	// 202 and 204 are identical and must tie; catalog order decides.
	rooms := []domain.Room{
		{ID: 201, Quiet: 4, Access: 4, View: 4},
		{ID: 202, Quiet: 6, Access: 6, View: 6},
		{ID: 203, Quiet: 9, Access: 9, View: 9},
		{ID: 204, Quiet: 6, Access: 6, View: 6},
	}
	p := domain.Preferences{QuietVsAccess: 50, PremiumTolerance: 5}

	out := domain.RankRooms(rooms, p, 10)
	if len(out) != 4 {
		t.Fatalf("length: got %d", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i].Match.Score > out[i-1].Match.Score {
			t.Fatalf("not descending at %d: %d > %d", i, out[i].Match.Score, out[i-1].Match.Score)
		}
	}
	if out[0].Room.ID != 203 {
		t.Fatalf("best room: got %d, want 203", out[0].Room.ID)
	}
	if out[1].Room.ID != 202 || out[2].Room.ID != 204 {
		t.Fatalf("tie order not stable: %d then %d", out[1].Room.ID, out[2].Room.ID)
	}
}

func TestRankRooms_TopN(t *testing.T) {
	rooms := []domain.Room{
		{ID: 1, Quiet: 3, Access: 3, View: 3},
		{ID: 2, Quiet: 8, Access: 8, View: 8},
		{ID: 3, Quiet: 5, Access: 5, View: 5},
	}
	p := domain.Preferences{QuietVsAccess: 50}

	if got := domain.RankRooms(rooms, p, 2); len(got) != 2 || got[0].Room.ID != 2 {
		t.Fatalf("topN=2: %+v", got)
	}
	if got := domain.RankRooms(rooms, p, 7); len(got) != 3 {
		t.Fatalf("topN beyond catalog: got %d rooms", len(got))
	}
	if got := domain.RankRooms(rooms, p, 0); len(got) != 0 {
		t.Fatalf("topN=0: got %d rooms", len(got))
	}
	if got := domain.RankRooms(nil, p, 5); len(got) != 0 {
		t.Fatalf("empty catalog: got %d rooms", len(got))
	}
}
