package domain_test

import (
	"testing"

	"stay_scout/internal/domain"
)

func seedLandmarks() []domain.Landmark {
	return []domain.Landmark{
		{ID: "lm-elevator", Type: domain.LandmarkElevator, Index: 0},
		{ID: "lm-ice", Type: domain.LandmarkIce, Index: 2},
		{ID: "lm-stairs", Type: domain.LandmarkStairs, Index: 5},
	}
}

func TestRepositionLandmark(t *testing.T) {
	in := seedLandmarks()
	out := domain.RepositionLandmark(in, "lm-ice", 3)

	for _, lm := range out {
		switch lm.ID {
		case "lm-ice":
			if lm.Index != 3 {
				t.Fatalf("moved landmark index: got %d, want 3", lm.Index)
			}
		case "lm-elevator":
			if lm.Index != 0 {
				t.Fatalf("untouched landmark moved: %+v", lm)
			}
		case "lm-stairs":
			if lm.Index != 5 {
				t.Fatalf("untouched landmark moved: %+v", lm)
			}
		}
	}
	if in[1].Index != 2 {
		t.Fatalf("input collection mutated: %+v", in[1])
	}

	// Repeating the same move is idempotent.
	again := domain.RepositionLandmark(out, "lm-ice", 3)
	for i := range again {
		if again[i] != out[i] {
			t.Fatalf("repeat move changed state: %+v vs %+v", again[i], out[i])
		}
	}
}

func TestRepositionLandmark_UnknownIDIsNoop(t *testing.T) {
	in := seedLandmarks()
	out := domain.RepositionLandmark(in, "lm-gone", 9)
	if len(out) != len(in) {
		t.Fatalf("length changed: %d", len(out))
	}
	for i := range out {
		if out[i] != in[i] {
			t.Fatalf("no-op changed landmark %d: %+v", i, out[i])
		}
	}
}

func TestRepositionLandmark_SharedSlotIsLegal(t *testing.T) {
	out := domain.RepositionLandmark(seedLandmarks(), "lm-ice", 5)
	shared := 0
	for _, lm := range out {
		if lm.Index == 5 {
			shared++
		}
	}
	if shared != 2 {
		t.Fatalf("expected two landmarks at slot 5, got %d", shared)
	}

	// Index beyond the current slot count is accepted; the renderer expands.
	out = domain.RepositionLandmark(out, "lm-elevator", 40)
	if out[0].Index != 40 {
		t.Fatalf("out-of-range slot rejected: %+v", out[0])
	}
}

func TestAddLandmark(t *testing.T) {
	out := domain.AddLandmark(seedLandmarks(), domain.LandmarkGym)
	if len(out) != 4 {
		t.Fatalf("length: got %d, want 4", len(out))
	}
	added := out[3]
	if added.Type != domain.LandmarkGym {
		t.Fatalf("type: %s", added.Type)
	}
	if added.Index != 6 { // max existing index 5 + 1
		t.Fatalf("index: got %d, want 6", added.Index)
	}
	if added.ID == "" {
		t.Fatalf("missing generated id")
	}

	// Fresh ids on every add.
	second := domain.AddLandmark(out, domain.LandmarkBar)
	if second[4].ID == added.ID {
		t.Fatalf("id reused: %s", added.ID)
	}

	// Empty collection starts at slot 1.
	first := domain.AddLandmark(nil, domain.LandmarkOther)
	if len(first) != 1 || first[0].Index != 1 {
		t.Fatalf("empty add: %+v", first)
	}
}
