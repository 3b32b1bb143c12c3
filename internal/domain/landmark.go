package domain

import "github.com/google/uuid"

// RepositionLandmark returns a copy of the collection with the identified
// landmark moved to newIndex. An unknown id is a no-op returning an unchanged
// copy: the caller may be holding a stale drag handle, and that must never be
// fatal. No bound is placed on newIndex; the renderer grows its slot count to
// the maximum observed index, and shared slots are legal.
func RepositionLandmark(landmarks []Landmark, id string, newIndex int) []Landmark {
	out := make([]Landmark, len(landmarks))
	copy(out, landmarks)
	for i := range out {
		if out[i].ID == id {
			out[i].Index = newIndex
		}
	}
	return out
}

// AddLandmark appends a landmark of the given type one slot past the current
// maximum, with a freshly generated identifier.
func AddLandmark(landmarks []Landmark, t LandmarkType) []Landmark {
	maxIdx := 0
	for _, lm := range landmarks {
		if lm.Index > maxIdx {
			maxIdx = lm.Index
		}
	}
	out := make([]Landmark, 0, len(landmarks)+1)
	out = append(out, landmarks...)
	return append(out, Landmark{ID: uuid.NewString(), Type: t, Index: maxIdx + 1})
}
