package httpserver

import "stay_scout/internal/domain"

// ---- requests (validated at the edge so the core stays total) ----

type prefsRequest struct {
	QuietVsAccess    int  `json:"quietVsAccess" validate:"min=0,max=100"`
	AvoidElevator    bool `json:"avoidElevator"`
	PremiumTolerance int  `json:"premiumTolerance" validate:"min=0,max=10"`
}

type signalRequest struct {
	Quiet       int    `json:"quiet" validate:"min=1,max=5"`
	Love        int    `json:"love" validate:"min=1,max=5"`
	Convenience int    `json:"convenience" validate:"min=1,max=5"`
	Tag         string `json:"tag" validate:"omitempty,max=24"`
	Note        string `json:"note" validate:"omitempty,max=140"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
}

type landmarkAddRequest struct {
	Type string `json:"type" validate:"required,oneof=elevator stairs ice laundry gym bar staff other"`
}

type landmarkMoveRequest struct {
	Floor int `json:"floor" validate:"min=1"`
	Index int `json:"index" validate:"min=0"`
}

// ---- views ----

type matchView struct {
	Score          int    `json:"score"`
	SuggestedDelta int    `json:"suggestedDelta"`
	Confidence     string `json:"confidence"`
}

type roomView struct {
	ID        int64    `json:"id"`
	Number    string   `json:"number"`
	Wing      string   `json:"wing"`
	Position  int      `json:"position"`
	Quiet     int      `json:"quiet"`
	View      int      `json:"view"`
	Access    int      `json:"access"`
	BaseDelta int      `json:"baseDelta"`
	Tags      []string `json:"tags"`
	Notes     string   `json:"notes"`
	Reports   int      `json:"reports"`
	Love      int      `json:"love"`
}

type rankedView struct {
	Room  roomView  `json:"room"`
	Match matchView `json:"match"`
}

type landmarkView struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Index int    `json:"index"`
}

type floorView struct {
	Number    int            `json:"number"`
	Name      string         `json:"name"`
	Feature   string         `json:"feature,omitempty"`
	Amenity   bool           `json:"amenity"`
	RoomCount int            `json:"roomCount"`
	Landmarks []landmarkView `json:"landmarks"`
}

type hotelView struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	Location string      `json:"location"`
	BaseRate int         `json:"baseRate"`
	Floors   []floorView `json:"floors"`
}

// ---- mapping ----

func toMatchView(m domain.MatchResult) matchView {
	return matchView{Score: m.Score, SuggestedDelta: m.SuggestedDelta, Confidence: string(m.Confidence)}
}

func toRoomView(r domain.Room) roomView {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return roomView{
		ID: r.ID, Number: r.Number, Wing: string(r.Wing), Position: r.Position,
		Quiet: r.Quiet, View: r.View, Access: r.Access, BaseDelta: r.BaseDelta,
		Tags: tags, Notes: r.Notes, Reports: r.Reports, Love: r.Love,
	}
}

func toRankedViews(in []domain.RankedRoom) []rankedView {
	out := make([]rankedView, 0, len(in))
	for _, rr := range in {
		out = append(out, rankedView{Room: toRoomView(rr.Room), Match: toMatchView(rr.Match)})
	}
	return out
}

func toLandmarkViews(in []domain.Landmark) []landmarkView {
	out := make([]landmarkView, 0, len(in))
	for _, lm := range in {
		out = append(out, landmarkView{ID: lm.ID, Type: string(lm.Type), Index: lm.Index})
	}
	return out
}

func toFloorView(f domain.Floor) floorView {
	return floorView{
		Number: f.Number, Name: f.Name, Feature: f.Feature, Amenity: f.Amenity,
		RoomCount: len(f.Rooms), Landmarks: toLandmarkViews(f.Landmarks),
	}
}

func toHotelView(h domain.Hotel) hotelView {
	floors := make([]floorView, 0, len(h.Floors))
	for _, f := range h.Floors {
		floors = append(floors, toFloorView(f))
	}
	return hotelView{ID: h.ID, Name: h.Name, Location: h.Location, BaseRate: h.BaseRate, Floors: floors}
}
