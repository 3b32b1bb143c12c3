package domain

// Wing is one of the two room groupings on a floor. Odd room numbers sit on
// the left wing, even numbers on the right.
type Wing string

const (
	WingLeft  Wing = "left"
	WingRight Wing = "right"
)

type LandmarkType string

const (
	LandmarkElevator LandmarkType = "elevator"
	LandmarkStairs   LandmarkType = "stairs"
	LandmarkIce      LandmarkType = "ice"
	LandmarkLaundry  LandmarkType = "laundry"
	LandmarkGym      LandmarkType = "gym"
	LandmarkBar      LandmarkType = "bar"
	LandmarkStaff    LandmarkType = "staff"
	LandmarkOther    LandmarkType = "other"
)

// Room is one guest room. Quiet, View and Access stay in [1,10], Love in
// [1,5], Notes at most 140 characters after a merge; ApplySignal is the only
// mutator and clamps at every step.
type Room struct {
	ID        int64
	Number    string
	Wing      Wing
	Position  int
	Quiet     int
	View      int
	Access    int
	BaseDelta int // pre-seeded rate adjustment hint, -15..+18 dollars
	Tags      []string
	Notes     string
	Reports   int
	Love      int
}

// Landmark is a point amenity marker on a floor's hallway. Index is an
// abstract hallway slot; several landmarks may legally share one slot.
type Landmark struct {
	ID    string
	Type  LandmarkType
	Index int
}

type Floor struct {
	Number    int
	Name      string
	Feature   string
	Amenity   bool // true when the floor has no rooms (lobby, gym level)
	Rooms     []Room
	Landmarks []Landmark
}

type Hotel struct {
	ID       int64
	Name     string
	Location string
	BaseRate int // nightly rate, whole dollars
	Floors   []Floor
}
