package memory

import "stay_scout/internal/domain"

// Fixed demo catalog: one boutique hotel, a roomless amenity floor plus two
// guest floors of eight rooms each. Odd numbers on the left wing, even on the
// right. Values are hand-tuned so scores spread across all three confidence
// bands under mid-range preferences.

func SeedPreferences() domain.Preferences {
	return domain.Preferences{QuietVsAccess: 50, AvoidElevator: false, PremiumTolerance: 5}
}

func SeedHotel() domain.Hotel {
	return domain.Hotel{
		ID:       71001,
		Name:     "The Larkspur House",
		Location: "Portland, OR",
		BaseRate: 149,
		Floors: []domain.Floor{
			{
				Number:  1,
				Name:    "Lobby",
				Feature: "24h coffee bar",
				Amenity: true,
				Landmarks: []domain.Landmark{
					{ID: "lm-1-elevator", Type: domain.LandmarkElevator, Index: 0},
					{ID: "lm-1-bar", Type: domain.LandmarkBar, Index: 2},
					{ID: "lm-1-staff", Type: domain.LandmarkStaff, Index: 4},
					{ID: "lm-1-gym", Type: domain.LandmarkGym, Index: 6},
				},
			},
			{
				Number:  2,
				Name:    "Garden Floor",
				Feature: "courtyard-facing rooms",
				Rooms: []domain.Room{
					{ID: 201, Number: "201", Wing: domain.WingLeft, Position: 0, Quiet: 3, View: 4, Access: 9, BaseDelta: -8, Tags: []string{"deal"}, Notes: "Next to elevator", Love: 2},
					{ID: 202, Number: "202", Wing: domain.WingRight, Position: 0, Quiet: 4, View: 5, Access: 8, BaseDelta: -4, Love: 3},
					{ID: 203, Number: "203", Wing: domain.WingLeft, Position: 1, Quiet: 5, View: 6, Access: 7, BaseDelta: 0, Love: 3},
					{ID: 204, Number: "204", Wing: domain.WingRight, Position: 1, Quiet: 6, View: 4, Access: 7, BaseDelta: 2, Tags: []string{"noisy"}, Notes: "Ice machine hums at night", Love: 2},
					{ID: 205, Number: "205", Wing: domain.WingLeft, Position: 2, Quiet: 7, View: 6, Access: 5, BaseDelta: 4, Love: 4},
					{ID: 206, Number: "206", Wing: domain.WingRight, Position: 2, Quiet: 7, View: 7, Access: 5, BaseDelta: 6, Tags: []string{"garden"}, Love: 4},
					{ID: 207, Number: "207", Wing: domain.WingLeft, Position: 3, Quiet: 8, View: 5, Access: 4, BaseDelta: 8, Notes: "End of the hall, very still", Love: 4},
					{ID: 208, Number: "208", Wing: domain.WingRight, Position: 3, Quiet: 9, View: 6, Access: 3, BaseDelta: 10, Tags: []string{"corner"}, Love: 5},
				},
				Landmarks: []domain.Landmark{
					{ID: "lm-2-elevator", Type: domain.LandmarkElevator, Index: 0},
					{ID: "lm-2-ice", Type: domain.LandmarkIce, Index: 3},
					{ID: "lm-2-stairs", Type: domain.LandmarkStairs, Index: 7},
				},
			},
			{
				Number:  3,
				Name:    "Skyline Floor",
				Feature: "city views, quieter wing",
				Rooms: []domain.Room{
					{ID: 301, Number: "301", Wing: domain.WingLeft, Position: 0, Quiet: 4, View: 7, Access: 9, BaseDelta: -6, Notes: "Elevator bank around the corner", Love: 3},
					{ID: 302, Number: "302", Wing: domain.WingRight, Position: 0, Quiet: 5, View: 8, Access: 8, BaseDelta: 0, Love: 3},
					{ID: 303, Number: "303", Wing: domain.WingLeft, Position: 1, Quiet: 6, View: 8, Access: 6, BaseDelta: 3, Tags: []string{"view"}, Love: 4},
					{ID: 304, Number: "304", Wing: domain.WingRight, Position: 1, Quiet: 6, View: 9, Access: 6, BaseDelta: 5, Tags: []string{"view"}, Love: 4},
					{ID: 305, Number: "305", Wing: domain.WingLeft, Position: 2, Quiet: 8, View: 8, Access: 5, BaseDelta: 9, Love: 5},
					{ID: 306, Number: "306", Wing: domain.WingRight, Position: 2, Quiet: 8, View: 9, Access: 4, BaseDelta: 12, Tags: []string{"view", "corner"}, Love: 5},
					{ID: 307, Number: "307", Wing: domain.WingLeft, Position: 3, Quiet: 9, View: 7, Access: 3, BaseDelta: 14, Notes: "Furthest from the elevator", Love: 5},
					{ID: 308, Number: "308", Wing: domain.WingRight, Position: 3, Quiet: 10, View: 9, Access: 2, BaseDelta: 18, Tags: []string{"corner"}, Love: 5},
				},
				Landmarks: []domain.Landmark{
					{ID: "lm-3-elevator", Type: domain.LandmarkElevator, Index: 0},
					{ID: "lm-3-laundry", Type: domain.LandmarkLaundry, Index: 4},
					{ID: "lm-3-stairs", Type: domain.LandmarkStairs, Index: 7},
				},
			},
		},
	}
}
