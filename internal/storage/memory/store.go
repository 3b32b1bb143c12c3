package memory

import (
	"context"
	"sync"

	"stay_scout/internal/domain"
)

// Store owns the session's Hotel aggregate and Preferences. Reads hand out
// deep copies so callers can never alias the owned state; writes are atomic
// read-modify-write under the write lock, applied as pure transforms. The
// version counter bumps on every mutation and feeds cache keys upstream.
type Store struct {
	mu    sync.RWMutex
	hotel domain.Hotel
	prefs domain.Preferences
	ver   uint64

	// room id -> (floor slice index, room slice index), built once at seed
	rooms map[int64][2]int
}

// New returns a store holding the fixed demo catalog.
func New() *Store {
	return NewWith(SeedHotel(), SeedPreferences())
}

// NewWith returns a store holding the given catalog. Tests use it to start
// from a minimal fixture.
func NewWith(h domain.Hotel, p domain.Preferences) *Store {
	s := &Store{hotel: h, prefs: p, rooms: make(map[int64][2]int)}
	for fi := range h.Floors {
		for ri := range h.Floors[fi].Rooms {
			s.rooms[h.Floors[fi].Rooms[ri].ID] = [2]int{fi, ri}
		}
	}
	return s
}

func (s *Store) Hotel(_ context.Context) (domain.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyHotel(s.hotel), nil
}

func (s *Store) Floor(_ context.Context, number int) (domain.Floor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.hotel.Floors {
		if s.hotel.Floors[i].Number == number {
			return copyFloor(s.hotel.Floors[i]), nil
		}
	}
	return domain.Floor{}, domain.ErrNotFound
}

func (s *Store) Room(_ context.Context, id int64) (domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	loc, ok := s.rooms[id]
	if !ok {
		return domain.Room{}, domain.ErrNotFound
	}
	return copyRoom(s.hotel.Floors[loc[0]].Rooms[loc[1]]), nil
}

func (s *Store) Preferences(_ context.Context) (domain.Preferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs, nil
}

func (s *Store) Version(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ver, nil
}

func (s *Store) SetPreferences(_ context.Context, p domain.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = p
	s.ver++
	return nil
}

// UpdateRoom applies fn to the identified room under the write lock and
// returns the stored result. fn receives and returns a copy, so a transform
// that only reads is harmless.
func (s *Store) UpdateRoom(_ context.Context, id int64, fn func(domain.Room) domain.Room) (domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	loc, ok := s.rooms[id]
	if !ok {
		return domain.Room{}, domain.ErrNotFound
	}
	updated := fn(copyRoom(s.hotel.Floors[loc[0]].Rooms[loc[1]]))
	updated.ID = id // the transform must not re-home the room
	s.hotel.Floors[loc[0]].Rooms[loc[1]] = updated
	s.ver++
	return copyRoom(updated), nil
}

// UpdateLandmarks applies fn to the floor's landmark collection under the
// write lock and returns the stored result.
func (s *Store) UpdateLandmarks(_ context.Context, floorNumber int, fn func([]domain.Landmark) []domain.Landmark) ([]domain.Landmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.hotel.Floors {
		if s.hotel.Floors[i].Number != floorNumber {
			continue
		}
		updated := fn(copyLandmarks(s.hotel.Floors[i].Landmarks))
		s.hotel.Floors[i].Landmarks = updated
		s.ver++
		return copyLandmarks(updated), nil
	}
	return nil, domain.ErrNotFound
}

// ---- deep copies (the aggregate is never aliased outside the lock) ----

func copyHotel(h domain.Hotel) domain.Hotel {
	out := h
	out.Floors = make([]domain.Floor, len(h.Floors))
	for i := range h.Floors {
		out.Floors[i] = copyFloor(h.Floors[i])
	}
	return out
}

func copyFloor(f domain.Floor) domain.Floor {
	out := f
	out.Rooms = make([]domain.Room, len(f.Rooms))
	for i := range f.Rooms {
		out.Rooms[i] = copyRoom(f.Rooms[i])
	}
	out.Landmarks = copyLandmarks(f.Landmarks)
	return out
}

func copyRoom(r domain.Room) domain.Room {
	out := r
	if r.Tags != nil {
		out.Tags = make([]string, len(r.Tags))
		copy(out.Tags, r.Tags)
	}
	return out
}

func copyLandmarks(ls []domain.Landmark) []domain.Landmark {
	if ls == nil {
		return nil
	}
	out := make([]domain.Landmark, len(ls))
	copy(out, ls)
	return out
}
