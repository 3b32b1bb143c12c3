package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"stay_scout/internal/adapters/observability"
	"stay_scout/internal/domain"
)

// CatalogCommandService applies guest and staff mutations to the catalog.
// Every mutation is an atomic read-modify-write against one entity by
// identifier, expressed as a pure domain transform. Versioned cache keys make
// eager invalidation unnecessary; superseded entries are deleted best-effort
// and otherwise age out by TTL.
type CatalogCommandService struct {
	store domain.CatalogStore
	cache domain.Cache
}

func NewCatalogCommandService(st domain.CatalogStore, c domain.Cache) *CatalogCommandService {
	return &CatalogCommandService{store: st, cache: c}
}

// SubmitSignal folds a guest signal draft into the room. The draft's ImageURL
// is accepted but dropped: rooms carry no image attribute.
func (s *CatalogCommandService) SubmitSignal(ctx context.Context, roomID int64, draft domain.SignalDraft) (domain.Room, error) {
	ver, _ := s.store.Version(ctx)
	prefs, _ := s.store.Preferences(ctx)

	room, err := s.store.UpdateRoom(ctx, roomID, func(r domain.Room) domain.Room {
		return domain.ApplySignal(r, draft)
	})
	if err != nil {
		return domain.Room{}, err
	}
	observability.ObserveSignal()
	log.Info().Int64("room", roomID).Int("reports", room.Reports).Msg("signal merged")

	_ = s.cache.Del(ctx, matchKey(roomID, ver, prefs))
	return room, nil
}

// MoveLandmark reassigns one landmark's hallway slot. An unknown landmark id
// is a no-op by design (stale drag handles must not fail); an unknown floor
// is an error.
func (s *CatalogCommandService) MoveLandmark(ctx context.Context, floorNumber int, landmarkID string, slot int) ([]domain.Landmark, error) {
	out, err := s.store.UpdateLandmarks(ctx, floorNumber, func(ls []domain.Landmark) []domain.Landmark {
		return domain.RepositionLandmark(ls, landmarkID, slot)
	})
	if err != nil {
		return nil, err
	}
	observability.ObserveLandmark("move")
	return out, nil
}

// PlaceLandmark adds a landmark from the staff palette, one slot past the
// floor's current maximum.
func (s *CatalogCommandService) PlaceLandmark(ctx context.Context, floorNumber int, t domain.LandmarkType) ([]domain.Landmark, error) {
	out, err := s.store.UpdateLandmarks(ctx, floorNumber, func(ls []domain.Landmark) []domain.Landmark {
		return domain.AddLandmark(ls, t)
	})
	if err != nil {
		return nil, err
	}
	observability.ObserveLandmark("add")
	return out, nil
}

// UpdatePreferences replaces the session preference triple. Cache keys embed
// the preference hash, so nothing needs invalidating here.
func (s *CatalogCommandService) UpdatePreferences(ctx context.Context, p domain.Preferences) error {
	return s.store.SetPreferences(ctx, p)
}
