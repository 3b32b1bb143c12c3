package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"

	"stay_scout/internal/adapters/observability"
	"stay_scout/internal/domain"
)

// MatchQueryService serves match scores and rankings cache-aside. Keys embed
// the catalog version and a hash of the preferences, so a cached entry is
// byte-identical to a fresh recomputation by construction: any mutation bumps
// the version and strands the old keys until their TTL expires.
type MatchQueryService struct {
	store domain.CatalogStore
	cache domain.Cache
	ttl   time.Duration
}

func NewMatchQueryService(st domain.CatalogStore, c domain.Cache, ttl time.Duration) *MatchQueryService {
	return &MatchQueryService{store: st, cache: c, ttl: ttl}
}

func (s *MatchQueryService) Hotel(ctx context.Context) (domain.Hotel, error) {
	return s.store.Hotel(ctx)
}

func (s *MatchQueryService) Preferences(ctx context.Context) (domain.Preferences, error) {
	return s.store.Preferences(ctx)
}

// RoomMatch returns one room with its match under the session preferences.
func (s *MatchQueryService) RoomMatch(ctx context.Context, roomID int64) (domain.Room, domain.MatchResult, error) {
	room, err := s.store.Room(ctx, roomID)
	if err != nil {
		return domain.Room{}, domain.MatchResult{}, err
	}
	prefs, err := s.store.Preferences(ctx)
	if err != nil {
		return domain.Room{}, domain.MatchResult{}, err
	}
	ver, err := s.store.Version(ctx)
	if err != nil {
		return domain.Room{}, domain.MatchResult{}, err
	}

	key := matchKey(roomID, ver, prefs)
	var m domain.MatchResult
	if ok, _ := s.cache.Get(ctx, key, &m); ok {
		return room, m, nil
	}
	m = domain.ComputeMatch(room, prefs)
	observability.ObserveMatch()
	_ = s.cache.Set(ctx, key, m, int(s.ttl.Seconds()))
	return room, m, nil
}

// FloorMatches returns a floor with every room scored, catalog order. Cheap
// enough to compute inline on every call.
func (s *MatchQueryService) FloorMatches(ctx context.Context, floorNumber int) (domain.Floor, []domain.RankedRoom, error) {
	f, err := s.store.Floor(ctx, floorNumber)
	if err != nil {
		return domain.Floor{}, nil, err
	}
	prefs, err := s.store.Preferences(ctx)
	if err != nil {
		return domain.Floor{}, nil, err
	}
	out := make([]domain.RankedRoom, 0, len(f.Rooms))
	for _, r := range f.Rooms {
		out = append(out, domain.RankedRoom{Room: r, Match: domain.ComputeMatch(r, prefs)})
		observability.ObserveMatch()
	}
	return f, out, nil
}

// RankFloor returns the topN best matches on a floor, best first.
func (s *MatchQueryService) RankFloor(ctx context.Context, floorNumber, topN int) ([]domain.RankedRoom, error) {
	f, err := s.store.Floor(ctx, floorNumber)
	if err != nil {
		return nil, err
	}
	prefs, err := s.store.Preferences(ctx)
	if err != nil {
		return nil, err
	}
	ver, err := s.store.Version(ctx)
	if err != nil {
		return nil, err
	}

	key := rankKey(floorNumber, topN, ver, prefs)
	var out []domain.RankedRoom
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	out = domain.RankRooms(f.Rooms, prefs, topN)
	_ = s.cache.Set(ctx, key, out, int(s.ttl.Seconds()))
	return out, nil
}

func matchKey(roomID int64, ver uint64, p domain.Preferences) string {
	return fmt.Sprintf("match:%d:v%d:%s", roomID, ver, prefsHash(p))
}

func rankKey(floor, topN int, ver uint64, p domain.Preferences) string {
	return fmt.Sprintf("rank:%d:%d:v%d:%s", floor, topN, ver, prefsHash(p))
}

// prefsHash is a short stable digest of the preference triple.
func prefsHash(p domain.Preferences) string {
	sig := fmt.Sprintf("%d|%t|%d", p.QuietVsAccess, p.AvoidElevator, p.PremiumTolerance)
	sum := sha1.Sum([]byte(sig))
	return hex.EncodeToString(sum[:8])
}
