// seedtool scores the seeded demo catalog against a preference triple given
// on the command line and prints per-floor rankings as JSON. Handy for
// eyeballing seed balance after tuning room attributes.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"stay_scout/internal/adapters/observability"
	"stay_scout/internal/domain"
	"stay_scout/internal/shared"
	"stay_scout/internal/storage/memory"
)

type floorReport struct {
	Floor   int                 `json:"floor"`
	Name    string              `json:"name"`
	Ranking []domain.RankedRoom `json:"ranking"`
}

func main() {
	quiet := flag.Int("quiet", 50, "quiet-vs-access slider, 0..100")
	avoid := flag.Bool("avoid-elevator", false, "penalize rooms near the elevator")
	tolerance := flag.Int("tolerance", 5, "premium tolerance, 0..10 dollars")
	top := flag.Int("top", 8, "rooms per floor to report")
	workers := flag.Int("workers", 4, "concurrent floor scorers")
	flag.Parse()

	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	if *quiet < 0 || *quiet > 100 || *tolerance < 0 || *tolerance > 10 {
		log.Fatal().Int("quiet", *quiet).Int("tolerance", *tolerance).Msg("preferences out of range")
	}
	prefs := domain.Preferences{QuietVsAccess: *quiet, AvoidElevator: *avoid, PremiumTolerance: *tolerance}

	hotel := memory.SeedHotel()
	log.Info().Str("hotel", hotel.Name).Int("floors", len(hotel.Floors)).Msg("scoring seed catalog")

	ctx := context.Background()
	sem := semaphore.NewWeighted(int64(*workers))
	var wg sync.WaitGroup
	var mu sync.Mutex
	var reports []floorReport

	for _, f := range hotel.Floors {
		if f.Amenity {
			continue
		}
		f := f

		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			ranked := domain.RankRooms(f.Rooms, prefs, *top)
			mu.Lock()
			reports = append(reports, floorReport{Floor: f.Number, Name: f.Name, Ranking: ranked})
			mu.Unlock()
		}()
	}
	wg.Wait()

	sort.Slice(reports, func(i, j int) bool { return reports[i].Floor < reports[j].Floor })

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reports); err != nil {
		log.Fatal().Err(err).Msg("encode report failed")
	}
}
