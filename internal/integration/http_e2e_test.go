//go:build integration || !unit

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"golang.org/x/time/rate"

	server "stay_scout/internal/adapters/http_server"
	redisad "stay_scout/internal/adapters/redis"
	"stay_scout/internal/app"
	"stay_scout/internal/storage/memory"
)

func startAPI(t *testing.T) *httptest.Server {
	t.Helper()

	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	store := memory.New()

	q := app.NewMatchQueryService(store, cache, 10*time.Minute)
	c := app.NewCatalogCommandService(store, cache)

	srv := server.New()
	srv.MountHandlers(&server.Handlers{
		Q: q, C: c,
		Signals: rate.NewLimiter(rate.Limit(1000), 1000),
		TopN:    3,
	})
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func put(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	return send(t, http.MethodPut, url, body)
}

func post(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	return send(t, http.MethodPost, url, body)
}

func send(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		t.Fatalf("encode: %v", err)
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return res
}

type matchBody struct {
	Room struct {
		ID      int64
		Quiet   int
		Reports int
	}
	Match struct {
		Score          int
		SuggestedDelta int
		Confidence     string
	}
}

func getMatch(t *testing.T, base string, roomID string) matchBody {
	t.Helper()
	res, err := http.Get(base + "/v1/rooms/" + roomID + "/match")
	if err != nil {
		t.Fatalf("GET match: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("match status %d", res.StatusCode)
	}
	var out matchBody
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return out
}

// Full session flow over real wiring with a live (in-process) Redis:
// set preferences, read a match, submit a signal, and observe the match move
// with the mutated room rather than the stale cache entry.
func TestHTTP_EndToEnd_SessionFlow(t *testing.T) {
	ts := startAPI(t)

	res := put(t, ts.URL+"/v1/prefs", map[string]any{
		"quietVsAccess": 65, "avoidElevator": true, "premiumTolerance": 6,
	})
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("prefs status %d", res.StatusCode)
	}

	// Seed room 201: quiet 3, access 9, view 4, baseDelta -8, elevator note.
	// raw = 1.95 + 3.15 + 0.6 - 1.2 = 4.5 -> score 45, Low.
	// quietBias = round(-3.12) = -3 -> suggested -11, within [-15, 6].
	first := getMatch(t, ts.URL, "201")
	if first.Match.Score != 45 || first.Match.SuggestedDelta != -11 || first.Match.Confidence != "Low" {
		t.Fatalf("unexpected first match: %+v", first.Match)
	}

	// Read again: identical (and now served from the cache).
	if again := getMatch(t, ts.URL, "201"); again.Match != first.Match {
		t.Fatalf("repeat read diverged: %+v vs %+v", again.Match, first.Match)
	}

	// A strongly positive signal nudges quiet 3 -> 4.
	res = post(t, ts.URL+"/v1/rooms/201/signals", map[string]any{
		"quiet": 5, "love": 5, "convenience": 3, "tag": "improving",
	})
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("signal status %d", res.StatusCode)
	}

	second := getMatch(t, ts.URL, "201")
	if second.Room.Quiet != 4 || second.Room.Reports != 1 {
		t.Fatalf("signal not merged: %+v", second.Room)
	}
	if second.Match.Score <= first.Match.Score {
		t.Fatalf("stale match after mutation: %d then %d", first.Match.Score, second.Match.Score)
	}

	// Tolerance stays a ceiling across the whole flow.
	if second.Match.SuggestedDelta > 6 {
		t.Fatalf("delta above tolerance: %d", second.Match.SuggestedDelta)
	}
}

func TestHTTP_EndToEnd_RankingFollowsPreferences(t *testing.T) {
	ts := startAPI(t)

	rank := func() []int64 {
		res, err := http.Get(ts.URL + "/v1/floors/3/ranking?top=8")
		if err != nil {
			t.Fatalf("GET ranking: %v", err)
		}
		defer res.Body.Close()
		var out []struct {
			Room struct{ ID int64 }
		}
		if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		ids := make([]int64, 0, len(out))
		for _, r := range out {
			ids = append(ids, r.Room.ID)
		}
		return ids
	}

	res := put(t, ts.URL+"/v1/prefs", map[string]any{"quietVsAccess": 100, "premiumTolerance": 10})
	res.Body.Close()
	quietFirst := rank()

	res = put(t, ts.URL+"/v1/prefs", map[string]any{"quietVsAccess": 0, "premiumTolerance": 10})
	res.Body.Close()
	accessFirst := rank()

	// Seed floor 3 trades quiet against access monotonically: the fully
	// quiet-weighted guest and the fully access-weighted guest must disagree
	// about the best room.
	if quietFirst[0] == accessFirst[0] {
		t.Fatalf("ranking ignored preferences: %v vs %v", quietFirst, accessFirst)
	}
}
