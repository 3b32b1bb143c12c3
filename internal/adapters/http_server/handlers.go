package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"stay_scout/internal/app"
	"stay_scout/internal/domain"
)

type Handlers struct {
	Q       *app.MatchQueryService
	C       *app.CatalogCommandService
	Signals *rate.Limiter // gate on POST signals
	TopN    int           // default ranking size when ?top is absent

	v *validator.Validate
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	h.v = validator.New()
	if h.TopN <= 0 {
		h.TopN = 3
	}
	if h.Signals == nil {
		h.Signals = rate.NewLimiter(rate.Limit(5), 10)
	}

	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/hotel", h.getHotel)
	s.mux.Get("/v1/prefs", h.getPrefs)
	s.mux.Put("/v1/prefs", h.putPrefs)
	s.mux.Get("/v1/floors/{no}/rooms", h.listFloorRooms)
	s.mux.Get("/v1/floors/{no}/ranking", h.rankFloor)
	s.mux.Get("/v1/rooms/{id}/match", h.getRoomMatch)
	s.mux.With(Throttle(h.Signals)).Post("/v1/rooms/{id}/signals", h.postSignal)
	s.mux.Post("/v1/floors/{no}/landmarks", h.addLandmark)
	s.mux.Patch("/v1/landmarks/{id}", h.moveLandmark)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// decodeValid decodes the body into dst and applies its validate tags. The
// core never validates; out-of-range caller input has to die here.
func (h *Handlers) decodeValid(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return h.v.Struct(dst)
}

func (h *Handlers) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
		return
	}
	writeProblem(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func urlInt(r *http.Request, key string) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, key))
	return n, err == nil
}

// ---- queries ----

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.Q.Hotel(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	etag, body := calcETagAndBody(toHotelView(hotel))
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write getHotel body")
	}
}

func (h *Handlers) getPrefs(w http.ResponseWriter, r *http.Request) {
	p, err := h.Q.Preferences(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prefsRequest{
		QuietVsAccess: p.QuietVsAccess, AvoidElevator: p.AvoidElevator, PremiumTolerance: p.PremiumTolerance,
	})
}

func (h *Handlers) listFloorRooms(w http.ResponseWriter, r *http.Request) {
	no, ok := urlInt(r, "no")
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid floor", "floor number must be an integer")
		return
	}
	floor, rooms, err := h.Q.FloorMatches(r.Context(), no)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Floor floorView    `json:"floor"`
		Rooms []rankedView `json:"rooms"`
	}{toFloorView(floor), toRankedViews(rooms)})
}

func (h *Handlers) rankFloor(w http.ResponseWriter, r *http.Request) {
	no, ok := urlInt(r, "no")
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid floor", "floor number must be an integer")
		return
	}
	topN := h.TopN
	if ts := r.URL.Query().Get("top"); ts != "" {
		n, err := strconv.Atoi(ts)
		if err != nil || n <= 0 || n > 50 {
			writeProblem(w, http.StatusBadRequest, "Invalid top", "top must be an integer between 1 and 50")
			return
		}
		topN = n
	}
	ranked, err := h.Q.RankFloor(r.Context(), no, topN)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRankedViews(ranked))
}

func (h *Handlers) getRoomMatch(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	room, m, err := h.Q.RoomMatch(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rankedView{Room: toRoomView(room), Match: toMatchView(m)})
}

// ---- commands ----

func (h *Handlers) putPrefs(w http.ResponseWriter, r *http.Request) {
	var req prefsRequest
	if err := h.decodeValid(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid preferences", err.Error())
		return
	}
	p := domain.Preferences{
		QuietVsAccess:    req.QuietVsAccess,
		AvoidElevator:    req.AvoidElevator,
		PremiumTolerance: req.PremiumTolerance,
	}
	if err := h.C.UpdatePreferences(r.Context(), p); err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *Handlers) postSignal(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	var req signalRequest
	if err := h.decodeValid(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid signal", err.Error())
		return
	}
	room, err := h.C.SubmitSignal(r.Context(), id, domain.SignalDraft{
		Quiet: req.Quiet, Love: req.Love, Convenience: req.Convenience,
		Tag: req.Tag, Note: req.Note, ImageURL: req.ImageURL,
	})
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRoomView(room))
}

func (h *Handlers) addLandmark(w http.ResponseWriter, r *http.Request) {
	no, ok := urlInt(r, "no")
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid floor", "floor number must be an integer")
		return
	}
	var req landmarkAddRequest
	if err := h.decodeValid(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid landmark", err.Error())
		return
	}
	out, err := h.C.PlaceLandmark(r.Context(), no, domain.LandmarkType(req.Type))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toLandmarkViews(out))
}

func (h *Handlers) moveLandmark(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req landmarkMoveRequest
	if err := h.decodeValid(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid move", err.Error())
		return
	}
	out, err := h.C.MoveLandmark(r.Context(), req.Floor, id, req.Index)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toLandmarkViews(out))
}
