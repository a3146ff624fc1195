package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lib/pq"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
	"fyyur/internal/shows"
)

func showTestRouter(showRepo *mockShowRepo) *chi.Mux {
	h := NewShowHandler(showRepo)
	r := chi.NewRouter()
	r.Get("/shows", h.List)
	r.Post("/shows", h.Create)
	return r
}

func TestListShowsFormatsStartTime(t *testing.T) {
	start := time.Date(2026, time.October, 1, 20, 0, 0, 0, time.UTC)
	showRepo := &mockShowRepo{listRows: []models.ShowListingRow{
		{
			VenueID:    1,
			VenueName:  "The Musical Hop",
			ArtistID:   4,
			ArtistName: "Guns N Petals",
			StartTime:  start,
		},
	}}
	router := showTestRouter(showRepo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shows", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var listings []models.ShowListing
	if err := json.NewDecoder(w.Body).Decode(&listings); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(listings))
	}
	if listings[0].StartTime != shows.FormatStartTime(start) {
		t.Fatalf("expected formatted start time, got %q", listings[0].StartTime)
	}
	if listings[0].VenueName != "The Musical Hop" || listings[0].ArtistName != "Guns N Petals" {
		t.Fatalf("parent names missing: %+v", listings[0])
	}
}

func TestListShowsUpcomingFlag(t *testing.T) {
	showRepo := &mockShowRepo{}
	router := showTestRouter(showRepo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shows?upcoming=true", nil))
	if !showRepo.lastUpcomingOnly {
		t.Fatal("upcoming=true was not passed through to the store")
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shows", nil))
	if showRepo.lastUpcomingOnly {
		t.Fatal("listing should be unfiltered by default")
	}
}

func TestCreateShowAcceptsRFC3339(t *testing.T) {
	router := showTestRouter(&mockShowRepo{})

	body := `{"venue_id":1,"artist_id":4,"start_time":"2026-10-01T20:00:00Z"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/shows", strings.NewReader(body)))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var show models.Show
	if err := json.NewDecoder(w.Body).Decode(&show); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if show.ID == 0 || !show.StartTime.Equal(time.Date(2026, time.October, 1, 20, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected show: %+v", show)
	}
}

func TestCreateShowAcceptsSQLTimestamp(t *testing.T) {
	router := showTestRouter(&mockShowRepo{})

	body := `{"venue_id":1,"artist_id":4,"start_time":"2026-10-01 20:00:00"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/shows", strings.NewReader(body)))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateShowMalformedTimestampRejected(t *testing.T) {
	showRepo := &mockShowRepo{}
	router := showTestRouter(showRepo)

	body := `{"venue_id":1,"artist_id":4,"start_time":"next tuesday"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/shows", strings.NewReader(body)))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["error"] != "validation_error" {
		t.Fatalf("expected validation_error, got %q", resp["error"])
	}
}

func TestCreateShowMissingFieldsRejected(t *testing.T) {
	router := showTestRouter(&mockShowRepo{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/shows",
		strings.NewReader(`{"venue_id":1}`)))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateShowDanglingArtist(t *testing.T) {
	showRepo := &mockShowRepo{createErr: &interfaces.PersistenceError{
		Op:  "create show",
		Err: &pq.Error{Code: "23503", Constraint: "shows_artist_id_fkey"},
	}}
	router := showTestRouter(showRepo)

	body := `{"venue_id":1,"artist_id":999,"start_time":"2026-10-01T20:00:00Z"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/shows", strings.NewReader(body)))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["error"] != "invalid_artist_id" {
		t.Fatalf("expected invalid_artist_id, got %q", resp["error"])
	}
}

func TestCreateShowDanglingVenue(t *testing.T) {
	showRepo := &mockShowRepo{createErr: &interfaces.PersistenceError{
		Op:  "create show",
		Err: &pq.Error{Code: "23503", Constraint: "shows_venue_id_fkey"},
	}}
	router := showTestRouter(showRepo)

	body := `{"venue_id":999,"artist_id":4,"start_time":"2026-10-01T20:00:00Z"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/shows", strings.NewReader(body)))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["error"] != "invalid_venue_id" {
		t.Fatalf("expected invalid_venue_id, got %q", resp["error"])
	}
}
