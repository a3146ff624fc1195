package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
	"fyyur/internal/shows"
)

type VenueHandler struct {
	repo      interfaces.VenueRepository
	shows     interfaces.ShowRepository
	validator *validator.Validate
}

func NewVenueHandler(repo interfaces.VenueRepository, showRepo interfaces.ShowRepository) *VenueHandler {
	return &VenueHandler{
		repo:      repo,
		shows:     showRepo,
		validator: validator.New(),
	}
}

// ListAreas handles GET /api/v1/venues
// @Tags Venues
// @Summary List venues grouped by city and state
// @Produce json
// @Success 200 {array} models.Area
// @Router /api/v1/venues [get]
func (h *VenueHandler) ListAreas(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()

	pairs, err := h.repo.DistinctCityStates(r.Context())
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to list venues")
		return
	}

	areas := make([]models.Area, 0, len(pairs))
	for _, pair := range pairs {
		venues, err := h.repo.ListByCityState(r.Context(), pair.City, pair.State)
		if err != nil {
			writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to list venues")
			return
		}

		summaries := make([]models.VenueSummary, 0, len(venues))
		for _, venue := range venues {
			rows, err := h.shows.ForVenue(r.Context(), venue.ID)
			if err != nil {
				writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to list venues")
				return
			}
			summaries = append(summaries, models.VenueSummary{
				ID:               venue.ID,
				Name:             venue.Name,
				NumUpcomingShows: shows.NumUpcoming(rows, now),
			})
		}

		areas = append(areas, models.Area{
			City:   pair.City,
			State:  pair.State,
			Venues: summaries,
		})
	}

	writeJSON(w, http.StatusOK, areas)
}

// Search handles GET /api/v1/venues/search. An empty or whitespace
// search_term matches every venue.
func (h *VenueHandler) Search(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	term := strings.TrimSpace(r.URL.Query().Get("search_term"))

	venues, err := h.repo.SearchByName(r.Context(), term)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to search venues")
		return
	}

	data := make([]models.VenueSummary, 0, len(venues))
	for _, venue := range venues {
		rows, err := h.shows.ForVenue(r.Context(), venue.ID)
		if err != nil {
			writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to search venues")
			return
		}
		data = append(data, models.VenueSummary{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: shows.NumUpcoming(rows, now),
		})
	}

	writeJSON(w, http.StatusOK, models.VenueSearchResponse{
		Count: len(data),
		Data:  data,
	})
}

// Get handles GET /api/v1/venues/{id}
func (h *VenueHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := venueIDParam(w, r)
	if !ok {
		return
	}

	venue, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Venue not found")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to get venue")
		return
	}

	rows, err := h.shows.ForVenue(r.Context(), id)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to get venue shows")
		return
	}

	past, upcoming := shows.Partition(rows, time.Now().UTC())
	if past == nil {
		past = []models.ShowView{}
	}
	if upcoming == nil {
		upcoming = []models.ShowView{}
	}

	writeJSON(w, http.StatusOK, models.VenueDetail{
		Venue:              *venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	})
}

// Create handles POST /api/v1/venues
// @Tags Venues
// @Summary Create a venue
// @Accept json
// @Produce json
// @Param venue body models.CreateVenueRequest true "Venue"
// @Success 201 {object} models.Venue
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/venues [post]
func (h *VenueHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_json", "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	venue := venueFromRequest(req)
	if err := h.repo.Create(r.Context(), venue); err != nil {
		writeConstraintError(w, err, "Failed to create venue")
		return
	}

	writeJSON(w, http.StatusCreated, venue)
}

// Update handles PUT /api/v1/venues/{id} with full-replace semantics:
// every editable field is overwritten by the request.
func (h *VenueHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := venueIDParam(w, r)
	if !ok {
		return
	}

	var req models.UpdateVenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_json", "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	venue := venueFromRequest(req)
	venue.ID = id
	if err := h.repo.Update(r.Context(), venue); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Venue not found")
			return
		}
		writeConstraintError(w, err, "Failed to update venue")
		return
	}

	writeJSON(w, http.StatusOK, venue)
}

// Delete handles DELETE /api/v1/venues/{id}. Venues still referenced by
// shows are not deleted; the request is rejected with 409.
func (h *VenueHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := venueIDParam(w, r)
	if !ok {
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		var blocked *interfaces.DeletionBlockedError
		if errors.As(err, &blocked) {
			writeJSON(w, http.StatusConflict, map[string]any{
				"error":      "deletion_blocked",
				"message":    "Venue has shows and cannot be deleted",
				"references": blocked.References,
			})
			return
		}
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Venue not found")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to delete venue")
		return
	}

	writeJSONMessage(w, http.StatusOK, "Venue deleted successfully")
}

func venueIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Venue ID is required")
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid venue ID")
		return 0, false
	}
	return id, true
}

func venueFromRequest(req models.CreateVenueRequest) *models.Venue {
	return &models.Venue{
		Name:               req.Name,
		City:               req.City,
		State:              req.State,
		Address:            req.Address,
		Phone:              req.Phone,
		Genres:             req.Genres,
		ImageLink:          req.ImageLink,
		FacebookLink:       req.FacebookLink,
		WebsiteLink:        req.WebsiteLink,
		SeekingTalent:      req.SeekingTalent,
		SeekingDescription: req.SeekingDescription,
	}
}

func writeConstraintError(w http.ResponseWriter, err error, fallback string) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			writeJSONErrorResponse(w, http.StatusBadRequest, "duplicate_phone", "Phone number is already in use")
			return
		case "23503":
			writeJSONErrorResponse(w, http.StatusBadRequest, "foreign_key_violation", "Invalid reference")
			return
		}
	}
	writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", fallback)
}
