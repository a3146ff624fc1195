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

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
	"fyyur/internal/shows"
)

type ArtistHandler struct {
	repo      interfaces.ArtistRepository
	shows     interfaces.ShowRepository
	validator *validator.Validate
}

func NewArtistHandler(repo interfaces.ArtistRepository, showRepo interfaces.ShowRepository) *ArtistHandler {
	return &ArtistHandler{
		repo:      repo,
		shows:     showRepo,
		validator: validator.New(),
	}
}

// List handles GET /api/v1/artists. The artists index carries only id
// and name.
func (h *ArtistHandler) List(w http.ResponseWriter, r *http.Request) {
	artists, err := h.repo.List(r.Context())
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to list artists")
		return
	}

	refs := make([]models.ArtistRef, 0, len(artists))
	for _, artist := range artists {
		refs = append(refs, models.ArtistRef{ID: artist.ID, Name: artist.Name})
	}

	writeJSON(w, http.StatusOK, refs)
}

// Search handles GET /api/v1/artists/search with the same term semantics
// as the venue search.
func (h *ArtistHandler) Search(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	term := strings.TrimSpace(r.URL.Query().Get("search_term"))

	artists, err := h.repo.SearchByName(r.Context(), term)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to search artists")
		return
	}

	data := make([]models.ArtistSummary, 0, len(artists))
	for _, artist := range artists {
		rows, err := h.shows.ForArtist(r.Context(), artist.ID)
		if err != nil {
			writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to search artists")
			return
		}
		data = append(data, models.ArtistSummary{
			ID:               artist.ID,
			Name:             artist.Name,
			NumUpcomingShows: shows.NumUpcoming(rows, now),
		})
	}

	writeJSON(w, http.StatusOK, models.ArtistSearchResponse{
		Count: len(data),
		Data:  data,
	})
}

// Get handles GET /api/v1/artists/{id}
func (h *ArtistHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := artistIDParam(w, r)
	if !ok {
		return
	}

	artist, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Artist not found")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to get artist")
		return
	}

	rows, err := h.shows.ForArtist(r.Context(), id)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to get artist shows")
		return
	}

	past, upcoming := shows.Partition(rows, time.Now().UTC())
	if past == nil {
		past = []models.ShowView{}
	}
	if upcoming == nil {
		upcoming = []models.ShowView{}
	}

	writeJSON(w, http.StatusOK, models.ArtistDetail{
		Artist:             *artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	})
}

// Create handles POST /api/v1/artists
// @Tags Artists
// @Summary Create an artist
// @Accept json
// @Produce json
// @Param artist body models.CreateArtistRequest true "Artist"
// @Success 201 {object} models.Artist
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/artists [post]
func (h *ArtistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_json", "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	artist := artistFromRequest(req)
	if err := h.repo.Create(r.Context(), artist); err != nil {
		writeConstraintError(w, err, "Failed to create artist")
		return
	}

	writeJSON(w, http.StatusCreated, artist)
}

// Update handles PUT /api/v1/artists/{id}, full-replace semantics.
func (h *ArtistHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := artistIDParam(w, r)
	if !ok {
		return
	}

	var req models.UpdateArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_json", "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	artist := artistFromRequest(req)
	artist.ID = id
	if err := h.repo.Update(r.Context(), artist); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Artist not found")
			return
		}
		writeConstraintError(w, err, "Failed to update artist")
		return
	}

	writeJSON(w, http.StatusOK, artist)
}

func artistIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Artist ID is required")
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid artist ID")
		return 0, false
	}
	return id, true
}

func artistFromRequest(req models.CreateArtistRequest) *models.Artist {
	return &models.Artist{
		Name:               req.Name,
		City:               req.City,
		State:              req.State,
		Phone:              req.Phone,
		Genres:             req.Genres,
		ImageLink:          req.ImageLink,
		FacebookLink:       req.FacebookLink,
		WebsiteLink:        req.WebsiteLink,
		SeekingVenue:       req.SeekingVenue,
		SeekingDescription: req.SeekingDescription,
	}
}
