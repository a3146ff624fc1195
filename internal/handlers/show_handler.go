package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
	"fyyur/internal/shows"
)

type ShowHandler struct {
	repo      interfaces.ShowRepository
	validator *validator.Validate
}

func NewShowHandler(repo interfaces.ShowRepository) *ShowHandler {
	return &ShowHandler{
		repo:      repo,
		validator: validator.New(),
	}
}

// startTimeFormats are the accepted input formats for show start times.
var startTimeFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
}

func parseStartTime(value string) (time.Time, error) {
	var err error
	for _, layout := range startTimeFormats {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// List handles GET /api/v1/shows. The listing is unfiltered by default;
// upcoming=true restricts it to shows starting after now.
// @Tags Shows
// @Summary List shows
// @Produce json
// @Param upcoming query bool false "Only shows starting in the future"
// @Success 200 {array} models.ShowListing
// @Router /api/v1/shows [get]
func (h *ShowHandler) List(w http.ResponseWriter, r *http.Request) {
	upcomingOnly, _ := strconv.ParseBool(r.URL.Query().Get("upcoming"))

	rows, err := h.repo.ListWithNames(r.Context(), upcomingOnly)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to list shows")
		return
	}

	listings := make([]models.ShowListing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, models.ShowListing{
			VenueID:         row.VenueID,
			VenueName:       row.VenueName,
			ArtistID:        row.ArtistID,
			ArtistName:      row.ArtistName,
			ArtistImageLink: row.ArtistImageLink,
			StartTime:       shows.FormatStartTime(row.StartTime),
		})
	}

	writeJSON(w, http.StatusOK, listings)
}

// Create handles POST /api/v1/shows
// @Tags Shows
// @Summary Create a show
// @Accept json
// @Produce json
// @Param show body models.CreateShowRequest true "Show"
// @Success 201 {object} models.Show
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/shows [post]
func (h *ShowHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateShowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_json", "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	startTime, err := parseStartTime(req.StartTime)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error",
			"start_time must be RFC 3339 or YYYY-MM-DD HH:MM:SS")
		return
	}

	show := &models.Show{
		VenueID:   req.VenueID,
		ArtistID:  req.ArtistID,
		StartTime: startTime,
	}
	if err := h.repo.Create(r.Context(), show); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			switch pqErr.Constraint {
			case "shows_venue_id_fkey":
				writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_venue_id", "Venue not found")
			case "shows_artist_id_fkey":
				writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_artist_id", "Artist not found")
			default:
				writeJSONErrorResponse(w, http.StatusBadRequest, "foreign_key_violation", "Invalid reference")
			}
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to create show")
		return
	}

	writeJSON(w, http.StatusCreated, show)
}
