package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"fyyur/internal/config"
	"fyyur/internal/interfaces"
)

// ImageHandler uploads venue and artist images to S3 and stores the
// resulting public URL on the entity's image_link.
type ImageHandler struct {
	venues        interfaces.VenueRepository
	artists       interfaces.ArtistRepository
	s3Client      *s3.Client
	bucket        string
	publicBaseURL string
}

func NewImageHandler(venues interfaces.VenueRepository, artists interfaces.ArtistRepository, s3Config *config.S3Config) *ImageHandler {
	h := &ImageHandler{
		venues:  venues,
		artists: artists,
	}
	if s3Config != nil {
		h.s3Client = s3Config.Client
		h.bucket = s3Config.Bucket
		h.publicBaseURL = s3Config.PublicBaseURL
	}
	return h
}

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadVenueImage handles POST /api/v1/venues/{id}/image
// @Tags Venues
// @Summary Upload a venue image
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Venue ID"
// @Param image formData file true "Image file"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/venues/{id}/image [post]
func (h *ImageHandler) UploadVenueImage(w http.ResponseWriter, r *http.Request) {
	id, ok := venueIDParam(w, r)
	if !ok {
		return
	}

	venue, err := h.venues.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Venue not found")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to get venue")
		return
	}

	link, ok := h.storeImage(r.Context(), w, r, "venues")
	if !ok {
		return
	}

	venue.ImageLink = link
	if err := h.venues.Update(r.Context(), venue); err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to save image link")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"image_link": link})
}

// UploadArtistImage handles POST /api/v1/artists/{id}/image
func (h *ImageHandler) UploadArtistImage(w http.ResponseWriter, r *http.Request) {
	id, ok := artistIDParam(w, r)
	if !ok {
		return
	}

	artist, err := h.artists.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Artist not found")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to get artist")
		return
	}

	link, ok := h.storeImage(r.Context(), w, r, "artists")
	if !ok {
		return
	}

	artist.ImageLink = link
	if err := h.artists.Update(r.Context(), artist); err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to save image link")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"image_link": link})
}

// storeImage validates the multipart upload and writes it to S3. It has
// already written an error response when ok is false.
func (h *ImageHandler) storeImage(ctx context.Context, w http.ResponseWriter, r *http.Request, prefix string) (string, bool) {
	if h.s3Client == nil || h.bucket == "" {
		writeJSONErrorResponse(w, http.StatusServiceUnavailable, "storage_unavailable", "Image storage is not configured")
		return "", false
	}

	const maxMemory = 32 << 20
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Failed to parse form")
		return "", false
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "image file is required")
		return "", false
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExtensions[ext] {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "unsupported image type")
		return "", false
	}

	key := fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), ext)
	if err := h.putObject(ctx, key, file, header); err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "upload_failed", "Failed to upload image")
		return "", false
	}

	return h.publicURL(key), true
}

func (h *ImageHandler) putObject(ctx context.Context, key string, file multipart.File, header *multipart.FileHeader) error {
	uploader := manager.NewUploader(h.s3Client)
	_, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(h.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(header.Header.Get("Content-Type")),
	})
	return err
}

func (h *ImageHandler) publicURL(key string) string {
	if h.publicBaseURL != "" {
		return strings.TrimSuffix(h.publicBaseURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", h.bucket, key)
}
