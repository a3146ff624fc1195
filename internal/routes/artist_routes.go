package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"fyyur/internal/config"
	"fyyur/internal/handlers"
	"fyyur/internal/repository"
)

func RegisterArtistRoutes(r chi.Router, db *sql.DB, s3Config *config.S3Config) {
	venueRepo := repository.NewVenueRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	showRepo := repository.NewShowRepository(db)
	handler := handlers.NewArtistHandler(artistRepo, showRepo)
	images := handlers.NewImageHandler(venueRepo, artistRepo, s3Config)

	r.Route("/artists", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Get("/search", handler.Search)
		r.Post("/", handler.Create)
		r.Get("/{id}", handler.Get)
		r.Put("/{id}", handler.Update)
		r.Post("/{id}/image", images.UploadArtistImage)
	})
}
