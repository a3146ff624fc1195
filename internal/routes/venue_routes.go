package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"fyyur/internal/config"
	"fyyur/internal/handlers"
	"fyyur/internal/repository"
)

func RegisterVenueRoutes(r chi.Router, db *sql.DB, s3Config *config.S3Config) {
	venueRepo := repository.NewVenueRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	showRepo := repository.NewShowRepository(db)
	handler := handlers.NewVenueHandler(venueRepo, showRepo)
	images := handlers.NewImageHandler(venueRepo, artistRepo, s3Config)

	r.Route("/venues", func(r chi.Router) {
		r.Get("/", handler.ListAreas)
		r.Get("/search", handler.Search)
		r.Post("/", handler.Create)
		r.Get("/{id}", handler.Get)
		r.Put("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
		r.Post("/{id}/image", images.UploadVenueImage)
	})
}
