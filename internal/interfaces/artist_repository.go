package interfaces

import (
	"context"

	"fyyur/internal/models"
)

// ArtistRepository mirrors VenueRepository for artists. Artists have no
// delete path.
type ArtistRepository interface {
	Create(ctx context.Context, artist *models.Artist) error
	GetByID(ctx context.Context, id int) (*models.Artist, error)
	List(ctx context.Context) ([]models.Artist, error)
	SearchByName(ctx context.Context, term string) ([]models.Artist, error)
	Update(ctx context.Context, artist *models.Artist) error
}
