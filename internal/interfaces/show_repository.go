package interfaces

import (
	"context"

	"fyyur/internal/models"
)

type ShowRepository interface {
	Create(ctx context.Context, show *models.Show) error
	// ListWithNames joins each show with both parents. With upcomingOnly
	// set, only shows starting strictly after now are returned.
	ListWithNames(ctx context.Context, upcomingOnly bool) ([]models.ShowListingRow, error)
	ForVenue(ctx context.Context, venueID int) ([]models.ShowWithArtist, error)
	ForArtist(ctx context.Context, artistID int) ([]models.ShowWithArtist, error)
}
